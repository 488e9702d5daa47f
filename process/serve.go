package process

import (
	"context"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cardcut/server"
	"cardcut/state"
)

// Serve runs local HTTP API until interrupted.
func Serve(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("serve")

	cfg := env.Cfg.Server
	if listen := cmd.String("listen"); len(listen) > 0 {
		cfg.Listen = listen
	}
	log.Info("API server starting", zap.String("listen", cfg.Listen), zap.Int("cache", cfg.CacheSize))
	return server.New(&cfg, log).Run(ctx)
}
