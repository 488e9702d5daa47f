package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cardcut/export"
	"cardcut/extract"
	"cardcut/state"
)

// destination returns absolute output path: second command argument or
// project name with ext in the working directory.
func destination(cmd *cli.Command, project, ext string, log *zap.Logger) (string, error) {
	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("unable to get working directory: %w", err)
		}
		dst = filepath.Join(wd, strings.TrimSuffix(filepath.Base(project), filepath.Ext(project))+ext)
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return filepath.Abs(dst)
}

func (j *job) cards(ctx context.Context, env *state.LocalEnv, log *zap.Logger) ([]extract.Card, error) {
	e, err := extract.NewExtractor(&env.Cfg.Extraction, j.prj.Crop, j.plan, j.set.Pages(), log)
	if err != nil {
		return nil, err
	}
	cards, err := e.Run(ctx, j.set)
	if err != nil {
		return nil, fmt.Errorf("unable to extract cards: %w", err)
	}
	if len(cards) == 0 {
		log.Warn("No cards to extract")
	}
	return cards, nil
}

// Extract writes every card of the project as a separate image into a
// directory or a zip archive.
func Extract(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")
	env.Overwrite, env.ZipOutput = cmd.Bool("overwrite"), cmd.Bool("zip")

	j, err := openJob(ctx, cmd, env, log)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, j.close()) }()

	ext := ""
	if env.ZipOutput {
		ext = ".zip"
	}
	dst, err := destination(cmd, j.path, ext, log)
	if err != nil {
		return err
	}

	log.Info("Extraction starting", zap.String("project", j.path), zap.String("destination", dst), zap.Bool("zip", env.ZipOutput))
	defer func(start time.Time) {
		if err == nil {
			log.Info("Extraction completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	cards, err := j.cards(ctx, env, log)
	if err != nil {
		return err
	}
	if env.ZipOutput {
		return export.ZipFile(dst, cards, env.Overwrite, log)
	}
	return export.Dir(dst, cards, env.Overwrite, log)
}

// Print lays project cards out on print sheets and writes PDF document.
func Print(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("print")
	env.Overwrite = cmd.Bool("overwrite")

	j, err := openJob(ctx, cmd, env, log)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, j.close()) }()

	dst, err := destination(cmd, j.path, ".pdf", log)
	if err != nil {
		return err
	}

	log.Info("Printing starting", zap.String("project", j.path), zap.String("destination", dst))
	defer func(start time.Time) {
		if err == nil {
			log.Info("Printing completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	cards, err := j.cards(ctx, env, log)
	if err != nil {
		return err
	}
	if err := export.PrintPDF(ctx, dst, cards, &env.Cfg.Print, env.Overwrite, log); err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.Store("result/"+filepath.Base(dst), dst)
	}
	return nil
}
