package process

import (
	"context"
	"fmt"
	"slices"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cardcut/common"
	"cardcut/state"
)

// Count prints number of fronts and backs in the project and warns when they
// do not pair up.
func Count(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("count")

	j, err := openJob(ctx, cmd, env, log)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, j.close()) }()

	fronts, backs := j.plan.AvailableIDs(common.CardTypeFront), j.plan.AvailableIDs(common.CardTypeBack)
	if _, err = fmt.Fprintf(cmd.Root().Writer, "fronts: %d\nbacks: %d\n", len(fronts), len(backs)); err != nil {
		return err
	}

	if len(backs) > 0 && len(fronts) != len(backs) {
		log.Warn("Number of fronts and backs differs", zap.Int("fronts", len(fronts)), zap.Int("backs", len(backs)),
			zap.Ints("unpaired", unpaired(fronts, backs)))
	}
	return nil
}

// unpaired returns card numbers present only among fronts or only among
// backs.
func unpaired(fronts, backs []int) []int {
	var out []int
	for _, id := range fronts {
		if _, found := slices.BinarySearch(backs, id); !found {
			out = append(out, id)
		}
	}
	for _, id := range backs {
		if _, found := slices.BinarySearch(fronts, id); !found {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
