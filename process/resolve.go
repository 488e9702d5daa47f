package process

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"cardcut/common"
	"cardcut/layout"
	"cardcut/state"
	"cardcut/utils/debug"
)

// Resolve prints identity of every cell of the project.
func Resolve(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("resolve")

	j, err := openJob(ctx, cmd, env, log)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, j.close()) }()

	infos := j.set.Pages()
	// project was validated, mode is known to be good
	def, _ := j.prj.Mode.Mode()
	tw := debug.NewTreeWriter()
	tw.Text(0, "project", j.path)
	tw.Line(0, "grid: %dx%d, cells: %d", j.plan.Grid().Rows, j.plan.Grid().Columns, j.plan.TotalCells())
	for i := range j.plan.Pages() {
		pg := j.plan.Page(i)
		info := infos[pg.OriginalIndex]
		mode := def
		if pg.Mode != nil {
			mode = pg.Mode
		}
		tw.Line(0, "page %d: %s#%d, role %s, mode %s", i+1, info.Source, info.Index+1, pg.Role, mode)
		for _, r := range j.plan.PageResults(i) {
			tw.Line(1, "%d\tr%d c%d\t%s", r.Index, r.Cell.Row+1, r.Cell.Column+1, describe(r))
		}
	}
	tw.Line(0, "fronts: %d, backs: %d", j.plan.Count(common.CardTypeFront), j.plan.Count(common.CardTypeBack))
	if j.plan.FallbackUsed() {
		tw.Line(0, "fallback page size %gx%g was used", layout.FallbackSize.Width, layout.FallbackSize.Height)
	}

	_, err = fmt.Fprint(cmd.Root().Writer, tw.String())
	return err
}

func describe(r layout.Result) string {
	switch {
	case r.Skipped:
		return "skipped"
	case r.Card.Type == common.CardTypeUnknown:
		return "unknown"
	}
	s := fmt.Sprintf("%s %d", r.Card.Type, r.Card.ID)
	if r.UsedFallbackDimensions {
		s += " (fallback size)"
	}
	return s
}
