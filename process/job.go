// Package process implements program commands.
package process

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cardcut/layout"
	"cardcut/project"
	"cardcut/source"
	"cardcut/state"
)

// job is a loaded project with opened sources and resolved layout.
type job struct {
	path string
	prj  *project.Project
	set  *source.Set
	plan *layout.Plan
}

func (j *job) close() error {
	if j.set == nil {
		return nil
	}
	return j.set.Close()
}

// setCodePage handles --force-zip-cp. Since zip "standard" does not define
// file name encoding we may need to force archaic code page for old archives.
func setCodePage(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) {
	cp := cmd.String("force-zip-cp")
	if len(cp) == 0 {
		return
	}
	if err := env.ForceCodePage(cp); err != nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		return
	}
	log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", env.CodePage()))
}

// openJob loads project given as the first command argument, opens its
// sources and resolves card identities.
func openJob(ctx context.Context, cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) (_ *job, err error) {
	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return nil, errors.New("no project file has been specified")
	}
	j := &job{}
	if j.path, err = filepath.Abs(src); err != nil {
		return nil, err
	}
	if j.prj, err = project.Load(j.path); err != nil {
		return nil, err
	}
	if env.Rpt != nil {
		env.Rpt.Store("project/"+filepath.Base(j.path), j.path)
	}

	setCodePage(cmd, env, log)

	j.set, err = source.Open(ctx, j.prj.Refs(), env.SourceOptions(), log)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, j.close())
		}
	}()

	l, err := j.prj.Layout(j.set.Pages())
	if err != nil {
		return nil, fmt.Errorf("unable to prepare layout: %w", err)
	}
	if j.plan, err = layout.NewPlan(l); err != nil {
		return nil, fmt.Errorf("unable to resolve layout: %w", err)
	}
	if j.plan.FallbackUsed() {
		log.Warn("Page dimensions are unknown, assuming portrait page when mirroring backs",
			zap.Float64("width", layout.FallbackSize.Width), zap.Float64("height", layout.FallbackSize.Height))
	}

	if env.Rpt != nil {
		cells := make([]layout.Result, 0, j.plan.TotalCells())
		for i := range j.plan.TotalCells() {
			cells = append(cells, j.plan.Resolve(i))
		}
		if err := env.Rpt.StoreJSON("project/cells.json", cells); err != nil {
			log.Warn("Unable to add resolved cells to report", zap.Error(err))
		}
	}

	log.Debug("Project loaded", zap.String("project", j.path), zap.Int("source pages", j.set.Len()),
		zap.Int("active pages", j.plan.Pages()), zap.Int("cells", j.plan.TotalCells()))
	return j, nil
}
