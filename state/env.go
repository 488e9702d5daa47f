// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"cardcut/config"
	"cardcut/source"
)

type envKey struct{}

// LocalEnv is carried by command context from Before hook to After hook.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// output flags of extract and print
	Overwrite bool
	ZipOutput bool

	codePage encoding.Encoding

	clientOnce sync.Once
	client     *retryablehttp.Client

	started time.Time
	undoLog func()
}

// ContextWithEnv returns child context carrying fresh environment.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{started: time.Now()})
}

// EnvFromContext panics when ctx was not prepared by ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("localenv not found in context")
	}
	return env
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.started)
}

// ForceCodePage makes archive readers decode non UTF-8 member names using
// IANA character set name. Empty name restores detection.
func (e *LocalEnv) ForceCodePage(name string) error {
	if len(name) == 0 {
		e.codePage = nil
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return err
	}
	if enc == nil {
		return fmt.Errorf("character set %q is not supported", name)
	}
	e.codePage = enc
	return nil
}

// CodePage returns canonical name of forced code page, empty if none.
func (e *LocalEnv) CodePage() string {
	if e.codePage == nil {
		return ""
	}
	name, _ := ianaindex.IANA.Name(e.codePage)
	return name
}

// SourceOptions describes how project sources are to be opened. Remote
// sources share single retrying client for the life of the program.
func (e *LocalEnv) SourceOptions() source.Options {
	opts := source.Options{CodePage: e.codePage}
	if e.Cfg != nil {
		opts.DPI = e.Cfg.Extraction.DPI
	}
	e.clientOnce.Do(func() {
		log := e.Log
		if log == nil {
			log = zap.NewNop()
		}
		e.client = source.NewClient(log)
	})
	opts.Client = e.client
	return opts
}

// RedirectStdLog sends output of standard library logger to zap until
// RestoreStdLog is called.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil || e.undoLog != nil {
		return
	}
	e.undoLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if undo := e.undoLog; undo != nil {
		e.undoLog = nil
		undo()
	}
}
