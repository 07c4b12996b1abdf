package pipeline

import (
	"context"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/imamik/machinegen/internal/config"
	"github.com/imamik/machinegen/internal/instance"
	"github.com/imamik/machinegen/internal/manifest"
	"github.com/imamik/machinegen/internal/metrics"
	"github.com/imamik/machinegen/internal/sink"
)

// State holds the shared results of the phases.
// It is progressively populated as each phase completes.
type State struct {
	Instances []instance.Instance
	Objects   []runtime.Object
	Encoded   []byte
	Summary   manifest.Summary
}

// Context wraps all dependencies and state needed by a phase.
type Context struct {
	context.Context
	Params  *config.Params
	State   *State
	Source  instance.Source
	Sink    sink.Sink
	Logger  logr.Logger
	Metrics *metrics.Recorder
}

// NewContext creates a phase context. The logger is taken from ctx.
func NewContext(ctx context.Context, p *config.Params, src instance.Source, dst sink.Sink, rec *metrics.Recorder) *Context {
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	return &Context{
		Context: ctx,
		Params:  p,
		State:   &State{},
		Source:  src,
		Sink:    dst,
		Logger:  logr.FromContextOrDiscard(ctx),
		Metrics: rec,
	}
}
