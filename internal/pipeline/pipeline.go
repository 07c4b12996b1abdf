package pipeline

import (
	"fmt"
	"time"
)

// Phase is one step of a run.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Run executes the phase.
	Run(ctx *Context) error
}

// Pipeline is an ordered list of phases.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline running phases in order.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// Run executes all phases sequentially.
func (p *Pipeline) Run(ctx *Context) error {
	return RunPhases(ctx, p.Phases)
}

// RunPhases executes phases sequentially and stops at the first error.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Logger.Info("starting generation", "phases", len(phases))

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		phaseStart := time.Now()
		log := ctx.Logger.WithValues("phase", phase.Name(), "step", fmt.Sprintf("%d/%d", i+1, len(phases)))
		log.V(1).Info("phase starting")

		err := phase.Run(ctx)
		elapsed := time.Since(phaseStart)
		ctx.Metrics.RecordPhase(phase.Name(), elapsed)
		if err != nil {
			log.Error(err, "phase failed")
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		log.Info("phase completed", "duration", elapsed.Round(time.Millisecond).String())
	}

	ctx.Logger.Info("generation completed", "duration", time.Since(start).Round(time.Millisecond).String())
	return nil
}

// phaseFunc adapts a function to the Phase interface.
type phaseFunc struct {
	name string
	fn   func(*Context) error
}

func (p *phaseFunc) Name() string { return p.name }

func (p *phaseFunc) Run(ctx *Context) error { return p.fn(ctx) }

// NewPhase returns a Phase running fn.
func NewPhase(name string, fn func(*Context) error) Phase {
	return &phaseFunc{name: name, fn: fn}
}
