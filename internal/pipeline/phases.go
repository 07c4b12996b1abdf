package pipeline

import (
	"fmt"

	"github.com/imamik/machinegen/internal/manifest"
	"github.com/imamik/machinegen/internal/plan"
)

// Phase names.
const (
	PhaseLoad     = "load"
	PhaseAssemble = "assemble"
	PhaseValidate = "validate"
	PhaseEncode   = "encode"
	PhaseWrite    = "write"
)

// GeneratePhases returns the phases of a generate run in order.
func GeneratePhases() []Phase {
	return []Phase{
		NewPhase(PhaseLoad, loadInstances),
		NewPhase(PhaseAssemble, assembleManifest),
		NewPhase(PhaseValidate, validateManifest),
		NewPhase(PhaseEncode, encodeManifest),
		NewPhase(PhaseWrite, writeManifest),
	}
}

func loadInstances(ctx *Context) error {
	instances, err := ctx.Source.Instances(ctx)
	if err != nil {
		return err
	}
	ctx.State.Instances = instances
	ctx.Metrics.RecordInstances(ctx.Params.Source, len(instances))
	ctx.Logger.V(1).Info("loaded instances", "source", ctx.Params.Source, "count", len(instances))
	return nil
}

func assembleManifest(ctx *Context) error {
	variant := ctx.Params.ManifestVariant()
	builder, err := manifest.NewBuilder(variant, ctx.Params.ManifestOptions())
	if err != nil {
		return err
	}

	assembler := &manifest.Assembler{
		Builder: builder,
		Plan:    ctx.Params.Plan(),
		Logger:  ctx.Logger.WithName(PhaseAssemble),
	}
	objs, err := assembler.Assemble(ctx.State.Instances, ctx.Params.User)
	if err != nil {
		return err
	}

	ctx.State.Objects = objs
	ctx.State.Summary = manifest.Summarize(objs)
	ctx.Metrics.RecordSlots(plan.RoleMaster.String(), ctx.State.Summary.Masters)
	ctx.Metrics.RecordSlots(plan.RoleWorker.String(), ctx.State.Summary.Workers)
	ctx.Metrics.RecordManifests(string(variant), ctx.State.Summary.Kinds)
	return nil
}

func validateManifest(ctx *Context) error {
	if errs := manifest.Validate(ctx.State.Objects); len(errs) > 0 {
		return fmt.Errorf("generated manifest is invalid: %w", errs.ToAggregate())
	}
	return nil
}

func encodeManifest(ctx *Context) error {
	data, err := manifest.Encode(ctx.State.Objects, ctx.Params.ManifestFormat())
	if err != nil {
		return err
	}
	ctx.State.Encoded = data
	return nil
}

func writeManifest(ctx *Context) error {
	if err := ctx.Sink.Write(ctx, ctx.State.Encoded); err != nil {
		return err
	}
	ctx.Logger.V(1).Info("wrote manifest", "target", ctx.Sink.Target(), "bytes", len(ctx.State.Encoded))
	return nil
}
