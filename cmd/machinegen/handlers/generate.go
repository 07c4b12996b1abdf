package handlers

import (
	"context"

	"github.com/imamik/machinegen/internal/config"
	"github.com/imamik/machinegen/internal/pipeline"
)

// Factory function variables for generate - can be replaced in tests.
var (
	// runGenerate runs the generate pipeline.
	runGenerate = pipeline.Generate

	// styledOutput reports whether the summary may use colors.
	styledOutput = isInteractiveTTY
)

// Generate writes the machines manifest described by p and prints a summary
// unless quiet is set.
func Generate(ctx context.Context, p *config.Params, quiet bool) error {
	res, err := runGenerate(ctx, p)
	if err != nil {
		return err
	}

	if !quiet {
		printGenerateSummary(p.User, res, styledOutput())
	}
	return nil
}
