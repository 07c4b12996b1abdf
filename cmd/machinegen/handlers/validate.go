package handlers

import (
	"bytes"
	"context"
	"fmt"

	"github.com/imamik/machinegen/internal/config"
	"github.com/imamik/machinegen/internal/manifest"
	"github.com/imamik/machinegen/internal/pipeline"
	"github.com/imamik/machinegen/internal/sink"
)

// Factory function variables for validate - can be replaced in tests.
var (
	// readManifest reads a manifest from a file or s3:// URL.
	readManifest = sink.Read
)

// Validate parses the manifest at target and checks it.
func Validate(ctx context.Context, target string, p *config.Params) error {
	data, err := readManifest(ctx, target, pipeline.S3Options(p))
	if err != nil {
		return err
	}

	objs, err := manifest.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", target, err)
	}

	if errs := manifest.Validate(objs); len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("  - %s\n", e.Error())
		}
		return fmt.Errorf("%s is invalid: %d problem(s) found", target, len(errs))
	}

	s := manifest.Summarize(objs)
	fmt.Printf("%s is valid: %d master(s), %d worker(s), %s\n", target, s.Masters, s.Workers, formatKinds(s.Kinds))
	return nil
}
