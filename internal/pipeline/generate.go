package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/machinegen/internal/config"
	"github.com/imamik/machinegen/internal/instance"
	"github.com/imamik/machinegen/internal/manifest"
	"github.com/imamik/machinegen/internal/metrics"
	"github.com/imamik/machinegen/internal/platform/hcloud"
	"github.com/imamik/machinegen/internal/sink"
)

// Result describes a successful run.
type Result struct {
	Target  string
	Variant manifest.Variant
	Format  manifest.Format
	Bytes   int
	Summary manifest.Summary
}

// NewSource returns the instance source selected by p.
func NewSource(p *config.Params, logger logr.Logger) (instance.Source, error) {
	switch p.Source {
	case config.SourceFile:
		return instance.NewFileSource(p.Instances), nil
	case config.SourceHCloud:
		client := hcloud.NewClient(p.HCloud.Token, hcloud.WithLogger(logger.WithName("hcloud")))
		return hcloud.NewSource(client, p.HCloud.LabelSelector), nil
	default:
		return nil, fmt.Errorf("unknown instance source %q", p.Source)
	}
}

// S3Options returns the sink options described by p.
func S3Options(p *config.Params) sink.S3Options {
	return sink.S3Options{
		Endpoint:  p.S3.Endpoint,
		Region:    p.S3.Region,
		AccessKey: p.S3.AccessKey,
		SecretKey: p.S3.SecretKey,
		PathStyle: p.S3.PathStyle,
	}
}

// Generate validates p and runs every generate phase. When p.MetricsFile is
// set the run's metrics are written there whether or not the run succeeded.
func Generate(ctx context.Context, p *config.Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	logger := logr.FromContextOrDiscard(ctx).WithName("pipeline")
	ctx = logr.NewContext(ctx, logger)

	src, err := NewSource(p, logger)
	if err != nil {
		return nil, err
	}
	dst, err := sink.Open(p.Output, S3Options(p))
	if err != nil {
		return nil, err
	}

	rec := metrics.NewRecorder()
	rc := NewContext(ctx, p, src, dst, rec)

	start := time.Now()
	runErr := NewPipeline(GeneratePhases()...).Run(rc)
	rec.RecordRun(time.Since(start), runErr == nil, time.Now())

	if p.MetricsFile != "" {
		if err := rec.WriteTextfile(p.MetricsFile); err != nil {
			if runErr == nil {
				return nil, err
			}
			logger.Error(err, "could not write metrics")
		}
	}
	if runErr != nil {
		return nil, runErr
	}

	return &Result{
		Target:  dst.Target(),
		Variant: p.ManifestVariant(),
		Format:  p.ManifestFormat(),
		Bytes:   len(rc.State.Encoded),
		Summary: rc.State.Summary,
	}, nil
}
