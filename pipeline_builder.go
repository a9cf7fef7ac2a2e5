package minify

import (
	"fmt"

	"github.com/tphakala/go-curve-minify/internal/pipeline"
)

// buildMinifyPipeline creates the range filter, quantize and thinning
// pipeline for a configuration.
func buildMinifyPipeline(config *Config) (*pipeline.Pipeline, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p, err := pipeline.BuildPipeline(pipeline.Params{
		XMin:     config.XMin,
		XMax:     config.XMax,
		Quantize: true,
		MaxError: config.MaxError,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}
	return p, nil
}

// buildResamplePipeline creates the resample pipeline for a sweep. The
// curve is fitted on the whole table; the sweep range only selects where
// it is sampled.
func buildResamplePipeline(alg Algorithm, sweep Sweep) (*pipeline.Pipeline, error) {
	steps := sweep.Steps
	if steps == 0 {
		steps = DefaultSweepSteps
	}

	p, err := pipeline.BuildPipeline(pipeline.Params{
		Resample: &pipeline.Resampling{
			Algorithm:   alg,
			Steps:       steps,
			Logarithmic: sweep.Logarithmic,
			XMin:        sweep.XMin,
			XMax:        sweep.XMax,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}
	return p, nil
}
