// Package pipeline implements the multi-stage minification pipeline.
// A pipeline narrows the input table to the requested x range, optionally
// resamples it through a fitted curve, and quantizes and thins the result
// into cornerpoints.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/tphakala/go-curve-minify/internal/engine"
	"github.com/tphakala/go-curve-minify/internal/mathutil"
	"github.com/tphakala/go-curve-minify/internal/thin"
)

// ErrInvalidParams indicates pipeline parameters that cannot be built.
var ErrInvalidParams = errors.New("pipeline: invalid parameters")

// Stage represents a single processing step over a point table.
type Stage interface {
	// Name identifies the stage in reports.
	Name() string

	// Process transforms an ascending table into a new ascending table.
	Process(points []mathutil.Point) ([]mathutil.Point, error)
}

// StageType identifies the type of processing stage.
type StageType int

const (
	// StageRangeFilter keeps points inside an inclusive x range.
	StageRangeFilter StageType = iota

	// StageResample evaluates a fitted curve on an x sweep.
	StageResample

	// StageQuantize rounds points to integers before thinning.
	StageQuantize
)

// String returns the stage name used in reports.
func (t StageType) String() string {
	switch t {
	case StageRangeFilter:
		return nameRangeFilter
	case StageResample:
		return nameResample
	case StageQuantize:
		return nameQuantize
	default:
		return fmt.Sprintf("StageType(%d)", int(t))
	}
}

// Resampling selects the curve and sweep of a resample stage.
type Resampling struct {
	Algorithm      engine.Algorithm
	Steps          int
	Logarithmic    bool
	PivotTolerance float64

	// XMin and XMax set the sweep range. Nil uses the x extent of the
	// stage input.
	XMin, XMax *float64
}

// Params holds the parameters for pipeline construction.
type Params struct {
	// XMin and XMax bound the x range, inclusive. Nil means unbounded.
	XMin, XMax *float64

	// Resample inserts a resample stage when non-nil.
	Resample *Resampling

	// Quantize inserts the rounding stage. Minify requires it.
	Quantize bool

	// MaxError is the thinning bound used by Minify.
	MaxError float64
}

// Pipeline represents a configured sequence of stages.
type Pipeline struct {
	stages   []Stage
	types    []StageType
	maxError float64
	quantize bool
}

// Step records how many points were left after a pipeline step.
type Step struct {
	Name   string
	Points int
}

// Report records the point count after every step of a run.
type Report struct {
	Steps []Step
}

func (r *Report) add(name string, points int) {
	r.Steps = append(r.Steps, Step{Name: name, Points: points})
}

// Count returns the point count recorded for a step name, or -1.
func (r *Report) Count(name string) int {
	for _, s := range r.Steps {
		if s.Name == name {
			return s.Points
		}
	}
	return -1
}

// String formats the report one step per line.
func (r *Report) String() string {
	var sb strings.Builder
	for _, s := range r.Steps {
		fmt.Fprintf(&sb, "%-12s %d points\n", s.Name+":", s.Points)
	}
	return sb.String()
}

// BuildPipeline constructs the stages selected by params.
func BuildPipeline(params Params) (*Pipeline, error) {
	if params.XMin != nil && params.XMax != nil && *params.XMin > *params.XMax {
		return nil, fmt.Errorf("%w: xmin %g > xmax %g", ErrInvalidParams, *params.XMin, *params.XMax)
	}
	for _, bound := range []*float64{params.XMin, params.XMax} {
		if bound != nil && math.IsNaN(*bound) {
			return nil, fmt.Errorf("%w: NaN range bound", ErrInvalidParams)
		}
	}
	if math.IsNaN(params.MaxError) || params.MaxError < 0 {
		return nil, fmt.Errorf("%w: max error %g", ErrInvalidParams, params.MaxError)
	}

	p := &Pipeline{
		stages:   make([]Stage, 0, defaultStageCapacity),
		types:    make([]StageType, 0, defaultStageCapacity),
		maxError: params.MaxError,
		quantize: params.Quantize,
	}

	if params.XMin != nil || params.XMax != nil {
		p.add(StageRangeFilter, NewRangeFilter(params.XMin, params.XMax))
	}

	if r := params.Resample; r != nil {
		stage, err := NewResampleStage(*r)
		if err != nil {
			return nil, err
		}
		p.add(StageResample, stage)
	}

	if params.Quantize {
		p.add(StageQuantize, quantizeStage{})
	}

	return p, nil
}

func (p *Pipeline) add(t StageType, s Stage) {
	p.types = append(p.types, t)
	p.stages = append(p.stages, s)
}

// GetStages returns the stage types in processing order.
func (p *Pipeline) GetStages() []StageType {
	return slices.Clone(p.types)
}

// Process runs every stage over points and records the counts.
func (p *Pipeline) Process(points []mathutil.Point) ([]mathutil.Point, *Report, error) {
	report := &Report{Steps: make([]Step, 0, defaultReportCapacity)}
	report.add(stepInput, len(points))

	current := points
	for _, stage := range p.stages {
		out, err := stage.Process(current)
		if err != nil {
			return nil, report, fmt.Errorf("%s stage: %w", stage.Name(), err)
		}
		report.add(stage.Name(), len(out))
		current = out
	}
	return current, report, nil
}

// Minify runs the stages and thins the result to cornerpoints.
func (p *Pipeline) Minify(points []mathutil.Point) (*thin.Result, *Report, error) {
	if !p.quantize {
		return nil, nil, fmt.Errorf("%w: minify needs a quantize stage", ErrInvalidParams)
	}

	out, report, err := p.Process(points)
	if err != nil {
		return nil, report, err
	}

	table := make([]mathutil.IntPoint, len(out))
	for i, pt := range out {
		table[i] = mathutil.IntPoint{X: int64(pt.X), Y: int64(pt.Y)}
	}

	res, err := thin.Thin(table, p.maxError)
	if err != nil {
		return nil, report, err
	}
	report.add(stepCornerpoints, len(res.Cornerpoints))
	return res, report, nil
}
