package pipeline

// Pipeline stage capacities
const (
	defaultStageCapacity  = 3 // range filter, resample and quantize
	defaultReportCapacity = 5 // input, one per stage, cornerpoints
)

// Report step names
const (
	stepInput        = "input"
	stepCornerpoints = "cornerpoints"
)

// Stage names
const (
	nameRangeFilter = "range"
	nameResample    = "resample"
	nameQuantize    = "quantize"
)
