package minify

// Parallel processing limits
const (
	minParallelTables = 2 // Fewer tables are processed sequentially
)

// Resampling defaults
const (
	// DefaultSweepSteps is the number of points Resample produces when
	// Sweep.Steps is zero.
	DefaultSweepSteps = 100
)
