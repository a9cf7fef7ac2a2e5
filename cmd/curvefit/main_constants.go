package main

// Default command-line flag values
const (
	defaultAlgorithm  = "cspline" // Natural cubic spline
	defaultSteps      = 100       // Interpolation sweep points
	defaultMaxError   = 10.0      // Thinning bound
	defaultSampleRate = 44100     // WAV output sample rate
	defaultBitDepth   = 16        // WAV output bit depth
	defaultXName      = "x"
	defaultYName      = "y"
)

// Argument counts
const (
	minRequiredArgs  = 1 // subcommand
	inputFileArgs    = 1 // one input table per subcommand
	rangeBoundFields = 2 // "min,max"
)

// Subcommand names
const (
	cmdInterpolate = "interpolate"
	cmdMinify      = "minify"
	cmdHelp        = "help"
)

// Exit codes
const (
	exitUsage = 2 // Same as the flag package
)

// JSON output
const (
	jsonIndent = "  "
)
