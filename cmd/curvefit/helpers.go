package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	minify "github.com/tphakala/go-curve-minify"
	"github.com/tphakala/go-curve-minify/internal/valuefile"
)

var errNaNBound = errors.New("NaN is not a valid bound")

// optionalFloat is a float flag that remembers whether it was set.
type optionalFloat struct {
	value float64
	set   bool
}

// String implements flag.Value.
func (f *optionalFloat) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// Set implements flag.Value.
func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return errNaNBound
	}
	f.value, f.set = v, true
	return nil
}

// Ptr returns the value, or nil when the flag was not given.
func (f *optionalFloat) Ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// yRange is the inclusive y area of interest.
type yRange struct {
	min, max float64
}

// parseYRange parses "min,max".
func parseYRange(s string) (*yRange, error) {
	fields := strings.Split(s, ",")
	if len(fields) != rangeBoundFields {
		return nil, fmt.Errorf("invalid y range %q: expected min,max", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid y range minimum: %w", err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid y range maximum: %w", err)
	}
	if lo > hi {
		return nil, fmt.Errorf("invalid y range %q: minimum exceeds maximum", s)
	}
	return &yRange{min: lo, max: hi}, nil
}

// parseInputArg parses the flags and returns the single input path.
func parseInputArg(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != inputFileArgs {
		fmt.Fprintf(fs.Output(), "Usage: curvefit %s [options] file\n\nOptions:\n", fs.Name())
		fs.PrintDefaults()
		return "", fmt.Errorf("%w: %s expects one input file, got %d", errUsage, fs.Name(), fs.NArg())
	}
	return fs.Arg(0), nil
}

// loadTable reads a text table or WAV file and logs what was read.
func loadTable(path string, verbose bool) (*valuefile.Table, error) {
	table, err := valuefile.Load(path)
	if err != nil {
		return nil, err
	}
	if table.Duplicates > 0 {
		log.Printf("Warning: %s: %d duplicate x values, later lines replaced earlier ones", path, table.Duplicates)
	}
	if verbose {
		log.Printf("Read %d points from %s", len(table.Points), path)
	}
	return table, nil
}

// writeCornerpoints prints one "x y error" line per cornerpoint. The first
// cornerpoint has no error column.
func writeCornerpoints(w io.Writer, cps []minify.Cornerpoint) error {
	for _, c := range cps {
		var err error
		if c.HasError {
			_, err = fmt.Fprintf(w, "%d %d %.3f\n", c.X, c.Y, c.Error)
		} else {
			_, err = fmt.Fprintf(w, "%d %d\n", c.X, c.Y)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// summaryLine describes the reduction.
func summaryLine(res *minify.Result) string {
	return fmt.Sprintf("%d input points reduced to %d points with %g max error.",
		res.InputCount, len(res.Cornerpoints), res.MaxError)
}
