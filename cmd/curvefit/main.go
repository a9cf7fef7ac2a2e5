// Command curvefit fits curves to point tables and minifies them to
// cornerpoints.
//
// Usage:
//
//	curvefit interpolate -a cspline -s 200 table.txt           # Resample through a spline
//	curvefit interpolate -xmin 1 -xmax 1000 -l table.txt       # Logarithmic sweep
//	curvefit interpolate -wav out.wav -rate 48000 table.txt    # Write the curve as audio
//	curvefit minify -e 2 table.txt                             # Cornerpoints within 2
//	curvefit minify -e 0.5 -v -yaoi 100,200 samples.wav        # With y area-of-interest report
//
// Tables are text files with one "x y" pair per line; '#' lines are
// comments. Files ending in .wav are read as sample index and PCM value.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tphakala/simd/cpu"

	minify "github.com/tphakala/go-curve-minify"
	"github.com/tphakala/go-curve-minify/internal/valuefile"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return
		case errors.Is(err, errUsage):
			log.Print(err)
			os.Exit(exitUsage)
		default:
			log.Fatal(err)
		}
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < minRequiredArgs {
		printUsage(os.Stderr)
		return fmt.Errorf("%w: missing subcommand", errUsage)
	}

	switch args[0] {
	case cmdInterpolate:
		return runInterpolate(args[1:], stdout)
	case cmdMinify:
		return runMinify(args[1:], stdout)
	case cmdHelp, "-h", "-help", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("%w: unknown subcommand %q", errUsage, args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: curvefit <command> [options] file\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  %-12s resample a table through a linear or cubic spline curve\n", cmdInterpolate)
	fmt.Fprintf(w, "  %-12s reduce a table to cornerpoints within an error bound\n", cmdMinify)
	fmt.Fprintf(w, "\nRun 'curvefit <command> -h' for command options.\n")
}

func runInterpolate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(cmdInterpolate, flag.ContinueOnError)
	algName := fs.String("a", defaultAlgorithm, "Interpolation algorithm: cspline, linear")
	var xmin, xmax optionalFloat
	fs.Var(&xmin, "xmin", "Sweep start (default: first x of the table)")
	fs.Var(&xmax, "xmax", "Sweep end (default: last x of the table)")
	steps := fs.Int("s", defaultSteps, "Number of sweep points")
	logarithmic := fs.Bool("l", false, "Logarithmic sweep, dense near xmin")
	wavOut := fs.String("wav", "", "Write the resampled y values to a mono WAV file instead of stdout")
	rate := fs.Int("rate", defaultSampleRate, "WAV sample rate in Hz")
	bits := fs.Int("bits", defaultBitDepth, "WAV bit depth: 16, 24, 32")
	gain := fs.Float64("gain", 1, "Scale y values before writing WAV samples")
	verbose := fs.Bool("v", false, "Verbose output")

	path, err := parseInputArg(fs, args)
	if err != nil {
		return err
	}

	alg, err := minify.ParseAlgorithm(*algName)
	if err != nil {
		return err
	}

	table, err := loadTable(path, *verbose)
	if err != nil {
		return err
	}

	out, err := minify.Resample(table.Points, alg, minify.Sweep{
		XMin:        xmin.Ptr(),
		XMax:        xmax.Ptr(),
		Steps:       *steps,
		Logarithmic: *logarithmic,
	})
	if err != nil {
		return fmt.Errorf("interpolation failed: %w", err)
	}
	if *verbose {
		log.Printf("Resampled %d points to %d with %s", len(table.Points), len(out), alg)
	}

	if *wavOut != "" {
		ys := make([]float64, len(out))
		for i, p := range out {
			ys[i] = p.Y
		}
		opts := valuefile.WAVOptions{SampleRate: *rate, BitDepth: *bits, Gain: *gain}
		if err := valuefile.WriteWAV(*wavOut, ys, opts); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Wrote %s: %d Hz, %d-bit", *wavOut, *rate, *bits)
		}
		return nil
	}

	return valuefile.Write(stdout, out,
		fmt.Sprintf("%s interpolation of %s", alg, path),
		fmt.Sprintf("%d points", len(out)))
}

func runMinify(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(cmdMinify, flag.ContinueOnError)
	maxError := fs.Float64("e", defaultMaxError, "Maximum absolute interpolation error")
	var xmin, xmax optionalFloat
	fs.Var(&xmin, "xmin", "Ignore points below this x")
	fs.Var(&xmax, "xmax", "Ignore points above this x")
	yaoi := fs.String("yaoi", "", "Report on the y area of interest `min,max`")
	jsonAnalysis := fs.Bool("json-analysis", false, "Print the area-of-interest report as JSON")
	xName := fs.String("xname", defaultXName, "Name of the x quantity in reports")
	yName := fs.String("yname", defaultYName, "Name of the y quantity in reports")
	verbose := fs.Bool("v", false, "Verbose output")

	path, err := parseInputArg(fs, args)
	if err != nil {
		return err
	}

	var region *yRange
	if *yaoi != "" {
		if region, err = parseYRange(*yaoi); err != nil {
			return err
		}
	}

	table, err := loadTable(path, *verbose)
	if err != nil {
		return err
	}

	config := &minify.Config{MaxError: *maxError, XMin: xmin.Ptr(), XMax: xmax.Ptr()}
	res, err := minify.Minify(table.Points, config)
	if err != nil {
		return fmt.Errorf("minification failed: %w", err)
	}

	if *verbose {
		log.Printf("SIMD: %s", cpu.Info())
		for _, step := range res.Report.Steps {
			log.Printf("After %-12s %d points", step.Name+":", step.Points)
		}
	}

	if err := writeCornerpoints(stdout, res.Cornerpoints); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, summaryLine(res)); err != nil {
		return err
	}

	if region != nil {
		ra := minify.AnalyzeRegion(table.Points, region.min, region.max, *xName, *yName)
		if *jsonAnalysis {
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", jsonIndent)
			return enc.Encode(ra)
		}
		return ra.WriteText(stdout)
	}
	return nil
}
