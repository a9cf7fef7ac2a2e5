// Package valuefile reads and writes point tables: plain "x y" text files
// and PCM WAV files whose samples are taken as y over the sample index.
package valuefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/tphakala/go-curve-minify/internal/mathutil"
)

// ErrMalformedLine indicates a text line that is not an "x y" pair.
var ErrMalformedLine = errors.New("valuefile: malformed line")

const (
	commentPrefix = "#"
	fieldsPerLine = 2
	wavExtension  = ".wav"
)

// Table is a loaded point table.
type Table struct {
	// Points is sorted ascending by x with distinct x values.
	Points []mathutil.Point

	// Duplicates counts lines whose x was already seen. The later line
	// replaces the earlier one.
	Duplicates int
}

// Read parses one whitespace separated "x y" pair per line. Blank lines
// and lines starting with '#' are skipped.
func Read(r io.Reader) (*Table, error) {
	values := make(map[float64]float64)
	dups := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != fieldsPerLine {
			return nil, fmt.Errorf("%w %d: want %d fields, got %d", ErrMalformedLine, lineNo, fieldsPerLine, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: x: %w", ErrMalformedLine, lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: y: %w", ErrMalformedLine, lineNo, err)
		}

		if _, seen := values[x]; seen {
			dups++
		}
		values[x] = y
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	xs := slices.Sorted(maps.Keys(values))
	points := make([]mathutil.Point, len(xs))
	for i, x := range xs {
		points[i] = mathutil.Point{X: x, Y: values[x]}
	}
	return &Table{Points: points, Duplicates: dups}, nil
}

// Load reads a table from path. Files ending in ".wav" are read as the
// first channel of a PCM WAV file.
func Load(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), wavExtension) {
		return LoadWAV(path, 0)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Write writes points as "x y" lines after a header of '#' comments and a
// blank line.
func Write(w io.Writer, points []mathutil.Point, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		if _, err := fmt.Fprintf(bw, "%s %s\n", commentPrefix, c); err != nil {
			return err
		}
	}
	if len(comments) > 0 {
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%f %f\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
