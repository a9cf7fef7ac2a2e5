package minify

import (
	"errors"
	"math"
	"testing"
)

// TestMinifyAllParallel tests that parallel processing produces correct results.
func TestMinifyAllParallel(t *testing.T) {
	const (
		tables     = 8
		numSamples = 2000
	)

	// Different phases per table so each table thins differently
	input := make([][]Point, tables)
	for i := range tables {
		input[i] = make([]Point, numSamples)
		phase := float64(i) * math.Pi / 4
		for j := range numSamples {
			x := float64(j)
			input[i][j] = Point{X: x, Y: 1000 * math.Sin(2*math.Pi*x/500+phase)}
		}
	}

	configSeq := &Config{MaxError: 2, EnableParallel: false}
	configPar := &Config{MaxError: 2, EnableParallel: true}

	outputSeq, err := MinifyAll(input, configSeq)
	if err != nil {
		t.Fatalf("Sequential MinifyAll failed: %v", err)
	}

	outputPar, err := MinifyAll(input, configPar)
	if err != nil {
		t.Fatalf("Parallel MinifyAll failed: %v", err)
	}

	if len(outputSeq) != tables || len(outputPar) != tables {
		t.Fatalf("Result count mismatch: seq=%d, par=%d", len(outputSeq), len(outputPar))
	}

	for i := range tables {
		seq, par := outputSeq[i].Cornerpoints, outputPar[i].Cornerpoints
		if len(seq) != len(par) {
			t.Fatalf("Table %d: cornerpoint count mismatch: seq=%d, par=%d", i, len(seq), len(par))
		}
		for j := range seq {
			if seq[j] != par[j] {
				t.Errorf("Table %d, cornerpoint %d: seq=%+v, par=%+v", i, j, seq[j], par[j])
			}
		}
		if outputSeq[i].MaxError != outputPar[i].MaxError {
			t.Errorf("Table %d: max error mismatch: seq=%f, par=%f", i, outputSeq[i].MaxError, outputPar[i].MaxError)
		}
		if len(seq) >= numSamples {
			t.Errorf("Table %d: expected thinning, got %d cornerpoints", i, len(seq))
		}
	}
}

// TestMinifyAllParallel_Error tests that a failing table fails the whole call.
func TestMinifyAllParallel_Error(t *testing.T) {
	input := [][]Point{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		nil,
		{{X: 0, Y: 5}},
	}

	for _, parallel := range []bool{false, true} {
		_, err := MinifyAll(input, &Config{MaxError: 1, EnableParallel: parallel})
		if !errors.Is(err, ErrEmptyTable) {
			t.Errorf("parallel=%v: expected ErrEmptyTable, got %v", parallel, err)
		}
	}
}

// TestMinifyAll_InvalidConfig tests config validation before any work is done.
func TestMinifyAll_InvalidConfig(t *testing.T) {
	if _, err := MinifyAll(nil, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil config: expected ErrInvalidConfig, got %v", err)
	}
	if _, err := MinifyAll(nil, &Config{MaxError: -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative error: expected ErrInvalidConfig, got %v", err)
	}

	out, err := MinifyAll(nil, &Config{})
	if err != nil || len(out) != 0 {
		t.Errorf("no tables: got %v, %v", out, err)
	}
}
