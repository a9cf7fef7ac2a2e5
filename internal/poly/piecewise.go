package poly

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrNoSegments indicates an attempt to build a curve without segments.
	ErrNoSegments = errors.New("poly: curve needs at least one segment")

	// ErrDuplicateStart indicates two segments starting at the same x.
	ErrDuplicateStart = errors.New("poly: duplicate segment start")
)

// NoHint is the hint value meaning "no segment located yet".
const NoHint = -1

// Segment is a polynomial that owns the x range starting at Start.
type Segment struct {
	Start float64
	Poly  Polynomial
}

// Piecewise is a curve made of polynomial segments sorted by Start.
//
// Segment i owns [Start_i, Start_i+1). The first segment also owns
// everything below its start and the last segment everything above its
// start, so every x has exactly one owner. A Piecewise is immutable and
// safe for concurrent use.
type Piecewise struct {
	segs []Segment
}

// NewPiecewise builds a curve from segments in any order.
func NewPiecewise(segments []Segment) (*Piecewise, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	segs := slices.Clone(segments)
	slices.SortStableFunc(segs, func(a, b Segment) int {
		return cmp.Compare(a.Start, b.Start)
	})
	for i := 1; i < len(segs); i++ {
		if segs[i].Start == segs[i-1].Start {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateStart, segs[i].Start)
		}
	}
	return &Piecewise{segs: segs}, nil
}

// Len returns the number of segments.
func (pw *Piecewise) Len() int {
	return len(pw.segs)
}

// Segments returns a copy of the segments in ascending order.
func (pw *Piecewise) Segments() []Segment {
	return slices.Clone(pw.segs)
}

// Knots returns the interior segment boundaries.
func (pw *Piecewise) Knots() []float64 {
	knots := make([]float64, 0, len(pw.segs)-1)
	for _, s := range pw.segs[1:] {
		knots = append(knots, s.Start)
	}
	return knots
}

// owns reports whether segment i owns x.
func (pw *Piecewise) owns(x float64, i int) bool {
	last := len(pw.segs) - 1
	if i > 0 && x < pw.segs[i].Start {
		return false
	}
	if i < last && x >= pw.segs[i+1].Start {
		return false
	}
	return true
}

// Locate returns the index of the segment owning x.
//
// When hint is a valid index and that segment still owns x the hint is
// returned in O(1); otherwise the segment is found by binary search in
// O(log n). Pass NoHint when nothing was located yet.
func (pw *Piecewise) Locate(x float64, hint int) int {
	if hint >= 0 && hint < len(pw.segs) && pw.owns(x, hint) {
		return hint
	}
	return pw.search(x)
}

// search finds the last segment starting at or below x, clamped to the
// first segment.
func (pw *Piecewise) search(x float64) int {
	i := sort.Search(len(pw.segs), func(i int) bool {
		return pw.segs[i].Start > x
	})
	return max(i-1, 0)
}

// Eval evaluates the curve at x without a location hint.
func (pw *Piecewise) Eval(x float64) float64 {
	return pw.segs[pw.search(x)].Poly.Eval(x)
}

// EvalHint evaluates the curve at x starting from hint and returns the
// index of the owning segment as the hint for the next query.
func (pw *Piecewise) EvalHint(x float64, hint int) (float64, int) {
	i := pw.Locate(x, hint)
	return pw.segs[i].Poly.Eval(x), i
}

// Derivative returns the piecewise derivative with the same segment starts.
func (pw *Piecewise) Derivative() *Piecewise {
	segs := make([]Segment, len(pw.segs))
	for i, s := range pw.segs {
		segs[i] = Segment{Start: s.Start, Poly: s.Poly.Derivative()}
	}
	return &Piecewise{segs: segs}
}

// Cursor evaluates a curve for one caller and remembers the last located
// segment, which makes sweeps over increasing x O(1) per query. A Cursor
// must not be shared between goroutines; the curve it reads may be.
type Cursor struct {
	pw   *Piecewise
	last int
}

// NewCursor returns a cursor over pw with no location hint.
func NewCursor(pw *Piecewise) *Cursor {
	return &Cursor{pw: pw, last: NoHint}
}

// Eval evaluates the curve at x and updates the hint.
func (c *Cursor) Eval(x float64) float64 {
	var y float64
	y, c.last = c.pw.EvalHint(x, c.last)
	return y
}

// Index returns the last located segment, or NoHint.
func (c *Cursor) Index() int {
	return c.last
}

// Reset forgets the location hint.
func (c *Cursor) Reset() {
	c.last = NoHint
}
