package thin

import (
	"math"
	"math/big"

	"github.com/tphakala/go-curve-minify/internal/mathutil"
)

// slopeCone tracks the slopes a line from an anchor may take while every
// added point stays within the bound of it. A point at horizontal distance
// run > 0 and vertical distance rise from the anchor allows the slopes
// [(rise - bound)/run, (rise + bound)/run]; the cone is the intersection of
// those ranges. All arithmetic is exact.
type slopeCone struct {
	anchor    mathutil.IntPoint
	unbounded bool
	hasPoints bool

	bound, lo, hi big.Rat

	// Scratch values reused between calls.
	dx, dy           big.Int
	rise, run, slope big.Rat
	edge             big.Rat
}

func newSlopeCone(anchor mathutil.IntPoint, bound float64) *slopeCone {
	c := &slopeCone{anchor: anchor, unbounded: math.IsInf(bound, 1)}
	if !c.unbounded {
		c.bound.SetFloat64(bound)
	}
	return c
}

// offsets sets dx and dy to the distance from the anchor to p.
func (c *slopeCone) offsets(p mathutil.IntPoint) {
	diff(&c.dx, p.X, c.anchor.X)
	diff(&c.dy, p.Y, c.anchor.Y)
}

// add narrows the cone to the slopes that keep p within the bound. p must
// lie right of the anchor.
func (c *slopeCone) add(p mathutil.IntPoint) {
	if c.unbounded {
		return
	}
	c.offsets(p)
	c.rise.SetInt(&c.dy)
	c.run.SetInt(&c.dx)

	c.edge.Sub(&c.rise, &c.bound)
	c.edge.Quo(&c.edge, &c.run)
	if !c.hasPoints || c.edge.Cmp(&c.lo) > 0 {
		c.lo.Set(&c.edge)
	}

	c.edge.Add(&c.rise, &c.bound)
	c.edge.Quo(&c.edge, &c.run)
	if !c.hasPoints || c.edge.Cmp(&c.hi) < 0 {
		c.hi.Set(&c.edge)
	}
	c.hasPoints = true
}

// admits reports whether the line from the anchor through p keeps every
// added point within the bound.
func (c *slopeCone) admits(p mathutil.IntPoint) bool {
	if c.unbounded || !c.hasPoints {
		return true
	}
	c.offsets(p)
	c.slope.SetFrac(&c.dy, &c.dx)
	return c.slope.Cmp(&c.lo) >= 0 && c.slope.Cmp(&c.hi) <= 0
}
