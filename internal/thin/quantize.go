package thin

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-curve-minify/internal/mathutil"
)

// ErrOutOfRange indicates a coordinate that rounds outside the int64 range.
var ErrOutOfRange = errors.New("thin: coordinate out of int64 range")

// int64Bound is 2^63, the first float64 value above the int64 range.
const int64Bound = 1 << 63

// Quantize rounds points to integers, half to even, for thinning.
//
// When several points round to the same x, the one whose x was closest to
// that integer wins, and on a tie the smaller y wins. Points with a
// non-finite coordinate are dropped. The result is sorted by x.
//
// Returns ErrOutOfRange when a finite coordinate rounds to a value an
// int64 cannot hold.
func Quantize(points []mathutil.Point) ([]mathutil.IntPoint, error) {
	type candidate struct {
		dist float64
		y    float64
		ry   int64
	}
	best := make(map[int64]candidate, len(points))
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		rx, ry := math.RoundToEven(p.X), math.RoundToEven(p.Y)
		if !inInt64Range(rx) || !inInt64Range(ry) {
			return nil, fmt.Errorf("%w: (%g, %g)", ErrOutOfRange, p.X, p.Y)
		}
		key := int64(rx)
		c := candidate{dist: math.Abs(rx - p.X), y: p.Y, ry: int64(ry)}
		if prev, ok := best[key]; ok {
			if prev.dist < c.dist || (prev.dist == c.dist && prev.y <= c.y) {
				continue
			}
		}
		best[key] = c
	}

	out := make([]mathutil.IntPoint, 0, len(best))
	for x, c := range best {
		out = append(out, mathutil.IntPoint{X: x, Y: c.ry})
	}
	slices.SortFunc(out, func(a, b mathutil.IntPoint) int {
		return cmp.Compare(a.X, b.X)
	})
	return out, nil
}

func inInt64Range(v float64) bool {
	return v >= -int64Bound && v < int64Bound
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
