package mathutil

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// TaggedPoint is a point that remembers an extra value observed with it.
type TaggedPoint struct {
	X    float64
	Y    float64
	Info float64
}

// MinMax tracks the extremes of a stream of points.
//
// The zero value is ready to use. Extremes keep the first point that
// reached them.
type MinMax struct {
	count int
	ySum  float64

	xMin, xMax       TaggedPoint
	yMin, yMax       TaggedPoint
	yAbsMin, yAbsMax TaggedPoint
}

// HasData reports whether at least one point was added.
func (m *MinMax) HasData() bool {
	return m.count > 0
}

// Count returns the number of points added.
func (m *MinMax) Count() int {
	return m.count
}

// Add records a point with an attached info value.
func (m *MinMax) Add(x, y, info float64) {
	m.observe(TaggedPoint{X: x, Y: y, Info: info})
	m.ySum += y
}

// Feed records every point in points. The y sum for the batch is
// accumulated in one vectorized pass.
func (m *MinMax) Feed(points []Point) *MinMax {
	if len(points) == 0 {
		return m
	}
	for _, p := range points {
		m.observe(TaggedPoint{X: p.X, Y: p.Y})
	}
	m.ySum += f64.Sum(YValues(points))
	return m
}

func (m *MinMax) observe(p TaggedPoint) {
	if m.count == 0 {
		m.xMin, m.xMax = p, p
		m.yMin, m.yMax = p, p
		m.yAbsMin, m.yAbsMax = p, p
		m.count = 1
		return
	}
	m.count++

	if p.X < m.xMin.X {
		m.xMin = p
	}
	if p.X > m.xMax.X {
		m.xMax = p
	}
	if p.Y < m.yMin.Y {
		m.yMin = p
	}
	if p.Y > m.yMax.Y {
		m.yMax = p
	}
	if math.Abs(p.Y) < math.Abs(m.yAbsMin.Y) {
		m.yAbsMin = p
	}
	if math.Abs(p.Y) > math.Abs(m.yAbsMax.Y) {
		m.yAbsMax = p
	}
}

// YAvg returns the mean y value, or NaN without data.
func (m *MinMax) YAvg() float64 {
	if m.count == 0 {
		return math.NaN()
	}
	return m.ySum / float64(m.count)
}

// XMin returns the point with the smallest x.
func (m *MinMax) XMin() TaggedPoint { return m.xMin }

// XMax returns the point with the largest x.
func (m *MinMax) XMax() TaggedPoint { return m.xMax }

// YMin returns the point with the smallest y.
func (m *MinMax) YMin() TaggedPoint { return m.yMin }

// YMax returns the point with the largest y.
func (m *MinMax) YMax() TaggedPoint { return m.yMax }

// YAbsMin returns the point with the smallest |y|.
func (m *MinMax) YAbsMin() TaggedPoint { return m.yAbsMin }

// YAbsMax returns the point with the largest |y|.
func (m *MinMax) YAbsMax() TaggedPoint { return m.yAbsMax }
