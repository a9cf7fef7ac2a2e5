package mathutil

import (
	"fmt"
	"io"
)

// SlopeExtreme locates an extreme slope inside the analyzed region.
type SlopeExtreme struct {
	X    float64 `json:"x"`
	DyDx float64 `json:"dy_dx"`
	Y    float64 `json:"y"`
}

// SlopeStats summarizes dY/dX between adjacent samples of the region.
type SlopeStats struct {
	AbsMin  SlopeExtreme `json:"absmin"`
	AbsMax  SlopeExtreme `json:"absmax"`
	AvgDyDx float64      `json:"avg_dy_dx"`
}

// RegionAnalysis describes the samples whose y falls inside a y area of
// interest. Spans are nil when no sample is in range, Slope is nil when
// fewer than two samples are.
type RegionAnalysis struct {
	XName string      `json:"xname"`
	YName string      `json:"yname"`
	YMin  float64     `json:"-"`
	YMax  float64     `json:"-"`
	Count int         `json:"-"`
	XSpan *[2]float64 `json:"xspan,omitempty"`
	YSpan *[2]float64 `json:"yspan,omitempty"`
	Slope *SlopeStats `json:"dy_dx,omitempty"`
}

// AnalyzeRegion inspects the points (ascending by x) with yMin <= y <= yMax.
// Slopes are taken between consecutive in-range points and attributed to
// their midpoint; pairs with equal x are skipped.
func AnalyzeRegion(points []Point, yMin, yMax float64, xName, yName string) *RegionAnalysis {
	ra := &RegionAnalysis{XName: xName, YName: yName, YMin: yMin, YMax: yMax}

	var inRange []Point
	for _, p := range points {
		if yMin <= p.Y && p.Y <= yMax {
			inRange = append(inRange, p)
		}
	}
	ra.Count = len(inRange)

	var values MinMax
	values.Feed(inRange)
	if values.HasData() {
		ra.XSpan = &[2]float64{values.XMin().X, values.XMax().X}
		ra.YSpan = &[2]float64{values.YMin().Y, values.YMax().Y}
	}

	var slopes MinMax
	for i := 1; i < len(inRange); i++ {
		p0, p1 := inRange[i-1], inRange[i]
		dx := p1.X - p0.X
		if dx == 0 {
			continue
		}
		slopes.Add((p0.X+p1.X)/midpointDivisor, (p1.Y-p0.Y)/dx, (p0.Y+p1.Y)/midpointDivisor)
	}
	if slopes.HasData() {
		absMin, absMax := slopes.YAbsMin(), slopes.YAbsMax()
		ra.Slope = &SlopeStats{
			AbsMin:  SlopeExtreme{X: absMin.X, DyDx: absMin.Y, Y: absMin.Info},
			AbsMax:  SlopeExtreme{X: absMax.X, DyDx: absMax.Y, Y: absMax.Info},
			AvgDyDx: slopes.YAvg(),
		}
	}
	return ra
}

// WriteText renders the analysis in human readable form.
func (ra *RegionAnalysis) WriteText(w io.Writer) error {
	x, y := ra.XName, ra.YName
	if _, err := fmt.Fprintf(w, "Analyzing area-of-interest range of %s: %.1f - %.1f (span size %.1f)\n",
		y, ra.YMin, ra.YMax, ra.YMax-ra.YMin); err != nil {
		return err
	}
	if ra.XSpan != nil {
		if _, err := fmt.Fprintf(w, "    %d values in that range, %s from %.1f - %.1f, %s from %.1f - %.1f\n",
			ra.Count, x, ra.XSpan[0], ra.XSpan[1], y, ra.YSpan[0], ra.YSpan[1]); err != nil {
			return err
		}
	}
	if ra.Slope == nil {
		return nil
	}

	s := ra.Slope
	lines := []string{
		fmt.Sprintf("    d%s/d%s:", y, x),
		fmt.Sprintf("        Absolute d%s/d%s minimum at %s = %.1f, %.1f %s/%s (at %.1f %s)",
			y, x, x, s.AbsMin.X, s.AbsMin.DyDx, y, x, s.AbsMin.Y, y),
		fmt.Sprintf("        Absolute d%s/d%s maximum at %s = %.1f, %.1f %s/%s (at %.1f %s)",
			y, x, x, s.AbsMax.X, s.AbsMax.DyDx, y, x, s.AbsMax.Y, y),
	}
	if s.AvgDyDx != 0 {
		lines = append(lines, fmt.Sprintf("        Average: %.2f %s/%s = %.2f %s/%s",
			s.AvgDyDx, y, x, 1/s.AvgDyDx, x, y))
	} else {
		lines = append(lines, fmt.Sprintf("        Average: %.2f %s/%s", s.AvgDyDx, y, x))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
