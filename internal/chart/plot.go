package chart

import (
	"math"
	"strconv"

	"github.com/alnah/go-pitchdeck/internal/dataset"
)

// Frame is the plotting area of a chart in logical pixels.
type Frame struct {
	Left, Top, Right, Bottom float64
}

// Width of the plotting area.
func (f Frame) Width() float64 { return f.Right - f.Left }

// Height of the plotting area.
func (f Frame) Height() float64 { return f.Bottom - f.Top }

// X maps v in [lo, hi] onto the horizontal extent of the frame.
func (f Frame) X(v, lo, hi float64) float64 {
	if hi == lo {
		return f.Left
	}
	return f.Left + (v-lo)/(hi-lo)*f.Width()
}

// Y maps v in [lo, hi] onto the vertical extent, larger values higher up.
func (f Frame) Y(v, lo, hi float64) float64 {
	if hi == lo {
		return f.Bottom
	}
	return f.Bottom - (v-lo)/(hi-lo)*f.Height()
}

// Vertex is a point in logical pixels.
type Vertex struct {
	X, Y float64
}

// LinePlot is the resolved geometry of the financial chart.
type LinePlot struct {
	Frame     Frame
	YMax      float64
	YTicks    []float64
	XTicks    []int
	Spend     []Vertex
	Revenue   []Vertex
	BreakEven float64 // x of the marker
}

// PlanLine lays out the series inside frame. The y axis starts at zero and
// ends on a rounded tick above the largest amount.
func PlanLine(s dataset.FinancialSeries, breakEven int, frame Frame) LinePlot {
	ticks := NiceTicks(s.Max(), 5)
	ymax := ticks[len(ticks)-1]
	xmax := float64(max(s.Months()-1, 1))

	p := LinePlot{
		Frame:     frame,
		YMax:      ymax,
		YTicks:    ticks,
		Spend:     make([]Vertex, len(s.Spend)),
		Revenue:   make([]Vertex, len(s.Revenue)),
		BreakEven: frame.X(float64(breakEven), 0, xmax),
	}
	for i, pt := range s.Spend {
		p.Spend[i] = Vertex{frame.X(float64(pt.Month), 0, xmax), frame.Y(pt.Amount, 0, ymax)}
	}
	for i, pt := range s.Revenue {
		p.Revenue[i] = Vertex{frame.X(float64(pt.Month), 0, xmax), frame.Y(pt.Amount, 0, ymax)}
	}
	step := monthStep(int(xmax))
	for m := 0; m <= int(xmax); m += step {
		p.XTicks = append(p.XTicks, m)
	}
	return p
}

func monthStep(months int) int {
	switch {
	case months <= 12:
		return 1
	case months <= 24:
		return 3
	default:
		return 6
	}
}

// NiceTicks returns evenly spaced ticks from 0 to a rounded bound at or
// above peak, using steps of 1, 2 or 5 times a power of ten. Peaks that
// are not positive finite numbers get the unit axis, and a bound that would
// overflow is replaced by peak itself.
func NiceTicks(peak float64, target int) []float64 {
	if !(peak > 0) || math.IsInf(peak, 1) || target < 1 {
		return []float64{0, 1}
	}
	raw := peak / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}
	n := int(math.Ceil(peak/step - 1e-9))
	if math.IsInf(float64(n)*step, 0) {
		return []float64{0, peak}
	}
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	return ticks
}

// FormatAmount renders an axis value compactly: 450000 -> "450k".
func FormatAmount(v float64) string {
	switch {
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', -1, 64) + "M"
	case v >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', -1, 64) + "k"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// Axis is one spoke of the radar.
type Axis struct {
	Category string
	Score    float64
	Angle    float64 // radians, 0 = straight up, clockwise
	Tip      Vertex  // end of the spoke at MaxScore
	Point    Vertex  // the score on this spoke
}

// RadarPlot is the resolved geometry of the risk radar.
type RadarPlot struct {
	Center Vertex
	Radius float64
	Axes   []Axis
	Rings  []float64 // score of each concentric ring
}

// PlanRadar places one axis per risk in input order, starting at the top
// and going clockwise. The radial range is fixed to [MinRiskScore,
// MaxRiskScore] regardless of the data.
func PlanRadar(risks []dataset.RiskScore, center Vertex, radius float64) RadarPlot {
	p := RadarPlot{Center: center, Radius: radius}
	span := float64(dataset.MaxRiskScore - dataset.MinRiskScore)
	for r := 2; r <= dataset.MaxRiskScore; r += 2 {
		p.Rings = append(p.Rings, float64(r))
	}
	n := float64(len(risks))
	for i, rs := range risks {
		angle := 2 * math.Pi * float64(i) / n
		sin, cos := math.Sincos(angle)
		frac := (rs.Score - dataset.MinRiskScore) / span
		p.Axes = append(p.Axes, Axis{
			Category: rs.Category,
			Score:    rs.Score,
			Angle:    angle,
			Tip:      Vertex{center.X + radius*sin, center.Y - radius*cos},
			Point:    Vertex{center.X + radius*frac*sin, center.Y - radius*frac*cos},
		})
	}
	return p
}

// Ring returns the polygon of the ring at score v.
func (p RadarPlot) Ring(v float64) []Vertex {
	frac := v / float64(dataset.MaxRiskScore-dataset.MinRiskScore)
	out := make([]Vertex, len(p.Axes))
	for i, a := range p.Axes {
		sin, cos := math.Sincos(a.Angle)
		out[i] = Vertex{p.Center.X + p.Radius*frac*sin, p.Center.Y - p.Radius*frac*cos}
	}
	return out
}

// Distance returns how far v lies from the center.
func (p RadarPlot) Distance(v Vertex) float64 {
	return math.Hypot(v.X-p.Center.X, v.Y-p.Center.Y)
}
