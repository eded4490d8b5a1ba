// Package chart rasterizes the financial line chart and the risk radar with
// gogpu/gg.
//
// Geometry is computed by the pure Plan* helpers and then painted; tests
// assert on the plans and only check that painting yields a decodable PNG.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/theme"
)

// Sentinel errors.
var (
	ErrInvalidInput = errors.New("invalid chart input")
	ErrEncode       = errors.New("chart encoding failed")
	ErrWrite        = errors.New("chart write failed")
)

// Canvas sizes in logical pixels. Images are written at Scale times these.
const (
	Scale       = 2
	LineWidth   = 700
	LineHeight  = 320
	RadarWidth  = 700
	RadarHeight = 500
)

// Chart titles and labels.
const (
	LineTitle      = "Path to Profitability"
	RadarTitle     = "Risk Mitigation Profile"
	SpendLabel     = "Investment"
	RevenueLabel   = "Revenue"
	BreakEvenLabel = "Break-even"
)

// Style is the visual configuration shared by both charts.
type Style struct {
	Background theme.Color
	Text       theme.Color
	Gridline   theme.Color
	Marker     theme.Color
	Spend      theme.Color
	Revenue    theme.Color
	Area       theme.Color
	AreaAlpha  float64
	LineWidth  float64
	FontSize   float64
	RadarFont  float64
}

// StyleFromTheme derives chart colors from the deck palette.
func StyleFromTheme(th theme.Theme) Style {
	return Style{
		Background: th.Background,
		Text:       th.ChartText,
		Gridline:   th.Gridline,
		Marker:     th.Marker,
		Spend:      th.Accent2,
		Revenue:    th.Accent1,
		Area:       th.Accent1,
		AreaAlpha:  0.2,
		LineWidth:  4,
		FontSize:   14,
		RadarFont:  12,
	}
}

// Renderer paints charts. It owns font sources and must be closed.
type Renderer struct {
	style   Style
	regular *text.FontSource
	bold    *text.FontSource
}

// NewRenderer loads the Go fonts used for chart text.
func NewRenderer(style Style) (*Renderer, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading chart font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("loading chart title font: %w", err)
	}
	return &Renderer{style: style, regular: regular, bold: bold}, nil
}

// Close releases the font sources.
func (r *Renderer) Close() error {
	return errors.Join(r.regular.Close(), r.bold.Close())
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style { return r.style }

// LineFrame is the plotting area of the financial chart.
func LineFrame() Frame {
	return Frame{Left: 70, Top: 60, Right: LineWidth - 30, Bottom: LineHeight - 40}
}

// RadarCenter and RadarRadius place the radar on its canvas.
var (
	RadarCenter = Vertex{X: RadarWidth / 2, Y: RadarHeight/2 + 20}
	RadarRadius = 170.0
)

// Line paints the spend and revenue curves with the break-even marker and
// writes the PNG to w.
func (r *Renderer) Line(w io.Writer, s dataset.FinancialSeries, breakEven int) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if breakEven < 0 || breakEven >= s.Months() {
		return fmt.Errorf("%w: break-even month %d outside series", ErrInvalidInput, breakEven)
	}

	plot := PlanLine(s, breakEven, LineFrame())
	dc := gg.NewContextWithScale(LineWidth, LineHeight, Scale)
	defer func() { _ = dc.Close() }()

	st := r.style
	dc.ClearWithColor(rgba(st.Background, 1))
	f := plot.Frame

	// Horizontal gridlines only, with y labels.
	dc.SetFont(r.regular.Face(st.FontSize))
	pen(dc, 1)
	for _, tick := range plot.YTicks {
		y := f.Y(tick, 0, plot.YMax)
		dc.SetColor(st.Gridline.RGBA(1))
		dc.DrawLine(f.Left, y, f.Right, y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("%w: gridline: %w", ErrEncode, err)
		}
		dc.SetColor(st.Text.RGBA(1))
		dc.DrawStringAnchored(FormatAmount(tick), f.Left-8, y, 1, 0.5)
	}
	for _, m := range plot.XTicks {
		x := f.X(float64(m), 0, float64(s.Months()-1))
		dc.DrawStringAnchored(fmt.Sprint(m), x, f.Bottom+8, 0.5, 0)
	}

	// Break-even marker.
	dc.SetColor(st.Marker.RGBA(1))
	pen(dc, 2, 8, 6)
	dc.DrawLine(plot.BreakEven, f.Top, plot.BreakEven, f.Bottom)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("%w: break-even marker: %w", ErrEncode, err)
	}
	dc.DrawStringAnchored(BreakEvenLabel, plot.BreakEven+6, f.Top+4, 0, 0)

	if err := r.polyline(dc, plot.Spend, st.Spend); err != nil {
		return err
	}
	if err := r.polyline(dc, plot.Revenue, st.Revenue); err != nil {
		return err
	}

	dc.SetFont(r.bold.Face(st.FontSize + 4))
	dc.SetColor(st.Text.RGBA(1))
	dc.DrawStringAnchored(LineTitle, f.Left, 18, 0, 0)

	if err := r.legend(dc, f.Right, 22); err != nil {
		return err
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

func (r *Renderer) polyline(dc *gg.Context, pts []Vertex, c theme.Color) error {
	if len(pts) == 0 {
		return nil
	}
	dc.SetColor(c.RGBA(1))
	pen(dc, r.style.LineWidth)
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("%w: series: %w", ErrEncode, err)
	}
	return nil
}

// legend draws a horizontal legend whose right edge is at right.
func (r *Renderer) legend(dc *gg.Context, right, top float64) error {
	const swatch, gap, pad = 22.0, 6.0, 16.0
	st := r.style
	face := r.regular.Face(st.FontSize)
	dc.SetFont(face)

	entries := []struct {
		label string
		color theme.Color
	}{
		{SpendLabel, st.Spend},
		{RevenueLabel, st.Revenue},
	}
	width := 0.0
	for i, e := range entries {
		width += swatch + gap + text.MeasureText(e.label, face)
		if i > 0 {
			width += pad
		}
	}

	x := right - width
	for _, e := range entries {
		dc.SetColor(e.color.RGBA(1))
		pen(dc, st.LineWidth)
		dc.DrawLine(x, top, x+swatch, top)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("%w: legend: %w", ErrEncode, err)
		}
		x += swatch + gap
		dc.SetColor(st.Text.RGBA(1))
		dc.DrawStringAnchored(e.label, x, top, 0, 0.5)
		x += text.MeasureText(e.label, face) + pad
	}
	return nil
}

// Radar paints the risk profile and writes the PNG to w.
func (r *Renderer) Radar(w io.Writer, risks []dataset.RiskScore) error {
	if err := dataset.ValidateRisks(risks); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	plot := PlanRadar(risks, RadarCenter, RadarRadius)
	dc := gg.NewContextWithScale(RadarWidth, RadarHeight, Scale)
	defer func() { _ = dc.Close() }()

	st := r.style
	dc.ClearWithColor(rgba(st.Background, 1))

	// Rings and spokes.
	dc.SetColor(st.Gridline.RGBA(1))
	pen(dc, 1)
	for _, ring := range plot.Rings {
		polygon(dc, plot.Ring(ring))
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("%w: ring: %w", ErrEncode, err)
		}
	}
	for _, a := range plot.Axes {
		dc.DrawLine(plot.Center.X, plot.Center.Y, a.Tip.X, a.Tip.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("%w: spoke: %w", ErrEncode, err)
		}
	}

	// Profile.
	pts := make([]Vertex, len(plot.Axes))
	for i, a := range plot.Axes {
		pts[i] = a.Point
	}
	polygon(dc, pts)
	dc.SetColor(st.Area.RGBA(st.AreaAlpha))
	if err := dc.FillPreserve(); err != nil {
		return fmt.Errorf("%w: area: %w", ErrEncode, err)
	}
	dc.SetColor(st.Area.RGBA(1))
	pen(dc, 2)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("%w: outline: %w", ErrEncode, err)
	}

	// Category labels sit just outside the tips.
	dc.SetFont(r.regular.Face(st.RadarFont))
	dc.SetColor(st.Text.RGBA(1))
	for _, a := range plot.Axes {
		ax, ay := labelAnchor(a.Tip, plot.Center)
		dx, dy := a.Tip.X-plot.Center.X, a.Tip.Y-plot.Center.Y
		scale := 12 / plot.Radius
		dc.DrawStringAnchored(a.Category, a.Tip.X+dx*scale, a.Tip.Y+dy*scale, ax, ay)
	}

	dc.SetFont(r.bold.Face(st.RadarFont + 4))
	dc.DrawStringAnchored(RadarTitle, RadarWidth/2, 18, 0.5, 0)

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// pen sets a round-joined stroke of the given width. Dash lengths are
// optional; without them the line is solid.
func pen(dc *gg.Context, width float64, dash ...float64) {
	s := gg.DefaultStroke().WithWidth(width).WithJoin(gg.LineJoinRound)
	if len(dash) > 0 {
		s = s.WithDashPattern(dash...)
	}
	dc.SetStroke(s)
}

func polygon(dc *gg.Context, pts []Vertex) {
	if len(pts) == 0 {
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}

// labelAnchor picks a text anchor so labels grow away from the center.
func labelAnchor(tip, center Vertex) (ax, ay float64) {
	const eps = 1
	switch {
	case tip.X > center.X+eps:
		ax = 0
	case tip.X < center.X-eps:
		ax = 1
	default:
		ax = 0.5
	}
	switch {
	case tip.Y < center.Y-eps:
		ay = 1
	case tip.Y > center.Y+eps:
		ay = 0
	default:
		ay = 0.5
	}
	return ax, ay
}

func rgba(c theme.Color, alpha float64) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
}
