// Package layout describes slides as ordered lists of draw instructions.
//
// Nothing in this package talks to a document library. Slide routines append
// Shape, TextBox, Picture and Table instructions to a Slide, and a renderer
// (internal/pptx, or a recording double in tests) consumes the finished Deck.
//
// All geometry is in inches. EMU converts to the unit OOXML stores.
package layout

// Unit conversions.
const (
	EMUPerInch    = 914400
	PointsPerInch = 72
)

// Canvas size of a 16:9 widescreen deck.
const (
	SlideWidth  = 13.333
	SlideHeight = 7.5
)

// EMU converts inches to English Metric Units, truncating like python-pptx's
// Inches() so geometry matches decks produced by other tools.
func EMU(inches float64) int64 {
	return int64(inches * EMUPerInch)
}

// Box is a placement rectangle in inches.
type Box struct {
	Left, Top, Width, Height float64
}

// At builds a Box from left, top, width and height.
func At(left, top, width, height float64) Box {
	return Box{Left: left, Top: top, Width: width, Height: height}
}

// Right is the x coordinate of the box's right edge.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom is the y coordinate of the box's bottom edge.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// CenterX is the horizontal center of the box.
func (b Box) CenterX() float64 { return b.Left + b.Width/2 }

// Inset shrinks the box by dx on the left and right and dy on top and bottom.
func (b Box) Inset(dx, dy float64) Box {
	return Box{Left: b.Left + dx, Top: b.Top + dy, Width: b.Width - 2*dx, Height: b.Height - 2*dy}
}

// Contains reports whether inner lies within b, with a tolerance for
// floating point noise from inch arithmetic.
func (b Box) Contains(inner Box) bool {
	const eps = 1e-9
	return inner.Left >= b.Left-eps && inner.Top >= b.Top-eps &&
		inner.Right() <= b.Right()+eps && inner.Bottom() <= b.Bottom()+eps
}

// EMU returns the box as offset and extent in EMU.
func (b Box) EMU() (x, y, cx, cy int64) {
	return EMU(b.Left), EMU(b.Top), EMU(b.Width), EMU(b.Height)
}

// FullSlide is the whole canvas.
func FullSlide() Box {
	return Box{Width: SlideWidth, Height: SlideHeight}
}
