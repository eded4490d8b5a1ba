package layout

import "github.com/alnah/go-pitchdeck/internal/theme"

// Kind identifies an instruction type.
type Kind string

// Instruction kinds.
const (
	KindShape   Kind = "shape"
	KindText    Kind = "text"
	KindPicture Kind = "picture"
	KindTable   Kind = "table"
)

// Instruction is one drawable element of a slide. The set of implementations
// is closed: Shape, TextBox, Picture and Table.
type Instruction interface {
	Kind() Kind
	Bounds() Box
}

// Align is horizontal paragraph alignment.
type Align int

// Alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle is the run formatting applied to a whole paragraph.
type TextStyle struct {
	Font  string // empty = renderer default
	Size  int    // points
	Bold  bool
	Color theme.Color
}

// Paragraph is one line of a text frame.
type Paragraph struct {
	Text  string
	Style TextStyle
	Align Align
}

// ShapeKind is the preset geometry of a Shape.
type ShapeKind string

// Preset geometries.
const (
	Rect      ShapeKind = "rect"
	RoundRect ShapeKind = "roundRect"
	Ellipse   ShapeKind = "ellipse"
)

// Shape is a filled preset geometry, optionally outlined and optionally
// holding text.
type Shape struct {
	Geometry   ShapeKind
	Box        Box
	Fill       theme.Color
	Line       *theme.Color // nil = no outline
	Paragraphs []Paragraph
}

// Kind implements Instruction.
func (Shape) Kind() Kind { return KindShape }

// Bounds implements Instruction.
func (s Shape) Bounds() Box { return s.Box }

// TextBox is an unfilled text frame.
type TextBox struct {
	Box        Box
	Paragraphs []Paragraph
	Wrap       bool
}

// Kind implements Instruction.
func (TextBox) Kind() Kind { return KindText }

// Bounds implements Instruction.
func (t TextBox) Bounds() Box { return t.Box }

// Fit tells the renderer which dimension of a picture slot is pinned.
type Fit int

// Fit modes.
const (
	FitHeight Fit = iota // height = slot height, width follows aspect ratio
	FitWidth             // width = slot width, height follows aspect ratio
)

// Picture is an image file placed in a slot. The final box is decided by
// FitPicture once the image dimensions are known.
type Picture struct {
	Path string
	Slot Box
	Fit  Fit
}

// Kind implements Instruction.
func (Picture) Kind() Kind { return KindPicture }

// Bounds implements Instruction.
func (p Picture) Bounds() Box { return p.Slot }

// Table is a grid of text cells with explicit column widths. Every cell
// receives the same fill and text style.
type Table struct {
	Box       Box
	Columns   []float64 // widths in inches
	Rows      [][]string
	CellFill  theme.Color
	CellStyle TextStyle
}

// Kind implements Instruction.
func (Table) Kind() Kind { return KindTable }

// Bounds implements Instruction.
func (t Table) Bounds() Box { return t.Box }

// RowHeight is the table height split evenly across rows.
func (t Table) RowHeight() float64 {
	if len(t.Rows) == 0 {
		return 0
	}
	return t.Box.Height / float64(len(t.Rows))
}

// Compile-time interface checks.
var (
	_ Instruction = Shape{}
	_ Instruction = TextBox{}
	_ Instruction = Picture{}
	_ Instruction = Table{}
)
