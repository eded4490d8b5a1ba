// Package pptx renders a layout.Deck as an OOXML presentation with GoPPT and
// reads finished presentations back for inspection.
package pptx

import (
	"context"
	"errors"
	"fmt"
	"io"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/alnah/go-pitchdeck/internal/assets"
	"github.com/alnah/go-pitchdeck/internal/fileutil"
	"github.com/alnah/go-pitchdeck/internal/layout"
	"github.com/alnah/go-pitchdeck/internal/theme"
)

// Sentinel errors.
var (
	ErrEmptyDeck          = errors.New("deck has no slides")
	ErrPicture            = errors.New("picture cannot be placed")
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrWrite              = errors.New("presentation write failed")
	ErrRead               = errors.New("presentation read failed")
	ErrPreview            = errors.New("slide preview failed")
	ErrTable              = errors.New("table row has more cells than columns")
)

// Writer turns decks into GoPPT presentations.
type Writer struct {
	images assets.ImageLoader
}

// NewWriter creates a Writer that reads pictures through images. A nil
// loader reads them straight from disk.
func NewWriter(images assets.ImageLoader) *Writer {
	if images == nil {
		images = assets.FileLoader{}
	}
	return &Writer{images: images}
}

// Write renders deck and saves it to path. The file is replaced atomically:
// on error any previous presentation at path is left as it was.
func (w *Writer) Write(ctx context.Context, deck *layout.Deck, path string) error {
	p, err := w.Presentation(ctx, deck)
	if err != nil {
		return err
	}
	pw, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	err = fileutil.WriteAtomicFunc(path, func(out io.Writer) error {
		return pw.(*ppt.PPTXWriter).WriteTo(out)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Presentation builds the in-memory GoPPT document for deck. The canvas size
// is set before the first slide is drawn, and slides and instructions keep
// their order.
func (w *Writer) Presentation(ctx context.Context, deck *layout.Deck) (*ppt.Presentation, error) {
	if len(deck.Slides) == 0 {
		return nil, ErrEmptyDeck
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = deck.Title
	p.GetDocumentProperties().Creator = deck.Author
	setSlideSize(p, layout.EMU(deck.Width), layout.EMU(deck.Height))

	for i, s := range deck.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		if err := w.drawSlide(slide, s); err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i+1, s.Name, err)
		}
	}
	return p, nil
}

func (w *Writer) drawSlide(slide *ppt.Slide, s *layout.Slide) error {
	for i, ins := range s.Instructions() {
		switch v := ins.(type) {
		case layout.Shape:
			drawShape(slide, v)
		case layout.TextBox:
			drawText(slide, v)
		case layout.Picture:
			if err := w.drawPicture(slide, v); err != nil {
				return fmt.Errorf("instruction %d: %w", i, err)
			}
		case layout.Table:
			if err := drawTable(slide, v); err != nil {
				return fmt.Errorf("instruction %d: %w", i, err)
			}
		default:
			return fmt.Errorf("%w: %T", ErrUnknownInstruction, ins)
		}
	}
	return nil
}

// drawShape emits plain rectangles as filled text frames and everything
// else as a preset geometry. Text on a non-rectangular shape goes into a
// transparent frame over it.
func drawShape(slide *ppt.Slide, sh layout.Shape) {
	if sh.Geometry == layout.Rect && sh.Line == nil {
		frame := textFrame(slide, sh.Box)
		frame.SetFill(solidFill(sh.Fill))
		writeParagraphs(frame, sh.Paragraphs)
		return
	}
	addAutoShape(slide, sh)
	if len(sh.Paragraphs) > 0 {
		writeParagraphs(textFrame(slide, sh.Box), sh.Paragraphs)
	}
}

func drawText(slide *ppt.Slide, tb layout.TextBox) {
	writeParagraphs(textFrame(slide, tb.Box), tb.Paragraphs)
}

func (w *Writer) drawPicture(slide *ppt.Slide, pic layout.Picture) error {
	img, err := w.images.LoadImage(pic.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPicture, err)
	}
	box, err := layout.FitPicture(pic, img.Width, img.Height)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPicture, pic.Path, err)
	}

	x, y, cx, cy := box.EMU()
	shape := slide.CreateDrawingShape()
	shape.SetImageData(img.Data, img.MIME())
	shape.SetOffsetX(x).SetOffsetY(y)
	shape.SetWidth(cx).SetHeight(cy)
	return nil
}

// drawTable lays the grid out as one filled frame per cell.
func drawTable(slide *ppt.Slide, t layout.Table) error {
	cells, err := tableCells(t)
	if err != nil {
		return err
	}
	for _, c := range cells {
		frame := textFrame(slide, c.box)
		frame.SetFill(solidFill(t.CellFill))
		writeParagraphs(frame, []layout.Paragraph{{Text: c.text, Style: t.CellStyle}})
	}
	return nil
}

type cell struct {
	box  layout.Box
	text string
}

// tableCells places every cell of t in row-major order. Rows may be shorter
// than the column list; a longer row is an error.
func tableCells(t layout.Table) ([]cell, error) {
	rowH := t.RowHeight()
	var cells []cell
	for r, row := range t.Rows {
		if len(row) > len(t.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells for %d columns", ErrTable, r, len(row), len(t.Columns))
		}
		left := t.Box.Left
		for c, text := range row {
			cells = append(cells, cell{box: layout.At(left, t.Box.Top+float64(r)*rowH, t.Columns[c], rowH), text: text})
			left += t.Columns[c]
		}
	}
	return cells, nil
}

func textFrame(slide *ppt.Slide, box layout.Box) *ppt.RichTextShape {
	x, y, cx, cy := box.EMU()
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(x).SetOffsetY(y)
	shape.SetWidth(cx).SetHeight(cy)
	return shape
}

// writeParagraphs appends one paragraph per entry. The frame starts with an
// empty paragraph, so only the second and later entries create new ones.
func writeParagraphs(shape *ppt.RichTextShape, paras []layout.Paragraph) {
	for i, p := range paras {
		if i > 0 {
			shape.CreateParagraph()
		}
		if p.Text != "" {
			run := shape.CreateTextRun(p.Text)
			f := run.GetFont()
			f.SetSize(p.Style.Size).SetBold(p.Style.Bold).SetColor(ppt.NewColor(p.Style.Color.ARGB()))
			if p.Style.Font != "" {
				f.Name = p.Style.Font
			}
		}
		switch p.Align {
		case layout.AlignCenter:
			shape.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
		case layout.AlignRight:
			shape.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
		}
	}
}

func solidFill(c theme.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}
