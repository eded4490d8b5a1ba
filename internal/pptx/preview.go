package pptx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/alnah/go-pitchdeck/internal/fileutil"
	"github.com/alnah/go-pitchdeck/internal/layout"
)

// PreviewWidth is the pixel width of slide previews.
const PreviewWidth = 1280

// Frame metrics PowerPoint applies to text boxes, in inches and as a
// multiple of the font size.
const (
	frameInsetY = 0.05
	lineSpacing = 1.2
	roundRatio  = 0.16667
)

// PreviewName returns the file name of the preview for slide n (1-based).
func PreviewName(n int) string {
	return fmt.Sprintf("slide-%02d.png", n)
}

// PreviewHeight is the pixel height of a preview for deck.
func PreviewHeight(deck *layout.Deck) int {
	return int(math.Round(deck.Height * PreviewWidth / deck.Width))
}

// Previews rasterizes every slide of deck into dir and returns the written
// paths in slide order. Slides are painted from the same instructions the
// presentation is built from, with the Go fonts standing in for the deck
// fonts. Each file is written atomically.
func (w *Writer) Previews(ctx context.Context, deck *layout.Deck, dir string) ([]string, error) {
	if len(deck.Slides) == 0 {
		return nil, ErrEmptyDeck
	}
	if deck.Width <= 0 || deck.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas %gx%g", ErrPreview, deck.Width, deck.Height)
	}

	r, err := w.newRasterizer(deck)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPreview, err)
	}
	defer func() { _ = r.Close() }()

	paths := make([]string, 0, len(deck.Slides))
	for i, s := range deck.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, PreviewName(i+1))
		err = fileutil.WriteAtomicFunc(path, func(out io.Writer) error {
			return r.paint(out, s)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: slide %d (%s): %w", ErrPreview, i+1, s.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// rasterizer paints slides at a fixed pixels-per-inch scale.
type rasterizer struct {
	w             *Writer
	regular, bold *text.FontSource
	scale         float64
	width, height int
}

func (w *Writer) newRasterizer(deck *layout.Deck) (*rasterizer, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading preview font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("loading preview bold font: %w", err)
	}
	return &rasterizer{
		w:       w,
		regular: regular,
		bold:    bold,
		scale:   PreviewWidth / deck.Width,
		width:   PreviewWidth,
		height:  PreviewHeight(deck),
	}, nil
}

func (r *rasterizer) Close() error {
	return errors.Join(r.regular.Close(), r.bold.Close())
}

func (r *rasterizer) paint(out io.Writer, s *layout.Slide) error {
	dc := gg.NewContext(r.width, r.height)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)

	for i, ins := range s.Instructions() {
		var err error
		switch v := ins.(type) {
		case layout.Shape:
			err = r.shape(dc, v)
		case layout.TextBox:
			r.paragraphs(dc, v.Box, v.Paragraphs)
		case layout.Picture:
			err = r.picture(dc, v)
		case layout.Table:
			err = r.table(dc, v)
		default:
			err = fmt.Errorf("%w: %T", ErrUnknownInstruction, ins)
		}
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return dc.EncodePNG(out)
}

// px converts a box in inches to pixels.
func (r *rasterizer) px(b layout.Box) (x, y, w, h float64) {
	return b.Left * r.scale, b.Top * r.scale, b.Width * r.scale, b.Height * r.scale
}

// path adds the outline of a preset geometry to the current path.
func (r *rasterizer) path(dc *gg.Context, kind layout.ShapeKind, b layout.Box) {
	x, y, w, h := r.px(b)
	switch kind {
	case layout.RoundRect:
		dc.DrawRoundedRectangle(x, y, w, h, roundRatio*math.Min(w, h))
	case layout.Ellipse:
		dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	default:
		dc.DrawRectangle(x, y, w, h)
	}
}

func (r *rasterizer) shape(dc *gg.Context, sh layout.Shape) error {
	r.path(dc, sh.Geometry, sh.Box)
	dc.SetColor(sh.Fill.RGBA(1))
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("filling %s: %w", sh.Geometry, err)
	}
	if sh.Line != nil {
		r.path(dc, sh.Geometry, sh.Box)
		dc.SetColor(sh.Line.RGBA(1))
		dc.SetLineWidth(r.scale / layout.PointsPerInch)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("outlining %s: %w", sh.Geometry, err)
		}
	}
	r.paragraphs(dc, sh.Box, sh.Paragraphs)
	return nil
}

// paragraphs lays text out top-down inside the frame insets, wrapping each
// paragraph to the usable width. Text that overflows the frame is painted
// anyway, as PowerPoint does.
func (r *rasterizer) paragraphs(dc *gg.Context, box layout.Box, paras []layout.Paragraph) {
	inner := box.Inset(layout.TextInset, frameInsetY)
	left, top, width, _ := r.px(inner)
	y := top
	for _, p := range paras {
		size := float64(p.Style.Size) * r.scale / layout.PointsPerInch
		if size <= 0 {
			continue
		}
		src := r.regular
		if p.Style.Bold {
			src = r.bold
		}
		face := src.Face(size)
		dc.SetFont(face)
		dc.SetColor(p.Style.Color.RGBA(1))

		x, ax := left, 0.0
		switch p.Align {
		case layout.AlignCenter:
			x, ax = left+width/2, 0.5
		case layout.AlignRight:
			x, ax = left+width, 1
		}
		for _, line := range wrapLines(p.Text, face, width) {
			dc.DrawStringAnchored(line, x, y, ax, 0)
			y += size * lineSpacing
		}
	}
}

func wrapLines(s string, face text.Face, width float64) []string {
	if s == "" || width <= 0 {
		return []string{s}
	}
	results := text.WrapText(s, face, width, text.WrapWordChar)
	lines := make([]string, 0, len(results))
	for _, res := range results {
		lines = append(lines, strings.TrimRight(res.Text, " "))
	}
	return lines
}

func (r *rasterizer) picture(dc *gg.Context, pic layout.Picture) error {
	img, err := r.w.images.LoadImage(pic.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPicture, err)
	}
	box, err := layout.FitPicture(pic, img.Width, img.Height)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPicture, pic.Path, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPicture, pic.Path, err)
	}

	x, y, w, h := r.px(box)
	dc.DrawImageEx(gg.ImageBufFromImage(decoded), gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
	})
	return nil
}

func (r *rasterizer) table(dc *gg.Context, t layout.Table) error {
	cells, err := tableCells(t)
	if err != nil {
		return err
	}
	for _, c := range cells {
		if err := r.shape(dc, layout.Shape{
			Geometry:   layout.Rect,
			Box:        c.box,
			Fill:       t.CellFill,
			Paragraphs: []layout.Paragraph{{Text: c.text, Style: t.CellStyle}},
		}); err != nil {
			return err
		}
	}
	return nil
}
