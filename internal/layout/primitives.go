package layout

import (
	"github.com/alnah/go-pitchdeck/internal/content"
	"github.com/alnah/go-pitchdeck/internal/theme"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type scale shared by every slide.
const (
	TitleSize     = 36
	SubtitleSize  = 18
	CardTitleSize = 16
	CardBodySize  = 14
)

// Header placement.
var (
	titleBox    = At(0.5, 0.5, 10, 1)
	subtitleBox = At(0.5, 1.1, 10, 0.5)
)

// DecorativeBar appends a full-width accent1 strip with no outline.
func DecorativeBar(s *Slide, th theme.Theme, top, height float64) {
	s.Add(Shape{
		Geometry: Rect,
		Box:      At(0, top, SlideWidth, height),
		Fill:     th.Accent1,
	})
}

// Header appends the slide title and, when subtitle is not empty, the
// subtitle below it.
func Header(s *Slide, th theme.Theme, title, subtitle string) {
	s.Add(TextBox{
		Box: titleBox,
		Paragraphs: []Paragraph{{
			Text:  cases.Upper(language.Und).String(title),
			Style: TextStyle{Font: th.Fonts.Title, Size: TitleSize, Bold: true, Color: th.Accent1},
		}},
	})
	if subtitle == "" {
		return
	}
	s.Add(TextBox{
		Box: subtitleBox,
		Paragraphs: []Paragraph{{
			Text:  subtitle,
			Style: TextStyle{Font: th.Fonts.Body, Size: SubtitleSize, Color: th.Text},
		}},
	})
}

// CardBodyBox is the body text frame of a card placed at box.
func CardBodyBox(box Box) Box {
	return At(box.Left+0.2, box.Top+0.8, box.Width-0.4, box.Height-1)
}

// CardTitleBox is the title text frame of a card placed at box.
func CardTitleBox(box Box) Box {
	return At(box.Left+0.2, box.Top+0.2, box.Width-0.4, 0.5)
}

// Card appends a rounded panel with a title and a markdown body. Body lines
// are wrapped with w so none is wider than the body frame.
func Card(s *Slide, th theme.Theme, w Wrapper, box Box, title, body string) {
	border := th.CardBorder
	s.Add(Shape{
		Geometry: RoundRect,
		Box:      box,
		Fill:     th.CardFill,
		Line:     &border,
	})
	s.Add(TextBox{
		Box: CardTitleBox(box),
		Paragraphs: []Paragraph{{
			Text:  title,
			Style: TextStyle{Font: th.Fonts.Body, Size: CardTitleSize, Bold: true, Color: th.Accent2},
		}},
	})

	bodyBox := CardBodyBox(box)
	style := TextStyle{Font: th.Fonts.Body, Size: CardBodySize, Color: th.Text}
	var paras []Paragraph
	for _, line := range content.Lines(body) {
		for _, wrapped := range w.Wrap(line, bodyBox.Width, style.Size, style.Bold) {
			paras = append(paras, Paragraph{Text: wrapped, Style: style})
		}
	}
	s.Add(TextBox{Box: bodyBox, Paragraphs: paras, Wrap: true})
}

// Lines builds one paragraph per string with a shared style.
func Lines(style TextStyle, align Align, texts ...string) []Paragraph {
	out := make([]Paragraph, len(texts))
	for i, t := range texts {
		out[i] = Paragraph{Text: t, Style: style, Align: align}
	}
	return out
}
