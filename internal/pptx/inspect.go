package pptx

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlideSummary describes one slide of a saved presentation.
type SlideSummary struct {
	Shapes   int
	Pictures int
	Texts    []string // non-empty paragraphs in shape order
}

// Summary is what Inspect reads back from a presentation file.
type Summary struct {
	Title  string
	Author string
	Slides []SlideSummary
}

// Pictures is the number of pictures across all slides.
func (s *Summary) Pictures() int {
	n := 0
	for _, sl := range s.Slides {
		n += sl.Pictures
	}
	return n
}

// Inspect opens a presentation and summarizes its slides.
func Inspect(path string) (*Summary, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	props := pres.GetDocumentProperties()
	sum := &Summary{Title: props.Title, Author: props.Creator}
	for _, slide := range pres.GetAllSlides() {
		var ss SlideSummary
		for _, shape := range slide.GetShapes() {
			ss.Shapes++
			switch v := shape.(type) {
			case *ppt.DrawingShape:
				ss.Pictures++
			case *ppt.RichTextShape:
				ss.Texts = append(ss.Texts, paragraphTexts(v)...)
			}
		}
		sum.Slides = append(sum.Slides, ss)
	}
	return sum, nil
}

func paragraphTexts(shape *ppt.RichTextShape) []string {
	var out []string
	for _, para := range shape.GetParagraphs() {
		var b strings.Builder
		for _, elem := range para.GetElements() {
			if run, ok := elem.(*ppt.TextRun); ok {
				b.WriteString(run.GetText())
			}
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			out = append(out, text)
		}
	}
	return out
}
