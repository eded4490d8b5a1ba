package layout

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// TextInset is the default left and right inset of a PowerPoint text frame.
const TextInset = 0.1

// Wrapper breaks a paragraph into lines that fit a frame width.
type Wrapper interface {
	// Wrap splits s into lines no wider than width inches at size points.
	Wrap(s string, width float64, size int, bold bool) []string
	// Measure returns the advance width of s in inches.
	Measure(s string, size int, bold bool) float64
}

// FontWrapper measures text with the Go fonts through gg's shaper. Go
// Regular has metrics close to Arial, which is what the deck asks for.
type FontWrapper struct {
	mu      sync.Mutex
	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face
}

type faceKey struct {
	size int
	bold bool
}

// NewFontWrapper loads the embedded Go fonts.
func NewFontWrapper() (*FontWrapper, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("loading bold font: %w", err)
	}
	return &FontWrapper{regular: regular, bold: bold, faces: make(map[faceKey]text.Face)}, nil
}

// Close releases the font sources.
func (w *FontWrapper) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.faces = nil
	err := w.regular.Close()
	if berr := w.bold.Close(); err == nil {
		err = berr
	}
	return err
}

// face must be called with w.mu held.
func (w *FontWrapper) face(size int, bold bool) text.Face {
	k := faceKey{size: size, bold: bold}
	if f, ok := w.faces[k]; ok {
		return f
	}
	src := w.regular
	if bold {
		src = w.bold
	}
	f := src.Face(float64(size))
	w.faces[k] = f
	return f
}

// Wrap implements Wrapper. The usable width excludes the frame insets.
func (w *FontWrapper) Wrap(s string, width float64, size int, bold bool) []string {
	maxPts := (width - 2*TextInset) * PointsPerInch
	if s == "" || maxPts <= 0 {
		return []string{s}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	face := w.face(size, bold)
	results := text.WrapText(s, face, maxPts, text.WrapWordChar)
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, splitWide(strings.TrimRight(r.Text, " "), face, maxPts)...)
	}
	return lines
}

// splitWide hard-breaks a line the shaper left wider than maxPts, which
// happens for runs with no break opportunity. Each piece holds at least one
// rune.
func splitWide(line string, face text.Face, maxPts float64) []string {
	var out []string
	for text.MeasureText(line, face) > maxPts {
		end := 0
		for end < len(line) {
			_, n := utf8.DecodeRuneInString(line[end:])
			if end > 0 && text.MeasureText(line[:end+n], face) > maxPts {
				break
			}
			end += n
		}
		if end == len(line) {
			break
		}
		out = append(out, line[:end])
		line = strings.TrimLeft(line[end:], " ")
	}
	return append(out, line)
}

// Measure implements Wrapper.
func (w *FontWrapper) Measure(s string, size int, bold bool) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return text.MeasureText(s, w.face(size, bold)) / PointsPerInch
}

// EstimateWrapper approximates glyph widths as a fixed share of the font
// size. It needs no font data, so callers that only care about slide
// structure, not exact line breaks, get layouts that do not shift with
// font metrics.
type EstimateWrapper struct {
	// Em is the average advance as a fraction of the font size.
	Em float64
}

// Measure implements Wrapper.
func (e EstimateWrapper) Measure(s string, size int, _ bool) float64 {
	em := e.Em
	if em <= 0 {
		em = 0.5
	}
	return float64(len([]rune(s))) * float64(size) * em / PointsPerInch
}

// Wrap implements Wrapper with greedy word filling and hard breaks for words
// longer than a line.
func (e EstimateWrapper) Wrap(s string, width float64, size int, bold bool) []string {
	limit := width - 2*TextInset
	if s == "" || limit <= 0 {
		return []string{s}
	}

	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		for e.Measure(word, size, bold) > limit {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			cut := e.fitRunes(word, limit, size)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		if word == "" {
			continue
		}
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if e.Measure(candidate, size, bold) <= limit {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// fitRunes returns the byte length of the longest prefix of word that fits,
// always at least one rune.
func (e EstimateWrapper) fitRunes(word string, limit float64, size int) int {
	end := 0
	for i, r := range word {
		next := i + len(string(r))
		if end > 0 && e.Measure(word[:next], size, false) > limit {
			break
		}
		end = next
	}
	return end
}

var _ Wrapper = (*FontWrapper)(nil)
var _ Wrapper = EstimateWrapper{}
