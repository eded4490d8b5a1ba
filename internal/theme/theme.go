// Package theme defines the deck palette and font families.
//
// A Theme is a plain value: every component receives it explicitly and no
// method mutates it. WithOverrides returns a modified copy.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-pitchdeck/internal/dataset"
)

// Sentinel errors for theme operations.
var (
	ErrInvalidColor = errors.New("invalid color")
	ErrUnknownSlot  = errors.New("unknown palette slot")
)

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex formats c as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB formats c as an opaque "FFRRGGBB" string, the form OOXML expects.
func (c Color) ARGB() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA converts c to an image/color value with the given alpha in [0,1].
func (c Color) RGBA(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

// ParseHex parses "#RGB" or "#RRGGBB" (the leading # is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Fonts names the typefaces written into the deck.
type Fonts struct {
	Title string
	Body  string
}

// Theme is the full visual configuration shared by charts and slides.
type Theme struct {
	Background Color
	Text       Color
	Accent1    Color
	Accent2    Color
	Accent3    Color
	CardFill   Color
	CardBorder Color
	OnAccent   Color // text drawn on accent fills
	Gridline   Color
	Marker     Color // break-even marker
	ChartText  Color
	Fonts      Fonts
}

// Default returns the vibrant startup palette.
func Default() Theme {
	return Theme{
		Background: RGB(255, 255, 255),
		Text:       RGB(40, 40, 50),
		Accent1:    RGB(138, 43, 226),
		Accent2:    RGB(255, 20, 147),
		Accent3:    RGB(0, 200, 255),
		CardFill:   RGB(245, 245, 250),
		CardBorder: RGB(230, 230, 230),
		OnAccent:   RGB(255, 255, 255),
		Gridline:   RGB(0xee, 0xee, 0xee),
		Marker:     RGB(128, 128, 128),
		ChartText:  RGB(0x33, 0x33, 0x33),
		Fonts: Fonts{
			Title: "Arial Black",
			Body:  "Arial",
		},
	}
}

// Tone resolves a dataset palette slot to a concrete color.
func (t Theme) Tone(tone dataset.Tone) Color {
	switch tone {
	case dataset.ToneAccent1:
		return t.Accent1
	case dataset.ToneAccent2:
		return t.Accent2
	case dataset.ToneAccent3:
		return t.Accent3
	default:
		return t.Text
	}
}

// slots maps configuration keys to palette fields.
func (t *Theme) slots() map[string]*Color {
	return map[string]*Color{
		"background": &t.Background,
		"text":       &t.Text,
		"accent1":    &t.Accent1,
		"accent2":    &t.Accent2,
		"accent3":    &t.Accent3,
		"cardFill":   &t.CardFill,
		"cardBorder": &t.CardBorder,
		"onAccent":   &t.OnAccent,
		"gridline":   &t.Gridline,
		"marker":     &t.Marker,
		"chartText":  &t.ChartText,
	}
}

// Slots lists the keys accepted by WithOverrides, sorted.
func Slots() []string {
	var t Theme
	keys := make([]string, 0, 11)
	for k := range t.slots() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithOverrides returns a copy of t with the given slots replaced by hex colors.
// The receiver is never modified.
func (t Theme) WithOverrides(overrides map[string]string) (Theme, error) {
	out := t
	slots := out.slots()
	for key, value := range overrides {
		dst, ok := slots[key]
		if !ok {
			return t, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownSlot, key, strings.Join(Slots(), ", "))
		}
		c, err := ParseHex(value)
		if err != nil {
			return t, fmt.Errorf("palette.%s: %w", key, err)
		}
		*dst = c
	}
	return out, nil
}
