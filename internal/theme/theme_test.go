package theme_test

import (
	"errors"
	"testing"

	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/theme"
)

// ---------------------------------------------------------------------------
// TestParseHex - Hex color parsing
// ---------------------------------------------------------------------------

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    theme.Color
		wantErr bool
	}{
		{"#8A2BE2", theme.RGB(138, 43, 226), false},
		{"ff1493", theme.RGB(255, 20, 147), false},
		{"#eee", theme.RGB(0xee, 0xee, 0xee), false},
		{"  #00C8FF ", theme.RGB(0, 200, 255), false},
		{"", theme.Color{}, true},
		{"#12345", theme.Color{}, true},
		{"#GGGGGG", theme.Color{}, true},
		{"blue", theme.Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := theme.ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, theme.ErrInvalidColor) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorFormats(t *testing.T) {
	t.Parallel()

	c := theme.RGB(138, 43, 226)
	if got := c.Hex(); got != "#8A2BE2" {
		t.Errorf("Hex() = %q, want #8A2BE2", got)
	}
	if got := c.ARGB(); got != "FF8A2BE2" {
		t.Errorf("ARGB() = %q, want FF8A2BE2", got)
	}
	if got := c.RGBA(0.2); got.A != 51 {
		t.Errorf("RGBA(0.2).A = %d, want 51", got.A)
	}
	if got := c.RGBA(2); got.A != 255 {
		t.Errorf("RGBA(2).A = %d, want clamped 255", got.A)
	}
}

// ---------------------------------------------------------------------------
// TestDefault - Original palette
// ---------------------------------------------------------------------------

func TestDefault(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	checks := []struct {
		name string
		got  theme.Color
		want theme.Color
	}{
		{"text", th.Text, theme.RGB(40, 40, 50)},
		{"accent1", th.Accent1, theme.RGB(138, 43, 226)},
		{"accent2", th.Accent2, theme.RGB(255, 20, 147)},
		{"accent3", th.Accent3, theme.RGB(0, 200, 255)},
		{"card fill", th.CardFill, theme.RGB(245, 245, 250)},
		{"card border", th.CardBorder, theme.RGB(230, 230, 230)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %+v, want %+v", c.name, c.got, c.want)
		}
	}
	if th.Fonts.Title != "Arial Black" || th.Fonts.Body != "Arial" {
		t.Errorf("Fonts = %+v", th.Fonts)
	}
}

func TestTone(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	tests := []struct {
		tone dataset.Tone
		want theme.Color
	}{
		{dataset.ToneText, th.Text},
		{dataset.ToneAccent1, th.Accent1},
		{dataset.ToneAccent2, th.Accent2},
		{dataset.ToneAccent3, th.Accent3},
		{dataset.Tone(99), th.Text},
	}
	for _, tt := range tests {
		if got := th.Tone(tt.tone); got != tt.want {
			t.Errorf("Tone(%d) = %+v, want %+v", tt.tone, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWithOverrides - Copy-on-write palette changes
// ---------------------------------------------------------------------------

func TestWithOverrides(t *testing.T) {
	t.Parallel()

	base := theme.Default()

	t.Run("replaces slot without touching receiver", func(t *testing.T) {
		t.Parallel()

		got, err := base.WithOverrides(map[string]string{"accent1": "#112233"})
		if err != nil {
			t.Fatalf("WithOverrides() error = %v", err)
		}
		if got.Accent1 != theme.RGB(0x11, 0x22, 0x33) {
			t.Errorf("Accent1 = %+v, want #112233", got.Accent1)
		}
		if base.Accent1 != theme.RGB(138, 43, 226) {
			t.Error("receiver was modified")
		}
	})

	t.Run("unknown slot", func(t *testing.T) {
		t.Parallel()

		_, err := base.WithOverrides(map[string]string{"accent9": "#000"})
		if !errors.Is(err, theme.ErrUnknownSlot) {
			t.Errorf("error = %v, want ErrUnknownSlot", err)
		}
	})

	t.Run("bad color", func(t *testing.T) {
		t.Parallel()

		_, err := base.WithOverrides(map[string]string{"text": "nope"})
		if !errors.Is(err, theme.ErrInvalidColor) {
			t.Errorf("error = %v, want ErrInvalidColor", err)
		}
	})
}

func TestSlots(t *testing.T) {
	t.Parallel()

	slots := theme.Slots()
	if len(slots) != 11 {
		t.Fatalf("len(Slots()) = %d, want 11", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Errorf("Slots() not sorted at %d: %q >= %q", i, slots[i-1], slots[i])
		}
	}
}
