package pitchdeck

import (
	"fmt"
	"time"

	"github.com/alnah/go-pitchdeck/internal/assets"
	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/theme"
)

// Dataset is the set of tables a deck is built from.
type Dataset = dataset.Dataset

// FinanceModel holds the constants of the spend and revenue curves.
type FinanceModel = dataset.FinanceModel

// Theme is the deck palette and font families.
type Theme = theme.Theme

// DefaultDataset returns the tables of the original deck.
func DefaultDataset() *Dataset {
	return dataset.Default()
}

// DefaultTheme returns the original palette.
func DefaultTheme() Theme {
	return theme.Default()
}

// Default output locations and document properties.
const (
	DefaultOutput   = "Pitch_Deck_Fashion_Insta_Startup.pptx"
	DefaultAssetDir = "assets"
	DefaultTitle    = "Fashion Insta Pitch Deck"
	DefaultAuthor   = "Fashion Insta"
)

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 2 * time.Minute

// Result describes a finished build.
type Result struct {
	Output   string        // presentation path
	Charts   []string      // chart images, ROI first
	Slides   int           // slides written
	Previews []string      // preview images, empty unless requested
	Duration time.Duration // wall time of the build

	// Crossover is the first month revenue reaches spend, or -1.
	Crossover int
	// BacklogPoints sums effort per MoSCoW tier.
	BacklogPoints map[string]int
}

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	output     string
	assetDir   string
	names      assets.Names
	chartDir   string
	previewDir string
	title      string
	author     string
	palette    map[string]string
	timeout    time.Duration
}

// WithOutput sets the presentation path. It must end in .pptx.
func WithOutput(path string) Option {
	return func(b *Builder) { b.cfg.output = path }
}

// WithAssetDir sets the directory holding the hero, mockup and architecture
// images. Charts follow it unless WithChartDir is given.
func WithAssetDir(dir string) Option {
	return func(b *Builder) { b.cfg.assetDir = dir }
}

// WithAssetNames sets the image file names inside the asset directory.
// Empty names keep the defaults.
func WithAssetNames(hero, mockup, architecture string) Option {
	return func(b *Builder) {
		if hero != "" {
			b.cfg.names.Hero = hero
		}
		if mockup != "" {
			b.cfg.names.Mockup = mockup
		}
		if architecture != "" {
			b.cfg.names.Architecture = architecture
		}
	}
}

// WithChartDir sets where the chart images are written.
func WithChartDir(dir string) Option {
	return func(b *Builder) { b.cfg.chartDir = dir }
}

// WithPreviewDir enables slide previews written into dir.
func WithPreviewDir(dir string) Option {
	return func(b *Builder) { b.cfg.previewDir = dir }
}

// WithDocument sets the presentation title and author.
func WithDocument(title, author string) Option {
	return func(b *Builder) {
		b.cfg.title = title
		b.cfg.author = author
	}
}

// WithTheme replaces the palette and fonts.
func WithTheme(th Theme) Option {
	return func(b *Builder) { b.theme = th }
}

// WithPalette overrides palette slots with hex colors, applied on top of the
// theme. Keys are listed by PaletteSlots.
func WithPalette(overrides map[string]string) Option {
	return func(b *Builder) { b.cfg.palette = overrides }
}

// WithDataset replaces the tables the deck is built from.
func WithDataset(d *Dataset) Option {
	return func(b *Builder) { b.data = d }
}

// WithFinance replaces only the finance model of the dataset.
func WithFinance(m FinanceModel) Option {
	return func(b *Builder) {
		d := *b.data
		d.Finance = m
		b.data = &d
	}
}

// WithTimeout bounds a whole build.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pitchdeck: WithTimeout duration must be positive")
	}
	return func(b *Builder) { b.cfg.timeout = d }
}

// PaletteSlots lists the keys accepted by WithPalette.
func PaletteSlots() []string {
	return theme.Slots()
}

// validate checks option values that can be checked before any I/O.
func (c *builderConfig) validate() error {
	if c.output == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidOption)
	}
	if ext := extLower(c.output); ext != ".pptx" {
		return fmt.Errorf("%w: output %q must end in .pptx", ErrInvalidOption, c.output)
	}
	if c.assetDir == "" {
		return fmt.Errorf("%w: empty asset directory", ErrInvalidOption)
	}
	for _, name := range []string{c.names.Hero, c.names.Mockup, c.names.Architecture} {
		if err := assets.ValidateAssetName(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
	}
	return nil
}
