package pitchdeck

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-pitchdeck/internal/assets"
	"github.com/alnah/go-pitchdeck/internal/chart"
	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/layout"
	"github.com/alnah/go-pitchdeck/internal/pptx"
	"github.com/alnah/go-pitchdeck/internal/slides"
)

// Compile-time interface implementation checks.
var (
	_ deckWriter     = (*pptx.Writer)(nil)
	_ deckWriter     = (*pptx.Recorder)(nil)
	_ layout.Wrapper = (*layout.FontWrapper)(nil)
)

// deckWriter serializes a finished deck and renders its previews.
type deckWriter interface {
	Write(ctx context.Context, deck *layout.Deck, path string) error
	Previews(ctx context.Context, deck *layout.Deck, dir string) ([]string, error)
}

// Builder orchestrates the deck pipeline.
// Create with NewBuilder(), use Build() to produce the deck, and Close() when done.
// A Builder is not safe for concurrent use; create one per goroutine.
type Builder struct {
	cfg   builderConfig
	theme Theme
	data  *Dataset
	wrap  *layout.FontWrapper

	// newWriter builds the presentation writer for one run. Tests swap it
	// for a recorder.
	newWriter func(images assets.ImageLoader) deckWriter
}

// NewBuilder creates a Builder with the given options. It loads the fonts
// used to measure card text.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{
			output:   DefaultOutput,
			assetDir: DefaultAssetDir,
			names:    assets.DefaultNames(),
			title:    DefaultTitle,
			author:   DefaultAuthor,
			timeout:  defaultTimeout,
		},
		theme: DefaultTheme(),
		data:  DefaultDataset(),
		newWriter: func(images assets.ImageLoader) deckWriter {
			return pptx.NewWriter(images)
		},
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.cfg.validate(); err != nil {
		return nil, err
	}
	if len(b.cfg.palette) > 0 {
		th, err := b.theme.WithOverrides(b.cfg.palette)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
		b.theme = th
	}
	if b.data == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrInvalidOption)
	}

	wrap, err := layout.NewFontWrapper()
	if err != nil {
		return nil, fmt.Errorf("loading measurement fonts: %w", err)
	}
	b.wrap = wrap
	return b, nil
}

// Close releases the measurement fonts.
func (b *Builder) Close() error {
	if b.wrap == nil {
		return nil
	}
	err := b.wrap.Close()
	b.wrap = nil
	return err
}

// Theme returns the resolved theme, palette overrides included.
func (b *Builder) Theme() Theme { return b.theme }

// Build generates the charts and the presentation. Stages run in order and
// the first failure aborts the run; a failed run leaves any previous output
// file untouched. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (b *Builder) Build(ctx context.Context) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	if b.wrap == nil {
		return nil, fmt.Errorf("%w: builder is closed", ErrInvalidOption)
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, b.cfg.timeout)
	defer cancel()

	if err := b.data.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}
	series := b.data.Finance.Series()

	set, err := b.resolveAssets()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	charts, err := b.renderCharts(ctx, series)
	if err != nil {
		return nil, err
	}

	env := slides.Env{
		Theme: b.theme,
		Data:  b.data,
		Wrap:  b.wrap,
		Assets: slides.Assets{
			Hero:         set.Hero.Path,
			Mockup:       set.Mockup.Path,
			Architecture: set.Architecture.Path,
			ROIChart:     charts.ROI,
			RiskRadar:    charts.Radar,
		},
	}
	deck := slides.Deck(env, b.cfg.title, b.cfg.author)

	w := b.newWriter(set.Preloaded())
	if err := w.Write(ctx, deck, b.cfg.output); err != nil {
		return nil, writeError(err)
	}

	result = &Result{
		Output:        b.cfg.output,
		Charts:        []string{charts.ROI, charts.Radar},
		Slides:        len(deck.Slides),
		Crossover:     -1,
		BacklogPoints: backlogPoints(b.data.Backlog),
	}
	if m, ok := series.Crossover(); ok {
		result.Crossover = m
	}

	if b.cfg.previewDir != "" {
		previews, err := w.Previews(ctx, deck, b.cfg.previewDir)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: previews: %w", ErrRender, err)
		}
		result.Previews = previews
	}

	result.Duration = time.Since(start)
	return result, nil
}

// resolveAssets loads the photographic images. Every missing file is named
// in the error.
func (b *Builder) resolveAssets() (*assets.Set, error) {
	loader, err := assets.NewFilesystemLoader(b.cfg.assetDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetMissing, err)
	}
	set, err := assets.Resolve(loader, b.cfg.names)
	if err != nil {
		if errors.Is(err, assets.ErrAssetMissing) {
			return nil, fmt.Errorf("%w: %w", ErrAssetMissing, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}
	return set, nil
}

func (b *Builder) renderCharts(ctx context.Context, series dataset.FinancialSeries) (chart.Files, error) {
	r, err := chart.NewRenderer(chart.StyleFromTheme(b.theme))
	if err != nil {
		return chart.Files{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
	defer func() { _ = r.Close() }()

	dir := b.cfg.chartDir
	if dir == "" {
		dir = b.cfg.assetDir
	}
	files, err := r.RenderAll(ctx, chart.Data{
		Series:    series,
		BreakEven: b.data.Finance.BreakEven,
		Risks:     b.data.Risks,
	}, dir)
	switch {
	case err == nil:
		return files, nil
	case ctx.Err() != nil:
		return chart.Files{}, ctx.Err()
	case errors.Is(err, chart.ErrWrite):
		return chart.Files{}, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	default:
		return chart.Files{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
}

// writeError maps presentation failures onto the library sentinels.
func writeError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, assets.ErrAssetMissing):
		return fmt.Errorf("%w: %w", ErrAssetMissing, err)
	case errors.Is(err, pptx.ErrWrite):
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	default:
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
}

func backlogPoints(b dataset.Backlog) map[string]int {
	out := make(map[string]int, 4)
	for _, p := range []dataset.Priority{dataset.Must, dataset.Should, dataset.Could, dataset.Wont} {
		out[string(p)] = b.Points(p)
	}
	return out
}

func extLower(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
