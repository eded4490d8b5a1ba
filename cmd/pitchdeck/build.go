package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"

	pitchdeck "github.com/alnah/go-pitchdeck"
	"github.com/alnah/go-pitchdeck/internal/config"
	"github.com/alnah/go-pitchdeck/internal/hints"
	"github.com/alnah/go-pitchdeck/internal/pptx"
	"github.com/alnah/go-pitchdeck/internal/theme"
	"github.com/alnah/go-pitchdeck/internal/yamlutil"
)

// timeoutEnvVar overrides the default build timeout.
const timeoutEnvVar = "PITCHDECK_TIMEOUT"

// successMessage is printed once the presentation is saved.
const successMessage = "Startup Pitch Deck generated successfully."

// runBuild generates the charts and the presentation.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return withHint(err, cfg)
	}

	timeout, err := resolveTimeout(flags.timeout, os.Getenv(timeoutEnvVar))
	if err != nil {
		return err
	}

	if flags.common.verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer gg.SetLogger(nil)
	}

	opts := buildOptions(cfg)
	if timeout > 0 {
		opts = append(opts, pitchdeck.WithTimeout(timeout))
	}

	b, err := pitchdeck.NewBuilder(opts...)
	if err != nil {
		return withHint(err, cfg)
	}
	defer func() { _ = b.Close() }()

	start := env.Now()
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Building %s from %s\n", cfg.Output.Path, cfg.Assets.Dir)
	}

	result, err := b.Build(ctx)
	if err != nil {
		return withHint(err, cfg)
	}

	printResult(result, flags, env, env.Now().Sub(start))
	return nil
}

// loadConfig loads the named config, or returns the environment config when
// no name is given.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	if name == "" {
		if env.Config != nil {
			cp := *env.Config
			return &cp, nil
		}
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		err = fmt.Errorf("loading config: %w", err)
		var de *yamlutil.DecodeError
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			err = fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		case errors.As(err, &de) && de.Excerpt != "":
			err = fmt.Errorf("%w\n%s", err, de.Excerpt)
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.preview != "" {
		cfg.Output.PreviewDir = flags.preview
	}
	if flags.assets != "" {
		// Charts follow the asset directory unless pinned separately.
		if cfg.Assets.ChartDir == cfg.Assets.Dir {
			cfg.Assets.ChartDir = ""
		}
		cfg.Assets.Dir = flags.assets
	}
	if flags.charts != "" {
		cfg.Assets.ChartDir = flags.charts
	}
	if flags.title != "" {
		cfg.Deck.Title = flags.title
	}
	if flags.author != "" {
		cfg.Deck.Author = flags.author
	}
}

// buildOptions converts a validated config into builder options.
func buildOptions(cfg *config.Config) []pitchdeck.Option {
	names := cfg.AssetNames()
	opts := []pitchdeck.Option{
		pitchdeck.WithOutput(cfg.Output.Path),
		pitchdeck.WithAssetDir(cfg.Assets.Dir),
		pitchdeck.WithAssetNames(names.Hero, names.Mockup, names.Architecture),
		pitchdeck.WithChartDir(cfg.Assets.ChartDir),
		pitchdeck.WithDocument(cfg.Deck.Title, cfg.Deck.Author),
		pitchdeck.WithFinance(cfg.FinanceModel()),
	}
	if len(cfg.Palette) > 0 {
		opts = append(opts, pitchdeck.WithPalette(cfg.Palette))
	}
	if cfg.Output.PreviewDir != "" {
		opts = append(opts, pitchdeck.WithPreviewDir(cfg.Output.PreviewDir))
	}
	return opts
}

// resolveTimeout returns the build timeout from the flag, then the
// environment. Zero means the library default.
func resolveTimeout(flagValue, envValue string) (time.Duration, error) {
	raw, source := flagValue, "--timeout"
	if raw == "" {
		raw, source = envValue, timeoutEnvVar
	}
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid timeout %q in %s", ErrUsage, raw, source)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrUsage, raw)
	}
	return d, nil
}

// withHint appends an actionable hint to common build failures.
func withHint(err error, cfg *config.Config) error {
	var hint string
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		hint = hints.ForTimeout()
	case errors.Is(err, pitchdeck.ErrAssetMissing):
		n := cfg.AssetNames()
		hint = hints.ForAssetMissing(cfg.Assets.Dir, n.Hero, n.Mockup, n.Architecture)
	case errors.Is(err, pitchdeck.ErrInvalidAsset):
		hint = hints.ForImageFormat()
	case errors.Is(err, theme.ErrUnknownSlot):
		hint = hints.ForPaletteSlot(pitchdeck.PaletteSlots())
	case errors.Is(err, pptx.ErrPreview):
		hint = hints.ForPreview()
	case errors.Is(err, pitchdeck.ErrWriteFailed):
		hint = hints.ForOutputDirectory()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// printResult reports a finished build. Quiet mode prints nothing; verbose
// mode adds timings and the figures behind the charts.
func printResult(r *pitchdeck.Result, flags *buildFlags, env *Environment, elapsed time.Duration) {
	if flags.common.quiet {
		return
	}
	if flags.common.verbose {
		for _, c := range r.Charts {
			fmt.Fprintf(env.Stderr, "Chart: %s\n", c)
		}
		if len(r.Previews) > 0 {
			fmt.Fprintf(env.Stderr, "Previews: %d in %s\n", len(r.Previews), commonDir(r.Previews))
		}
		if r.Crossover >= 0 {
			fmt.Fprintf(env.Stderr, "Revenue crosses spend at month %d\n", r.Crossover)
		} else {
			fmt.Fprintln(env.Stderr, "Revenue never crosses spend within the horizon")
		}
		fmt.Fprintf(env.Stderr, "Backlog points: %s\n", formatPoints(r.BacklogPoints))
		fmt.Fprintf(env.Stderr, "%d slides -> %s (%v)\n", r.Slides, r.Output, elapsed.Round(time.Millisecond))
	}
	fmt.Fprintln(env.Stdout, successMessage)
}

// formatPoints renders MoSCoW totals in tier order.
func formatPoints(points map[string]int) string {
	tiers := []string{"Must", "Should", "Could", "Won't"}
	parts := make([]string, 0, len(tiers))
	for _, t := range tiers {
		parts = append(parts, fmt.Sprintf("%s=%d", t, points[t]))
	}
	return strings.Join(parts, " ")
}

func commonDir(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return filepath.Dir(paths[0])
}
