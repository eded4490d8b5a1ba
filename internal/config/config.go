// Package config loads the YAML configuration of a deck build.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pitchdeck/internal/assets"
	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/fileutil"
	"github.com/alnah/go-pitchdeck/internal/theme"
	"github.com/alnah/go-pitchdeck/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength  = 200  // Deck title
	MaxAuthorLength = 100  // Deck author
	MaxPathLength   = 4096 // Filesystem paths
)

// Defaults reproduce the file layout of the original deck build.
const (
	DefaultOutput   = "Pitch_Deck_Fashion_Insta_Startup.pptx"
	DefaultAssetDir = "assets"
	DefaultTitle    = "Fashion Insta Pitch Deck"
	DefaultAuthor   = "Fashion Insta"
	ConfigDirName   = "go-pitchdeck"
)

// Config holds all configuration for a deck build.
type Config struct {
	Output  OutputConfig      `yaml:"output"`
	Assets  AssetsConfig      `yaml:"assets"`
	Palette map[string]string `yaml:"palette,omitempty"`
	Finance FinanceConfig     `yaml:"finance"`
	Deck    DeckConfig        `yaml:"deck"`
}

// OutputConfig defines where results are written.
type OutputConfig struct {
	Path       string `yaml:"path"`                 // .pptx file (default: DefaultOutput)
	PreviewDir string `yaml:"previewDir,omitempty"` // Empty = no slide previews
}

// AssetsConfig defines input images and the chart directory.
type AssetsConfig struct {
	Dir          string `yaml:"dir"`          // Directory holding the images (default: assets)
	Hero         string `yaml:"hero"`         // Relative to Dir
	Mockup       string `yaml:"mockup"`       // Relative to Dir
	Architecture string `yaml:"architecture"` // Relative to Dir
	ChartDir     string `yaml:"chartDir"`     // Where charts are written (default: Dir)
}

// FinanceConfig overrides the finance model. Unset fields keep the defaults.
type FinanceConfig struct {
	Base      *float64 `yaml:"base,omitempty"`
	Slope     *float64 `yaml:"slope,omitempty"`
	Rate      *float64 `yaml:"rate,omitempty"`
	Offset    *int     `yaml:"offset,omitempty"`
	Horizon   *int     `yaml:"horizon,omitempty"`
	BreakEven *int     `yaml:"breakEven,omitempty"`
}

// DeckConfig defines document properties.
type DeckConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., tests, library users).
func (c *Config) Validate() error {
	if err := validateFieldLength("deck.title", c.Deck.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("deck.author", c.Deck.Author, MaxAuthorLength); err != nil {
		return err
	}

	// Validate paths
	for _, f := range []struct{ name, value string }{
		{"output.path", c.Output.Path},
		{"output.previewDir", c.Output.PreviewDir},
		{"assets.dir", c.Assets.Dir},
		{"assets.chartDir", c.Assets.ChartDir},
		{"assets.hero", c.Assets.Hero},
		{"assets.mockup", c.Assets.Mockup},
		{"assets.architecture", c.Assets.Architecture},
	} {
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}
	if c.Output.Path != "" && !strings.EqualFold(filepath.Ext(c.Output.Path), ".pptx") {
		return fmt.Errorf("%w: output.path %q must end in .pptx", ErrInvalidValue, c.Output.Path)
	}
	for _, f := range []struct{ name, value string }{
		{"assets.hero", c.Assets.Hero},
		{"assets.mockup", c.Assets.Mockup},
		{"assets.architecture", c.Assets.Architecture},
	} {
		if f.value == "" {
			continue
		}
		if err := assets.ValidateAssetName(f.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidValue, f.name, err)
		}
	}

	// Validate palette
	if _, err := c.Theme(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	// Validate finance
	if err := c.FinanceModel().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Theme returns the default theme with the palette overrides applied.
func (c *Config) Theme() (theme.Theme, error) {
	return theme.Default().WithOverrides(c.Palette)
}

// FinanceModel returns the default model with the configured fields replaced.
func (c *Config) FinanceModel() dataset.FinanceModel {
	m := dataset.DefaultFinanceModel()
	f := c.Finance
	if f.Base != nil {
		m.Base = *f.Base
	}
	if f.Slope != nil {
		m.Slope = *f.Slope
	}
	if f.Rate != nil {
		m.Rate = *f.Rate
	}
	if f.Offset != nil {
		m.Offset = *f.Offset
	}
	if f.Horizon != nil {
		m.Horizon = *f.Horizon
	}
	if f.BreakEven != nil {
		m.BreakEven = *f.BreakEven
	}
	return m
}

// AssetNames returns the image names, falling back to the defaults.
func (c *Config) AssetNames() assets.Names {
	n := assets.DefaultNames()
	if c.Assets.Hero != "" {
		n.Hero = c.Assets.Hero
	}
	if c.Assets.Mockup != "" {
		n.Mockup = c.Assets.Mockup
	}
	if c.Assets.Architecture != "" {
		n.Architecture = c.Assets.Architecture
	}
	return n
}

// DefaultConfig returns the configuration that reproduces the original deck.
func DefaultConfig() *Config {
	m := dataset.DefaultFinanceModel()
	names := assets.DefaultNames()
	return &Config{
		Output: OutputConfig{Path: DefaultOutput},
		Assets: AssetsConfig{
			Dir:          DefaultAssetDir,
			Hero:         names.Hero,
			Mockup:       names.Mockup,
			Architecture: names.Architecture,
			ChartDir:     DefaultAssetDir,
		},
		Finance: FinanceConfig{
			Base:      &m.Base,
			Slope:     &m.Slope,
			Rate:      &m.Rate,
			Offset:    &m.Offset,
			Horizon:   &m.Horizon,
			BreakEven: &m.BreakEven,
		},
		Deck: DeckConfig{Title: DefaultTitle, Author: DefaultAuthor},
	}
}

// WithDefaults returns a copy of c with empty paths and document
// properties filled from DefaultConfig. An empty chart directory follows the
// asset directory.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.Output.Path == "" {
		out.Output.Path = def.Output.Path
	}
	if out.Assets.Dir == "" {
		out.Assets.Dir = def.Assets.Dir
	}
	if out.Assets.ChartDir == "" {
		out.Assets.ChartDir = out.Assets.Dir
	}
	if out.Deck.Title == "" {
		out.Deck.Title = def.Deck.Title
	}
	if out.Deck.Author == "" {
		out.Deck.Author = def.Deck.Author
	}
	return &out
}

// Marshal renders cfg as YAML, the form written by "pitchdeck init".
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Encode(cfg)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, ConfigDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory first, then ~/.config/go-pitchdeck/, with
// .yaml before .yml in each.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
