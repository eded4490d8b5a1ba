package config

// Notes:
// - LoadConfig by name depends on the working directory and the user config
//   directory. Those tests use t.Chdir and t.Setenv and cannot run in
//   parallel.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/theme"
)

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// TestDefaultConfig - Original file layout
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Output.Path != "Pitch_Deck_Fashion_Insta_Startup.pptx" {
		t.Errorf("Output.Path = %q", cfg.Output.Path)
	}
	if cfg.Assets.Dir != "assets" || cfg.Assets.ChartDir != "assets" {
		t.Errorf("Assets = %+v, want dir and chartDir = assets", cfg.Assets)
	}
	if cfg.Assets.Hero != "hero.png" || cfg.Assets.Mockup != "mockup.png" || cfg.Assets.Architecture != "architecture.png" {
		t.Errorf("Assets = %+v", cfg.Assets)
	}
	if cfg.Output.PreviewDir != "" {
		t.Errorf("Output.PreviewDir = %q, want empty", cfg.Output.PreviewDir)
	}
	if cfg.FinanceModel() != dataset.DefaultFinanceModel() {
		t.Errorf("FinanceModel() = %+v, want defaults", cfg.FinanceModel())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	cfg := (&Config{Assets: AssetsConfig{Dir: "media"}}).WithDefaults()

	if cfg.Output.Path != DefaultOutput {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, DefaultOutput)
	}
	if cfg.Assets.ChartDir != "media" {
		t.Errorf("ChartDir = %q, want it to follow Dir", cfg.Assets.ChartDir)
	}
	if cfg.Deck.Title != DefaultTitle || cfg.Deck.Author != DefaultAuthor {
		t.Errorf("Deck = %+v", cfg.Deck)
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Lengths and values
// ---------------------------------------------------------------------------

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"palette override", func(c *Config) { c.Palette = map[string]string{"accent1": "#123456"} }, nil},
		{"title too long", func(c *Config) { c.Deck.Title = strings.Repeat("x", MaxTitleLength+1) }, ErrFieldTooLong},
		{"author too long", func(c *Config) { c.Deck.Author = strings.Repeat("x", MaxAuthorLength+1) }, ErrFieldTooLong},
		{"output not pptx", func(c *Config) { c.Output.Path = "deck.pdf" }, ErrInvalidValue},
		{"hero traversal", func(c *Config) { c.Assets.Hero = "../hero.png" }, ErrInvalidValue},
		{"mockup not an image", func(c *Config) { c.Assets.Mockup = "mockup.svg" }, ErrInvalidValue},
		{"unknown palette slot", func(c *Config) { c.Palette = map[string]string{"neon": "#fff"} }, ErrInvalidValue},
		{"bad palette color", func(c *Config) { c.Palette = map[string]string{"text": "purple"} }, ErrInvalidValue},
		{"break-even beyond horizon", func(c *Config) { c.Finance.BreakEven = ptr(40) }, ErrInvalidValue},
		{"zero rate", func(c *Config) { c.Finance.Rate = ptr(0.0) }, ErrInvalidValue},
		{"infinite base", func(c *Config) { c.Finance.Base = ptr(math.Inf(1)) }, dataset.ErrMalformed},
		{"nan slope", func(c *Config) { c.Finance.Slope = ptr(math.NaN()) }, dataset.ErrMalformed},
		{"horizon too long", func(c *Config) { c.Finance.Horizon = ptr(dataset.MaxHorizon + 1) }, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ThemeAndFinance(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Palette: map[string]string{"accent2": "#00FF00"},
		Finance: FinanceConfig{Rate: ptr(30000.0), BreakEven: ptr(12)},
	}

	th, err := cfg.Theme()
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if th.Accent2 != theme.RGB(0, 255, 0) || th.Accent1 != theme.Default().Accent1 {
		t.Errorf("Theme() accents = %v / %v", th.Accent1, th.Accent2)
	}

	m := cfg.FinanceModel()
	want := dataset.DefaultFinanceModel()
	want.Rate, want.BreakEven = 30000, 12
	if m != want {
		t.Errorf("FinanceModel() = %+v, want %+v", m, want)
	}
}

func TestConfig_AssetNames(t *testing.T) {
	t.Parallel()

	names := (&Config{Assets: AssetsConfig{Hero: "cover.jpg"}}).AssetNames()
	if names.Hero != "cover.jpg" || names.Mockup != "mockup.png" || names.Architecture != "architecture.png" {
		t.Errorf("AssetNames() = %+v", names)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Files, names and strict decoding
// ---------------------------------------------------------------------------

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Path(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "deck.yaml", `
output:
  path: out/deck.pptx
  previewDir: out/preview
assets:
  dir: media
  hero: photos/hero.jpg
palette:
  accent1: "#112233"
finance:
  breakEven: 20
deck:
  title: Investor Update
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Output.Path != "out/deck.pptx" || cfg.Output.PreviewDir != "out/preview" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Assets.Hero != "photos/hero.jpg" || cfg.Assets.Dir != "media" {
		t.Errorf("Assets = %+v", cfg.Assets)
	}
	if cfg.FinanceModel().BreakEven != 20 || cfg.FinanceModel().Horizon != 36 {
		t.Errorf("FinanceModel() = %+v", cfg.FinanceModel())
	}
	if cfg.Deck.Title != "Investor Update" {
		t.Errorf("Deck.Title = %q", cfg.Deck.Title)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		arg     string
		wantErr error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing file", filepath.Join(dir, "missing.yaml"), ErrConfigNotFound},
		{"unknown key", writeConfig(t, dir, "unknown.yaml", "output:\n  pathh: x.pptx\n"), ErrConfigParse},
		{"bad yaml", writeConfig(t, dir, "bad.yaml", "output: [\n"), ErrConfigParse},
		{"invalid value", writeConfig(t, dir, "invalid.yaml", "output:\n  path: deck.key\n"), ErrInvalidValue},
		{"infinite base", writeConfig(t, dir, "inf.yaml", "finance:\n  base: .inf\n"), dataset.ErrMalformed},
		{"nan slope", writeConfig(t, dir, "nan.yaml", "finance:\n  slope: .nan\n"), dataset.ErrMalformed},
		{"huge horizon", writeConfig(t, dir, "horizon.yaml", "finance:\n  horizon: 100000000\n"), ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := LoadConfig(tt.arg); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.arg, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_ByName(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	ucd, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config directory: %v", err)
	}
	userDir := filepath.Join(ucd, ConfigDirName)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, userDir, "investor.yml", "deck:\n  author: Team B\n")

	var cfg *Config
	cfg, err = LoadConfig("investor")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Deck.Author != "Team B" {
		t.Errorf("Deck.Author = %q", cfg.Deck.Author)
	}

	// The working directory wins over the user config directory.
	writeConfig(t, ".", "investor.yaml", "deck:\n  author: Local\n")
	cfg, err = LoadConfig("investor")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Deck.Author != "Local" {
		t.Errorf("Deck.Author = %q, want the local file", cfg.Deck.Author)
	}

	_, err = LoadConfig("nothing")
	if !errors.Is(err, ErrConfigNotFound) || !strings.Contains(err.Error(), ConfigDirName) {
		t.Errorf("LoadConfig(nothing) error = %v, want ErrConfigNotFound listing the search paths", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	path := writeConfig(t, t.TempDir(), "init.yaml", string(data))

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(generated) error = %v\n%s", err, data)
	}
	if cfg.FinanceModel() != dataset.DefaultFinanceModel() || cfg.Output.Path != DefaultOutput {
		t.Errorf("generated config does not reproduce the defaults:\n%s", data)
	}
}
