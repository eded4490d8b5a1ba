package hints

// Notes:
// - ForPreview tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"strings"
	"testing"
)

func clearCI(t *testing.T) {
	t.Helper()
	for _, k := range CIVars {
		t.Setenv(k, "")
	}
}

func TestForPreview_InCI(t *testing.T) {
	// Save and restore IsInContainer (not parallel-safe, see package notes)
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	clearCI(t)
	t.Setenv("CI", "true")

	hint := ForPreview()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "writable volume") {
		t.Error("expected volume suggestion in CI")
	}
	if !strings.Contains(hint, "--preview") {
		t.Error("expected --preview suggestion")
	}
}

func TestForPreview_InDocker(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	clearCI(t)

	if hint := ForPreview(); !strings.Contains(hint, "writable volume") {
		t.Errorf("expected volume suggestion in Docker, got %q", hint)
	}
}

func TestForPreview_Desktop(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	clearCI(t)

	hint := ForPreview()
	if strings.Contains(hint, "volume") {
		t.Errorf("should not suggest volumes outside CI/Docker, got %q", hint)
	}
	if !strings.Contains(hint, "--preview") {
		t.Error("expected --preview suggestion")
	}
}

func TestForTimeout(t *testing.T) {
	hint := ForTimeout()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "--timeout") {
		t.Error("expected --timeout flag mention")
	}
}

func TestForConfigNotFound(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with paths",
			paths:    []string{"./foo.yaml", "/home/u/.config/go-pitchdeck/foo.yaml"},
			contains: "create /home/u/.config/go-pitchdeck/foo.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
			if !strings.Contains(hint, "pitchdeck init") {
				t.Errorf("expected init suggestion, got %q", hint)
			}
		})
	}
}

func TestForAssetMissing(t *testing.T) {
	tests := []struct {
		name  string
		dir   string
		files []string
		want  []string
	}{
		{"named files", "media", []string{"hero.png", "mockup.png"}, []string{"hero.png, mockup.png in media", "--assets"}},
		{"no names", "media", nil, []string{"the deck images in media"}},
		{"no dir", "", nil, []string{"the asset directory"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForAssetMissing(tt.dir, tt.files...)
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("ForAssetMissing() = %q, want %q", hint, w)
				}
			}
		})
	}
}

func TestInCI(t *testing.T) {
	env := map[string]string{"GITLAB_CI": "true"}
	if !InCI(func(k string) string { return env[k] }) {
		t.Error("InCI() = false with GITLAB_CI set")
	}
	if InCI(func(string) string { return "" }) {
		t.Error("InCI() = true with an empty environment")
	}
}

func TestForPaletteSlot(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "empty available",
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "with slots",
			available: []string{"accent1", "accent2"},
			contains:  "accent1, accent2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForPaletteSlot(tt.available)

			if tt.wantEmpty && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
			if !tt.wantEmpty && !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForTimeout(),
		ForOutputDirectory(),
		ForImageFormat(),
		ForAssetMissing("assets"),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
