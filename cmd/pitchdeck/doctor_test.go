package main

// Notes:
// - runDoctor: we test asset, output and font checks against temp
//   directories. Container and CI detection depend on the host and are
//   only checked for shape, not value.
// - printDoctorResult: we test key markers, not exact layout.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-pitchdeck/internal/config"
)

func doctorConfig(root string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Assets.Dir = filepath.Join(root, "assets")
	cfg.Assets.ChartDir = filepath.Join(root, "assets")
	cfg.Output.Path = filepath.Join(root, "out", "deck.pptx")
	return cfg
}

// ---------------------------------------------------------------------------
// TestRunDoctor - Checks
// ---------------------------------------------------------------------------

func TestRunDoctor_Ready(t *testing.T) {
	t.Parallel()

	root := setupAssets(t)
	r := runDoctor(doctorConfig(root))

	if len(r.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors)
	}
	if r.Status == "errors" {
		t.Errorf("Status = %q", r.Status)
	}
	if len(r.Assets) != 3 {
		t.Fatalf("got %d assets, want 3", len(r.Assets))
	}
	for _, a := range r.Assets {
		if !a.Found || a.Format != "png" || a.Width != 32 || a.Height != 48 {
			t.Errorf("asset %+v, want found png 32x48", a)
		}
	}
	if !r.Output.Writable || !r.Output.ChartWritable || !r.Fonts {
		t.Errorf("output/fonts = %+v fonts=%v", r.Output, r.Fonts)
	}
}

func TestRunDoctor_MissingAndBrokenAssets(t *testing.T) {
	t.Parallel()

	root := setupAssets(t)
	if err := os.Remove(filepath.Join(root, "assets", "mockup.png")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "assets", "hero.png"), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := runDoctor(doctorConfig(root))
	if r.Status != "errors" {
		t.Errorf("Status = %q, want errors", r.Status)
	}
	if len(r.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(r.Errors), r.Errors)
	}
	byRole := map[string]assetInfo{}
	for _, a := range r.Assets {
		byRole[a.Role] = a
	}
	if a := byRole["mockup"]; a.Found || a.Error != "missing" {
		t.Errorf("mockup = %+v, want missing", a)
	}
	if a := byRole["hero"]; !a.Found || a.Error == "" {
		t.Errorf("hero = %+v, want found but unusable", a)
	}
	if a := byRole["architecture"]; !a.Found || a.Error != "" {
		t.Errorf("architecture = %+v, want ok", a)
	}
}

func TestRunDoctor_NoAssetDir(t *testing.T) {
	t.Parallel()

	r := runDoctor(doctorConfig(t.TempDir()))
	if r.Status != "errors" {
		t.Errorf("Status = %q, want errors", r.Status)
	}
	if len(r.Assets) != 3 {
		t.Errorf("all three roles should be reported, got %d", len(r.Assets))
	}
}

func TestRunDoctor_ExistingOutputWarns(t *testing.T) {
	t.Parallel()

	root := setupAssets(t)
	cfg := doctorConfig(root)
	if err := os.MkdirAll(filepath.Dir(cfg.Output.Path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.Output.Path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := runDoctor(cfg)
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "will be replaced") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want a replace warning", r.Warnings)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd - Output formats
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSON(t *testing.T) {
	t.Parallel()

	root := setupAssets(t)
	env, stdout, _ := testEnv()
	code := runDoctorCmd([]string{"--json", "-a", filepath.Join(root, "assets"), "-o", filepath.Join(root, "deck.pptx")}, env)
	if code != ExitSuccess {
		t.Fatalf("runDoctorCmd() = %d", code)
	}

	var got doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}
	if len(got.Assets) != 3 || got.Env.OS == "" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestRunDoctorCmd_TextFailure(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	code := runDoctorCmd([]string{"-a", filepath.Join(t.TempDir(), "none")}, env)
	if code != ExitGeneral {
		t.Errorf("runDoctorCmd() = %d, want %d", code, ExitGeneral)
	}
	for _, want := range []string{"pitchdeck doctor", "Assets", "[ERROR]", "Not ready"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunDoctorCmd_BadFlag(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	if code := runDoctorCmd([]string{"--bogus"}, env); code != ExitUsage {
		t.Errorf("runDoctorCmd() = %d, want %d", code, ExitUsage)
	}
}

func TestPrintDoctorResult_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		want   string
	}{
		{"ready", "Ready to build"},
		{"warnings", "Ready with warnings"},
		{"errors", "Not ready"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		printDoctorResult(&buf, &doctorResult{Status: tt.status}, painter{})
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("status %q: output missing %q", tt.status, tt.want)
		}
	}
}

func TestPainter(t *testing.T) {
	t.Parallel()

	plain := painter{}
	for _, tag := range []string{tagOK, tagWarn, tagError} {
		if got := plain.tag(tag); got != tag {
			t.Errorf("plain tag(%q) = %q, want it unchanged", tag, got)
		}
	}

	colored := painter{color: true}
	for _, tag := range []string{tagOK, tagWarn, tagError} {
		if got := colored.tag(tag); !strings.Contains(got, tag) {
			t.Errorf("colored tag(%q) = %q, want the tag text kept", tag, got)
		}
	}
	if got := colored.title("pitchdeck doctor"); !strings.Contains(got, "pitchdeck doctor") {
		t.Errorf("colored title = %q", got)
	}
}
