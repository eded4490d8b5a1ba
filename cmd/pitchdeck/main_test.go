package main

// Notes:
// - runMain: we test dispatch and exit codes. Full builds are exercised in
//   build_test.go.
// - main() itself is not called; it only wires os.Args, signals and
//   automaxprocs around runMain.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pitchdeck "github.com/alnah/go-pitchdeck"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "version",
			args:         []string{"pitchdeck", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"pitchdeck dev"},
		},
		{
			name:         "help",
			args:         []string{"pitchdeck", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Commands:", "build", "doctor"},
		},
		{
			name:         "help build",
			args:         []string{"pitchdeck", "help", "build"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"--assets", "--preview"},
		},
		{
			name:         "unknown command",
			args:         []string{"pitchdeck", "deploy"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: deploy"},
		},
		{
			name:         "bad build flag",
			args:         []string{"pitchdeck", "build", "--nope"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown flag"},
		},
		{
			name:     "build help flag",
			args:     []string{"pitchdeck", "build", "--help"},
			wantCode: ExitSuccess,
		},
		{
			name:         "completion unsupported shell",
			args:         []string{"pitchdeck", "completion", "tcsh"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unsupported shell"},
		},
		{
			name:         "completion bash",
			args:         []string{"pitchdeck", "completion", "bash"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"_pitchdeck_completions"},
		},
		{
			name:     "inspect missing file",
			args:     []string{"pitchdeck", "inspect", filepath.Join("no", "such", "deck.pptx")},
			wantCode: ExitIO,
		},
		{
			name:         "config not found",
			args:         []string{"pitchdeck", "build", "--config", "./no-such-config.yaml"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

// Not parallel: the default asset and output paths are relative to the
// working directory.
func TestRunMain_NoArgumentsBuildsDefaults(t *testing.T) {
	root := setupAssets(t)
	t.Chdir(root)
	env, stdout, stderr := testEnv()

	code := runMain(context.Background(), []string{"pitchdeck"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != successMessage {
		t.Errorf("stdout = %q, want %q", got, successMessage)
	}
	if _, err := os.Stat(filepath.Join(root, pitchdeck.DefaultOutput)); err != nil {
		t.Errorf("default deck not written: %v", err)
	}
}

func TestRunMain_BareFlagsMeanBuild(t *testing.T) {
	t.Parallel()

	root := setupAssets(t)
	out := filepath.Join(root, "deck.pptx")
	env, stdout, stderr := testEnv()

	code := runMain(context.Background(), []string{"pitchdeck", "-o", out, "--assets", filepath.Join(root, "assets")}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), successMessage) {
		t.Errorf("stdout = %q, want success line", stdout.String())
	}
}

func TestRunMain_MissingAssetExitsIO(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	env, _, stderr := testEnv()

	code := runMain(context.Background(), []string{
		"pitchdeck", "build",
		"--assets", filepath.Join(root, "assets"),
		"-o", filepath.Join(root, "deck.pptx"),
	}, env)
	if code != ExitIO {
		t.Errorf("runMain() = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("stderr should carry a hint, got %q", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestWantsVerbose / TestIsCommand
// ---------------------------------------------------------------------------

func TestWantsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"pitchdeck", "build", "-v"}, true},
		{[]string{"pitchdeck", "build", "--verbose"}, true},
		{[]string{"pitchdeck", "build"}, false},
		{[]string{"pitchdeck", "build", "--", "-v"}, false},
	}
	for _, tt := range tests {
		if got := wantsVerbose(tt.args); got != tt.want {
			t.Errorf("wantsVerbose(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestIsCommand(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"build", "doctor", "inspect", "init", "completion", "version", "help"} {
		if !isCommand(c) {
			t.Errorf("isCommand(%q) = false", c)
		}
	}
	for _, c := range []string{"", "convert", "-o", "Build"} {
		if isCommand(c) {
			t.Errorf("isCommand(%q) = true", c)
		}
	}
}
