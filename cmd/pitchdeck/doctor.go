package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pitchdeck/internal/assets"
	"github.com/alnah/go-pitchdeck/internal/config"
	"github.com/alnah/go-pitchdeck/internal/fileutil"
	"github.com/alnah/go-pitchdeck/internal/hints"
	"github.com/alnah/go-pitchdeck/internal/layout"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Assets   []assetInfo `json:"assets"`
	Output   outputInfo  `json:"output"`
	Fonts    bool        `json:"fonts"`
	Env      envInfo     `json:"environment"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// assetInfo holds the check result for one input image.
type assetInfo struct {
	Role   string `json:"role"`
	Path   string `json:"path"`
	Found  bool   `json:"found"`
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

// outputInfo holds writability of the output locations.
type outputInfo struct {
	Path          string `json:"path"`
	Writable      bool   `json:"writable"`
	ChartDir      string `json:"chart_dir"`
	ChartWritable bool   `json:"chart_writable"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json   bool
	config string
	assets string
	output string
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags
// or config.
func runDoctorCmd(args []string, env *Environment) int {
	f := &doctorFlags{}
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.assets, "assets", "a", "", "asset directory to check")
	fs.StringVarP(&f.output, "output", "o", "", "presentation path to check")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	cfg, err := loadConfig(f.config, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	mergeFlags(&buildFlags{assets: f.assets, output: f.output}, cfg)
	cfg = cfg.WithDefaults()

	result := runDoctor(cfg)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result, painter{color: env.Color})
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(cfg *config.Config) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkAssets(result, cfg)
	checkOutput(result, cfg)
	checkFonts(result)
	checkEnvironment(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkAssets verifies every input image exists and decodes.
func checkAssets(result *doctorResult, cfg *config.Config) {
	names := cfg.AssetNames()
	roles := []struct{ role, name string }{
		{"hero", names.Hero},
		{"mockup", names.Mockup},
		{"architecture", names.Architecture},
	}

	loader, err := assets.NewFilesystemLoader(cfg.Assets.Dir)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Asset directory unusable: %v", err))
		for _, r := range roles {
			result.Assets = append(result.Assets, assetInfo{
				Role: r.role,
				Path: filepath.Join(cfg.Assets.Dir, r.name),
			})
		}
		return
	}

	for _, r := range roles {
		info := assetInfo{Role: r.role, Path: filepath.Join(cfg.Assets.Dir, r.name)}
		img, err := loader.LoadImage(r.name)
		switch {
		case err == nil:
			info.Found = true
			info.Format = img.Format
			info.Width, info.Height = img.Width, img.Height
		case errors.Is(err, assets.ErrAssetMissing):
			info.Error = "missing"
			result.Errors = append(result.Errors, fmt.Sprintf("%s image not found: %s", r.role, info.Path))
		default:
			info.Found = true
			info.Error = err.Error()
			result.Errors = append(result.Errors, fmt.Sprintf("%s image unusable: %v", r.role, err))
		}
		result.Assets = append(result.Assets, info)
	}
}

// checkOutput verifies the presentation and chart directories accept files.
func checkOutput(result *doctorResult, cfg *config.Config) {
	result.Output.Path = cfg.Output.Path
	result.Output.ChartDir = cfg.Assets.ChartDir

	if err := fileutil.CheckWritableDir(filepath.Dir(cfg.Output.Path)); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %v", err))
	} else {
		result.Output.Writable = true
	}
	if err := fileutil.CheckWritableDir(cfg.Assets.ChartDir); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Chart directory not writable: %v", err))
	} else {
		result.Output.ChartWritable = true
	}
	if fileutil.FileExists(cfg.Output.Path) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s exists and will be replaced", cfg.Output.Path))
	}
}

// checkFonts verifies the embedded fonts used for measuring and previews load.
func checkFonts(result *doctorResult) {
	w, err := layout.NewFontWrapper()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Embedded fonts failed to load: %v", err))
		return
	}
	_ = w.Close()
	result.Fonts = true
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	result.Env.CI = hints.InCI(os.Getenv)

	if result.Env.Container || result.Env.CI {
		result.Warnings = append(result.Warnings,
			"Container/CI detected: --preview needs a writable directory"+hints.ForPreview())
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("PITCHDECK_CONTAINER") == "1" {
		return true, "PITCHDECK_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult, p painter) {
	fmt.Fprintln(w, p.title("pitchdeck doctor"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Assets")
	for _, a := range r.Assets {
		switch {
		case a.Found && a.Error == "":
			fmt.Fprintf(w, "  %s %s: %s (%s %dx%d)\n", p.tag(tagOK), a.Role, a.Path, a.Format, a.Width, a.Height)
		case a.Found:
			fmt.Fprintf(w, "  %s %s: %s unreadable\n", p.tag(tagError), a.Role, a.Path)
		default:
			fmt.Fprintf(w, "  %s %s: %s missing\n", p.tag(tagError), a.Role, a.Path)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	printCheck(w, p, r.Output.Writable, "Presentation: "+r.Output.Path)
	printCheck(w, p, r.Output.ChartWritable, "Charts: "+r.Output.ChartDir)
	printCheck(w, p, r.Fonts, "Embedded fonts")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  %s Platform: %s/%s\n", p.tag(tagOK), r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  %s Container: detected (%s)\n", p.tag(tagOK), r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintf(w, "  %s CI: detected\n", p.tag(tagOK))
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  %s %s\n", p.tag(tagWarn), warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  %s %s\n", p.tag(tagError), err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to build")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

func printCheck(w io.Writer, p painter, ok bool, label string) {
	if ok {
		fmt.Fprintf(w, "  %s %s\n", p.tag(tagOK), label)
		return
	}
	fmt.Fprintf(w, "  %s %s\n", p.tag(tagError), label)
}
