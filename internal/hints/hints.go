// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-pitchdeck/internal/fileutil"
)

// IsInContainer reports whether /.dockerenv exists.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// CIVars are environment variables set by common CI runners.
var CIVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// InCI reports whether any of CIVars is set according to getenv.
func InCI(getenv func(string) string) bool {
	for _, k := range CIVars {
		if getenv(k) != "" {
			return true
		}
	}
	return false
}

// ForPreview returns hints for slide preview failures. Previews embed their
// fonts, so failures come from the destination or the pictures. Containers
// often mount the working tree read-only.
func ForPreview() string {
	var hints []string
	if InCI(os.Getenv) || IsInContainer() {
		hints = append(hints, "mount the preview directory as a writable volume in Docker/CI")
	}
	hints = append(hints, "omit --preview to build the deck without previews")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for slow disks or large images, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-pitchdeck/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-pitchdeck") {
			hint += " or create " + p
			break
		}
	}

	return format(hint + " (pitchdeck init writes a starter file)")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetMissing returns hints for missing input images. files are the
// expected names inside dir.
func ForAssetMissing(dir string, files ...string) string {
	if dir == "" {
		dir = "the asset directory"
	}
	what := "the deck images"
	if len(files) > 0 {
		what = strings.Join(files, ", ")
	}
	return format("place " + what + " in " + dir + " or use --assets")
}

// ForPaletteSlot returns hints for unknown palette keys.
func ForPaletteSlot(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForImageFormat returns hints for undecodable images.
func ForImageFormat() string {
	return format("supported formats: PNG, JPEG")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
