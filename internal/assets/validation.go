package assets

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ImageExtensions are the accepted file extensions, lower case.
var ImageExtensions = []string{".png", ".jpg", ".jpeg"}

// ValidateAssetName checks that an image name is safe to join to a base
// directory. Subdirectories are allowed; absolute paths, ".." segments and
// extensions other than ImageExtensions are not.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsRune(name, 0) || filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	for _, seg := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	if !slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(name))) {
		return fmt.Errorf("%w: %q (want %s)", ErrInvalidAssetName, name, strings.Join(ImageExtensions, ", "))
	}
	return nil
}
