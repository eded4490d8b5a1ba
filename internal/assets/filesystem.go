package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxImageSize bounds a single deck image. Decks embed images
// verbatim, so a stray RAW export would bloat every copy of the file.
const DefaultMaxImageSize int64 = 32 << 20

// FilesystemLoader reads deck images from one directory. Names cannot
// leave that directory, through ".." or through symlinks.
type FilesystemLoader struct {
	dir     string
	maxSize int64
}

// NewFilesystemLoader opens dir, which must be an existing readable
// directory. Symlinks in dir itself are resolved once here.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{dir: abs, maxSize: DefaultMaxImageSize}, nil
}

// WithMaxSize returns a copy of the loader that rejects files larger than n
// bytes with ErrImageTooLarge.
func (f *FilesystemLoader) WithMaxSize(n int64) *FilesystemLoader {
	cp := *f
	cp.maxSize = n
	return &cp
}

// BasePath returns the resolved directory.
func (f *FilesystemLoader) BasePath() string {
	return f.dir
}

// Path validates name and returns the absolute path it refers to. The file
// does not have to exist yet.
func (f *FilesystemLoader) Path(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	p := filepath.Join(f.dir, filepath.FromSlash(name))
	if err := f.contain(p); err != nil {
		return "", err
	}
	return p, nil
}

// LoadImage reads and decodes the header of the image called name.
// Absolute paths are accepted when they point inside the directory, which
// is how resolved paths come back through the deck writer.
func (f *FilesystemLoader) LoadImage(name string) (*Image, error) {
	p := name
	if filepath.IsAbs(name) {
		if err := f.contain(name); err != nil {
			return nil, err
		}
	} else {
		var err error
		if p, err = f.Path(name); err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(p)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, p)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedImage, p)
	case f.maxSize > 0 && info.Size() > f.maxSize:
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrImageTooLarge, p, info.Size(), f.maxSize)
	}
	return readImage(p)
}

// contain rejects paths that resolve outside the loader directory. A path
// that does not exist yet is checked as written; reading it later reports
// ErrAssetMissing.
func (f *FilesystemLoader) contain(p string) error {
	abs, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}
	if !strings.HasPrefix(abs, f.dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s is outside %s", ErrPathTraversal, p, f.dir)
	}
	return nil
}

var _ ImageLoader = (*FilesystemLoader)(nil)
