package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG for DecodeConfig
	_ "image/png"  // register PNG for DecodeConfig
	"io/fs"
	"os"
)

// Image is an image file read into memory with its pixel size.
type Image struct {
	Path   string
	Data   []byte
	Width  int
	Height int
	Format string // "png" or "jpeg"
}

// MIME returns the media type used when embedding the image.
func (img *Image) MIME() string {
	if img.Format == "jpeg" {
		return "image/jpeg"
	}
	return "image/png"
}

// FileLoader reads images from any path on disk. Used for files the build
// writes itself, such as charts.
type FileLoader struct{}

// LoadImage reads the file and decodes its header.
func (FileLoader) LoadImage(path string) (*Image, error) {
	return readImage(path)
}

// DecodeImage decodes the header of data, which was read from path.
func DecodeImage(path string, data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, path, err)
	}
	if format != "png" && format != "jpeg" {
		return nil, fmt.Errorf("%w: %s: format %s", ErrUnsupportedImage, path, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s: empty image", ErrUnsupportedImage, path)
	}
	return &Image{Path: path, Data: data, Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

func readImage(path string) (*Image, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided asset path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return DecodeImage(path, data)
}

// Compile-time interface check.
var _ ImageLoader = FileLoader{}
