package assets

import (
	"errors"
	"fmt"
)

// Names are the photographic images of a deck, relative to the asset
// directory.
type Names struct {
	Hero         string
	Mockup       string
	Architecture string
}

// DefaultNames are the file names the deck expects when nothing is
// configured.
func DefaultNames() Names {
	return Names{Hero: "hero.png", Mockup: "mockup.png", Architecture: "architecture.png"}
}

// Set is a resolved group of images, each known to exist and decode.
type Set struct {
	Hero         *Image
	Mockup       *Image
	Architecture *Image
}

// Resolve loads every named image from the loader. All failures are
// reported together so a single run lists every missing file.
func Resolve(loader ImageLoader, names Names) (*Set, error) {
	var (
		set  Set
		errs []error
	)
	for _, item := range []struct {
		label string
		name  string
		dst   **Image
	}{
		{"hero", names.Hero, &set.Hero},
		{"mockup", names.Mockup, &set.Mockup},
		{"architecture", names.Architecture, &set.Architecture},
	} {
		img, err := loader.LoadImage(item.name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s image: %w", item.label, err))
			continue
		}
		*item.dst = img
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &set, nil
}

// Preloaded serves images already read into memory, keyed by path, and
// reads any other path from disk.
type Preloaded map[string]*Image

// LoadImage implements ImageLoader.
func (p Preloaded) LoadImage(path string) (*Image, error) {
	if img, ok := p[path]; ok {
		return img, nil
	}
	return readImage(path)
}

// Preloaded indexes the set by path.
func (s *Set) Preloaded() Preloaded {
	out := make(Preloaded, 3)
	for _, img := range []*Image{s.Hero, s.Mockup, s.Architecture} {
		if img != nil {
			out[img.Path] = img
		}
	}
	return out
}

// Compile-time interface check.
var _ ImageLoader = Preloaded(nil)
