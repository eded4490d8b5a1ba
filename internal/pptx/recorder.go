package pptx

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/alnah/go-pitchdeck/internal/layout"
)

// Recorder captures decks instead of serializing them. It satisfies the same
// method set as Writer and is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	decks   []*layout.Deck
	paths   []string
	preview []string

	// Err, when set, is returned by every call.
	Err error
}

// Write records deck and path.
func (r *Recorder) Write(ctx context.Context, deck *layout.Deck, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.decks = append(r.decks, deck)
	r.paths = append(r.paths, path)
	return nil
}

// Previews records dir and returns the paths a Writer would have produced.
func (r *Recorder) Previews(ctx context.Context, deck *layout.Deck, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	r.preview = append(r.preview, dir)
	out := make([]string, len(deck.Slides))
	for i := range deck.Slides {
		out[i] = filepath.Join(dir, PreviewName(i+1))
	}
	return out, nil
}

// Decks returns the recorded decks in call order.
func (r *Recorder) Decks() []*layout.Deck {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*layout.Deck(nil), r.decks...)
}

// Paths returns the recorded output paths in call order.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

// PreviewDirs returns the recorded preview directories in call order.
func (r *Recorder) PreviewDirs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.preview...)
}

// Last returns the most recent deck, or nil.
func (r *Recorder) Last() *layout.Deck {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.decks) == 0 {
		return nil
	}
	return r.decks[len(r.decks)-1]
}
