package layout

// Slide is one canvas: an ordered, append-only list of instructions.
type Slide struct {
	Name         string
	instructions []Instruction
}

// NewSlide starts an empty canvas.
func NewSlide(name string) *Slide {
	return &Slide{Name: name}
}

// Add appends instructions in draw order (later ones are on top).
func (s *Slide) Add(ins ...Instruction) {
	s.instructions = append(s.instructions, ins...)
}

// Instructions returns a copy of the draw list.
func (s *Slide) Instructions() []Instruction {
	out := make([]Instruction, len(s.instructions))
	copy(out, s.instructions)
	return out
}

// Len is the number of instructions on the slide.
func (s *Slide) Len() int {
	return len(s.instructions)
}

// Count returns the number of instructions of the given kind.
func (s *Slide) Count(k Kind) int {
	n := 0
	for _, ins := range s.instructions {
		if ins.Kind() == k {
			n++
		}
	}
	return n
}

// Texts returns every paragraph and table cell string in draw order.
func (s *Slide) Texts() []string {
	var out []string
	for _, ins := range s.instructions {
		switch v := ins.(type) {
		case Shape:
			for _, p := range v.Paragraphs {
				out = append(out, p.Text)
			}
		case TextBox:
			for _, p := range v.Paragraphs {
				out = append(out, p.Text)
			}
		case Table:
			for _, row := range v.Rows {
				out = append(out, row...)
			}
		}
	}
	return out
}

// Pictures returns the picture instructions of the slide.
func (s *Slide) Pictures() []Picture {
	var out []Picture
	for _, ins := range s.instructions {
		if p, ok := ins.(Picture); ok {
			out = append(out, p)
		}
	}
	return out
}

// Deck is the ordered slide sequence plus its fixed canvas size.
type Deck struct {
	Title  string
	Author string
	Width  float64
	Height float64
	Slides []*Slide
}

// NewDeck creates a deck with the 16:9 canvas fixed before any slide exists.
func NewDeck(title, author string) *Deck {
	return &Deck{Title: title, Author: author, Width: SlideWidth, Height: SlideHeight}
}

// Append adds slides in order.
func (d *Deck) Append(slides ...*Slide) {
	d.Slides = append(d.Slides, slides...)
}

// Canvas is the full slide rectangle.
func (d *Deck) Canvas() Box {
	return Box{Width: d.Width, Height: d.Height}
}

// PicturePaths returns every distinct picture path in first-use order.
func (d *Deck) PicturePaths() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range d.Slides {
		for _, p := range s.Pictures() {
			if !seen[p.Path] {
				seen[p.Path] = true
				out = append(out, p.Path)
			}
		}
	}
	return out
}
