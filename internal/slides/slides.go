// Package slides builds the thirteen slides of the pitch deck.
//
// Every routine is a pure function of Env: it returns a fresh layout.Slide
// holding the draw instructions for one slide and never touches a document
// library or the filesystem.
package slides

import (
	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/layout"
	"github.com/alnah/go-pitchdeck/internal/theme"
)

// Assets holds the image paths the deck embeds.
type Assets struct {
	Hero         string
	Mockup       string
	Architecture string
	ROIChart     string
	RiskRadar    string
}

// Env is everything a slide routine may read.
type Env struct {
	Theme  theme.Theme
	Data   *dataset.Dataset
	Wrap   layout.Wrapper
	Assets Assets
}

// Builder produces one slide.
type Builder struct {
	Name  string
	Build func(Env) *layout.Slide
}

// Builders returns the slide routines in deck order.
func Builders() []Builder {
	return []Builder{
		{"cover", Cover},
		{"problem", Problem},
		{"solution", Solution},
		{"market", Market},
		{"roadmap", Roadmap},
		{"financials", Financials},
		{"risks", Risks},
		{"agile", Agile},
		{"budget", Budget},
		{"compliance", Compliance},
		{"timeline", Timeline},
		{"architecture", Architecture},
		{"ask", Ask},
	}
}

// Deck runs every builder in order and returns the finished deck.
func Deck(env Env, title, author string) *layout.Deck {
	d := layout.NewDeck(title, author)
	for _, b := range Builders() {
		d.Append(b.Build(env))
	}
	return d
}

// Content rows start below the header.
const contentTop = 2.5

// pictureBottom keeps embedded pictures clear of the bottom edge.
const pictureBottom = layout.SlideHeight - 0.2

// standard opens a slide with the top accent bar and a header.
func standard(env Env, name, title, subtitle string) *layout.Slide {
	s := layout.NewSlide(name)
	layout.DecorativeBar(s, env.Theme, 0, barHeight)
	layout.Header(s, env.Theme, title, subtitle)
	return s
}

const barHeight = 0.15

// card is a titled panel. The body is markdown: "- " lines become bullets.
// Pass literal text through content.Escape.
type card struct {
	box         layout.Box
	title, body string
}

func addCards(s *layout.Slide, env Env, cards ...card) {
	for _, c := range cards {
		layout.Card(s, env.Theme, env.Wrap, c.box, c.title, c.body)
	}
}
