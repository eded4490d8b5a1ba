package slides

import "github.com/alnah/go-pitchdeck/internal/layout"

// Cover is a split screen: brand on the left, hero image bleeding off the
// right half, accent strip along the bottom edge.
func Cover(env Env) *layout.Slide {
	th := env.Theme
	s := layout.NewSlide("cover")

	panel := layout.At(6, 0, layout.SlideWidth-6, layout.SlideHeight)
	s.Add(layout.Shape{Geometry: layout.Rect, Box: panel, Fill: th.CardFill})
	s.Add(layout.Picture{Path: env.Assets.Hero, Slot: panel, Fit: layout.FitHeight})
	layout.DecorativeBar(s, th, layout.SlideHeight-barHeight, barHeight)

	brand := layout.TextStyle{Font: th.Fonts.Title, Size: 80, Bold: true, Color: th.Accent1}
	s.Add(layout.TextBox{
		Box:        layout.At(0.5, 2.5, 5, 2),
		Paragraphs: layout.Lines(brand, layout.AlignLeft, "FASHION", "INSTA."),
	})
	s.Add(layout.TextBox{
		Box: layout.At(0.5, 4.5, 5, 1),
		Paragraphs: layout.Lines(layout.TextStyle{Font: th.Fonts.Body, Size: 24, Color: th.Text},
			layout.AlignLeft, "Your Personal AI Stylist."),
	})
	return s
}

// Ask is the closing call to action on a full-bleed accent background.
func Ask(env Env) *layout.Slide {
	th := env.Theme
	s := layout.NewSlide("ask")

	s.Add(layout.Shape{Geometry: layout.Rect, Box: layout.FullSlide(), Fill: th.Accent1})
	s.Add(layout.TextBox{
		Box: layout.At(2, 2, 9.33, 2),
		Paragraphs: layout.Lines(layout.TextStyle{Font: th.Fonts.Body, Size: 64, Bold: true, Color: th.OnAccent},
			layout.AlignCenter, "Join the Revolution."),
	})
	s.Add(layout.TextBox{
		Box: layout.At(2, 4, 9.33, 1),
		Paragraphs: layout.Lines(layout.TextStyle{Font: th.Fonts.Body, Size: 32, Color: th.OnAccent},
			layout.AlignCenter, "Seeking $2M Seed Investment"),
	})
	return s
}
