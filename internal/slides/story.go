package slides

import (
	"strings"

	"github.com/alnah/go-pitchdeck/internal/content"
	"github.com/alnah/go-pitchdeck/internal/layout"
	"github.com/alnah/go-pitchdeck/internal/theme"
)

// Problem lays out three pain points side by side.
func Problem(env Env) *layout.Slide {
	s := standard(env, "problem", "The Closet Paradox", "Why fashion is broken today.")
	addCards(s, env,
		card{layout.At(0.5, 2, 3.8, 4), "Choice Paralysis",
			"Users spend 90 mins/week deciding what to wear, yet wear only 20% of their wardrobe."},
		card{layout.At(4.7, 2, 3.8, 4), "The Return Nightmare",
			"30% of online purchases are returned. Poor fit and style mismatch cost the industry billions."},
		card{layout.At(8.9, 2, 3.8, 4), "Generic Experience",
			"E-commerce recommendations are based on 'others bought', not 'what fits YOU'."},
	)
	return s
}

// Solution frames the app mockup with two feature cards on each side.
func Solution(env Env) *layout.Slide {
	s := standard(env, "solution", "Meet Your AI Stylist", "Hyper-personalized fashion at your fingertips.")
	s.Add(layout.Picture{
		Path: env.Assets.Mockup,
		Slot: layout.At(4.5, 1.5, 4.8, 5.5),
		Fit:  layout.FitHeight,
	})
	addCards(s, env,
		card{layout.At(0.5, 2.5, 3.5, 1.5), "Virtual Try-On", "See it on YOU before buying. Powered by Generative AI."},
		card{layout.At(0.5, 4.5, 3.5, 1.5), "Smart Wardrobe", "Digitize your closet. Mix & match instantly."},
		card{layout.At(9.3, 2.5, 3.5, 1.5), "Style DNA", "AI learns your taste, body shape, and vibe."},
		card{layout.At(9.3, 4.5, 3.5, 1.5), "Eco-Score", "Make sustainable choices with real-time impact tracking."},
	)
	return s
}

type figure struct {
	left    float64
	value   string
	size    int
	color   theme.Color
	caption string
}

// Market shows three headline figures with captions.
func Market(env Env) *layout.Slide {
	th := env.Theme
	s := standard(env, "market", "A $1.5 Trillion Opportunity", "Riding the wave of Fashion Tech.")

	figures := []figure{
		{1, "$1.5T", 96, th.Accent3, "Global Fashion Market"},
		{5, "25%", 96, th.Accent2, "CAGR AI in Fashion"},
		{9, "Gen-Z", 72, th.Accent1, "Digital Native Target"},
	}
	caption := layout.TextStyle{Font: th.Fonts.Body, Size: 18, Color: th.Text}
	for _, f := range figures {
		s.Add(layout.TextBox{
			Box: layout.At(f.left, contentTop, 3, 2),
			Paragraphs: []layout.Paragraph{
				{
					Text:  f.value,
					Style: layout.TextStyle{Font: th.Fonts.Body, Size: f.size, Bold: true, Color: f.color},
					Align: layout.AlignCenter,
				},
				{Text: f.caption, Style: caption, Align: layout.AlignCenter},
			},
		})
	}
	return s
}

type tier struct {
	left  float64
	fill  theme.Color
	label string
	items []string
}

// Roadmap shows the MoSCoW tiers as three solid columns.
func Roadmap(env Env) *layout.Slide {
	th := env.Theme
	s := standard(env, "roadmap", "Product Roadmap", "Prioritized for maximum impact (MoSCoW).")

	tiers := []tier{
		{0.5, th.Accent1, "MUST HAVE (MVP)", []string{"AI Reco Engine", "Photo Capture", "GDPR Compliance", "Secure Auth"}},
		{4.7, th.Accent2, "SHOULD HAVE (V1)", []string{"Virtual Try-On", "Style Profiling", "Social Sharing"}},
		{8.9, th.Accent3, "COULD HAVE (Scale)", []string{"B2B Retailer API", "Marketplace", "Advanced Gamification"}},
	}
	heading := layout.TextStyle{Font: th.Fonts.Body, Size: 20, Bold: true, Color: th.OnAccent}
	item := layout.TextStyle{Font: th.Fonts.Body, Size: 18, Color: th.OnAccent}
	for _, t := range tiers {
		paras := []layout.Paragraph{
			{Text: t.label, Style: heading},
			{Text: "", Style: item},
		}
		list := "- " + strings.Join(t.items, "\n- ")
		paras = append(paras, layout.Lines(item, layout.AlignLeft, content.Lines(list)...)...)
		s.Add(layout.Shape{
			Geometry:   layout.Rect,
			Box:        layout.At(t.left, contentTop, 4, 4),
			Fill:       t.fill,
			Paragraphs: paras,
		})
	}
	return s
}
