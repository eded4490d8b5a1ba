package slides

import (
	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/layout"
)

// Financials embeds the spend and revenue chart across the slide.
func Financials(env Env) *layout.Slide {
	s := standard(env, "financials", "Path to Profitability", "Sustainable growth model.")
	s.Add(layout.Picture{
		Path: env.Assets.ROIChart,
		Slot: layout.At(1, 2, 11, pictureBottom-2),
		Fit:  layout.FitWidth,
	})
	return s
}

// Risks pairs the risk radar with the two mitigation cards.
func Risks(env Env) *layout.Slide {
	s := standard(env, "risks", "De-risked Execution", "Proactive management of Data & Ethics.")
	s.Add(layout.Picture{
		Path: env.Assets.RiskRadar,
		Slot: layout.At(1, 2, 6, pictureBottom-2),
		Fit:  layout.FitWidth,
	})
	addCards(s, env,
		card{layout.At(7.5, 2.5, 5, 1.5), "GDPR & Privacy",
			"Full compliance with CNIL register. AES-256 Encryption. User consent first."},
		card{layout.At(7.5, 4.5, 5, 1.5), "Ethical AI",
			"Bias monitoring to ensure fair representation across all body types and ethnicities."},
	)
	return s
}

// Budget table geometry.
var (
	budgetBox     = layout.At(1, contentTop, 11.33, 3)
	budgetColumns = []float64{4, 3, 4}
)

// BudgetCellSize is the font size of every budget table cell.
const BudgetCellSize = 18

// Budget renders the CAPEX and OPEX lines as a styled 3x3 table.
func Budget(env Env) *layout.Slide {
	th := env.Theme
	s := standard(env, "budget", "Resource Allocation", "CAPEX vs OPEX Breakdown.")

	header := dataset.BudgetHeader
	rows := [][]string{header[:]}
	for _, r := range env.Data.Budget {
		rows = append(rows, []string{r.Category, r.CostType, r.Amount})
	}

	columns := make([]float64, len(budgetColumns))
	copy(columns, budgetColumns)
	s.Add(layout.Table{
		Box:       budgetBox,
		Columns:   columns,
		Rows:      rows,
		CellFill:  th.CardFill,
		CellStyle: layout.TextStyle{Font: th.Fonts.Body, Size: BudgetCellSize, Color: th.Text},
	})
	return s
}

// Timeline geometry.
const (
	timelineLeft  = 1.0
	timelineTop   = 4.0
	timelineWidth = 11.33
	timelineThick = 0.1
	markerTop     = 3.8
	markerSize    = 0.5
	labelTop      = 2.8
	dateTop       = 4.4
	captionWidth  = 2.5
)

// MarkerBox is where the milestone marker sits for a given position.
func MarkerBox(pos float64) layout.Box {
	return layout.At(pos, markerTop, markerSize, markerSize)
}

// Timeline draws the base line and one marker, label and date per milestone.
// Labels are centered on their marker.
func Timeline(env Env) *layout.Slide {
	th := env.Theme
	s := standard(env, "timeline", "Execution Timeline", "Key milestones to market domination.")

	s.Add(layout.Shape{
		Geometry: layout.Rect,
		Box:      layout.At(timelineLeft, timelineTop, timelineWidth, timelineThick),
		Fill:     th.Text,
	})
	for _, m := range env.Data.Milestones {
		tone := th.Tone(m.Tone)
		marker := MarkerBox(m.Position)
		captionLeft := marker.CenterX() - captionWidth/2

		s.Add(layout.Shape{Geometry: layout.Ellipse, Box: marker, Fill: tone})
		s.Add(layout.TextBox{
			Box: layout.At(captionLeft, labelTop, captionWidth, 1),
			Paragraphs: layout.Lines(layout.TextStyle{Font: th.Fonts.Body, Size: 16, Bold: true, Color: tone},
				layout.AlignCenter, m.Label),
		})
		s.Add(layout.TextBox{
			Box: layout.At(captionLeft, dateTop, captionWidth, 1),
			Paragraphs: layout.Lines(layout.TextStyle{Font: th.Fonts.Body, Size: 14, Color: tone},
				layout.AlignCenter, m.Date),
		})
	}
	return s
}
