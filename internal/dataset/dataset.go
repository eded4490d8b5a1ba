// Package dataset holds the static tables the deck is built from: the product
// backlog, the financial model, the risk profile, the delivery milestones and
// the budget breakdown. Values are plain records; nothing here renders.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by every validation failure in this package.
var ErrMalformed = errors.New("malformed dataset")

// Priority is a MoSCoW tier.
type Priority string

// MoSCoW tiers.
const (
	Must   Priority = "Must"
	Should Priority = "Should"
	Could  Priority = "Could"
	Wont   Priority = "Won't"
)

// Valid reports whether p is one of the four MoSCoW tiers.
func (p Priority) Valid() bool {
	switch p {
	case Must, Should, Could, Wont:
		return true
	}
	return false
}

// BacklogItem is one user story of the product backlog.
type BacklogItem struct {
	ID       string
	Title    string
	Priority Priority
	Points   int
}

// Backlog is an ordered list of user stories.
type Backlog []BacklogItem

// Points sums effort points for one priority tier.
func (b Backlog) Points(p Priority) int {
	total := 0
	for _, item := range b {
		if item.Priority == p {
			total += item.Points
		}
	}
	return total
}

// Validate requires unique IDs, known tiers and positive effort.
func (b Backlog) Validate() error {
	seen := make(map[string]bool, len(b))
	for i, item := range b {
		if item.ID == "" {
			return fmt.Errorf("%w: backlog[%d]: empty id", ErrMalformed, i)
		}
		if seen[item.ID] {
			return fmt.Errorf("%w: backlog[%d]: duplicate id %q", ErrMalformed, i, item.ID)
		}
		seen[item.ID] = true
		if !item.Priority.Valid() {
			return fmt.Errorf("%w: backlog %s: unknown priority %q", ErrMalformed, item.ID, item.Priority)
		}
		if item.Points <= 0 {
			return fmt.Errorf("%w: backlog %s: points must be positive, got %d", ErrMalformed, item.ID, item.Points)
		}
	}
	return nil
}

// Risk score bounds. The radar's radial axis uses the same range.
const (
	MinRiskScore = 0
	MaxRiskScore = 10
	RiskAxes     = 6
)

// RiskScore is one axis of the risk radar. Order of the slice is axis order.
type RiskScore struct {
	Category string
	Score    float64
}

// ValidateRisks requires exactly RiskAxes entries with scores in
// [MinRiskScore, MaxRiskScore]. Out-of-range scores are rejected, not clamped.
func ValidateRisks(risks []RiskScore) error {
	if len(risks) != RiskAxes {
		return fmt.Errorf("%w: risk profile needs %d categories, got %d", ErrMalformed, RiskAxes, len(risks))
	}
	for i, r := range risks {
		if strings.TrimSpace(r.Category) == "" {
			return fmt.Errorf("%w: risks[%d]: empty category", ErrMalformed, i)
		}
		if r.Score < MinRiskScore || r.Score > MaxRiskScore {
			return fmt.Errorf("%w: risk %q: score %g outside [%d, %d]",
				ErrMalformed, r.Category, r.Score, MinRiskScore, MaxRiskScore)
		}
	}
	return nil
}

// Tone names a palette slot so data stays independent of concrete colors.
type Tone int

// Palette slots a milestone can use.
const (
	ToneText Tone = iota
	ToneAccent1
	ToneAccent2
	ToneAccent3
)

// Milestone is one marker on the execution timeline. Position is the
// horizontal offset in inches of the marker's left edge.
type Milestone struct {
	Label    string
	Date     string
	Position float64
	Tone     Tone
}

// ValidateMilestones requires at least one milestone and strictly increasing
// positions, so input order is left-to-right order.
func ValidateMilestones(ms []Milestone) error {
	if len(ms) == 0 {
		return fmt.Errorf("%w: timeline has no milestones", ErrMalformed)
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].Position <= ms[i-1].Position {
			return fmt.Errorf("%w: milestone %q at %.2f is not right of %q at %.2f",
				ErrMalformed, ms[i].Label, ms[i].Position, ms[i-1].Label, ms[i-1].Position)
		}
	}
	return nil
}

// BudgetRow is one line of the resource allocation table.
type BudgetRow struct {
	Category string
	CostType string
	Amount   string
}

// BudgetHeader is the fixed header row of the budget table.
var BudgetHeader = [3]string{"Category", "Cost Type", "Estimated Amount"}

// BudgetRows is the fixed number of data rows under the header.
const BudgetRows = 2

// ValidateBudget requires exactly BudgetRows rows with every cell filled.
func ValidateBudget(rows []BudgetRow) error {
	if len(rows) != BudgetRows {
		return fmt.Errorf("%w: budget needs %d rows, got %d", ErrMalformed, BudgetRows, len(rows))
	}
	for i, r := range rows {
		if r.Category == "" || r.CostType == "" || r.Amount == "" {
			return fmt.Errorf("%w: budget[%d]: empty cell", ErrMalformed, i)
		}
	}
	return nil
}

// Dataset aggregates every table the deck consumes.
type Dataset struct {
	Backlog    Backlog
	Finance    FinanceModel
	Risks      []RiskScore
	Milestones []Milestone
	Budget     []BudgetRow
}

// Validate runs every table check and the financial series checks.
func (d *Dataset) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil dataset", ErrMalformed)
	}
	if err := d.Backlog.Validate(); err != nil {
		return err
	}
	if err := d.Finance.Validate(); err != nil {
		return err
	}
	if err := d.Finance.Series().Validate(); err != nil {
		return err
	}
	if err := ValidateRisks(d.Risks); err != nil {
		return err
	}
	if err := ValidateMilestones(d.Milestones); err != nil {
		return err
	}
	return ValidateBudget(d.Budget)
}

// Default returns the tables of the Fashion Insta seed deck.
func Default() *Dataset {
	return &Dataset{
		Backlog: Backlog{
			{ID: "US01", Title: "Connexion mail", Priority: Must, Points: 3},
			{ID: "US02", Title: "Capture photo", Priority: Must, Points: 5},
			{ID: "US03", Title: "Moteur Reco IA", Priority: Must, Points: 13},
			{ID: "US04", Title: "Virtual Try-on", Priority: Should, Points: 21},
			{ID: "US05", Title: "Profil Style", Priority: Should, Points: 5},
			{ID: "US09", Title: "Paiement In-App", Priority: Must, Points: 13},
		},
		Finance: DefaultFinanceModel(),
		Risks: []RiskScore{
			{Category: "Data Privacy", Score: 8},
			{Category: "Legal/GDPR", Score: 7},
			{Category: "AI Ethics", Score: 5},
			{Category: "Tech Scalability", Score: 4},
			{Category: "Market Adoption", Score: 6},
			{Category: "Talent Retention", Score: 5},
		},
		Milestones: []Milestone{
			{Label: "Q1: FOUNDATION", Date: "Sprint 1-2", Position: 1.5, Tone: ToneText},
			{Label: "MVP READY 🚀", Date: "Sprint 3 (Month 2)", Position: 4.5, Tone: ToneAccent2},
			{Label: "VIRTUAL TRY-ON", Date: "Sprint 4 (Month 3)", Position: 7.5, Tone: ToneAccent1},
			{Label: "V1 RELEASE 🏁", Date: "Month 4", Position: 10.5, Tone: ToneAccent3},
		},
		Budget: []BudgetRow{
			{Category: "Development (Man-Days)", CostType: "CAPEX (One-off)", Amount: "€125,000 (MVP)"},
			{Category: "Cloud Infrastructure (Azure)", CostType: "OPEX (Monthly)", Amount: "€1,500 / month"},
		},
	}
}
