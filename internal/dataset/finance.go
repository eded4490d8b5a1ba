package dataset

import (
	"fmt"
	"math"
)

// FinanceModel holds the constants of the cumulative spend and revenue curves:
//
//	spend(m)   = Base + Slope*m
//	revenue(m) = max(0, Rate*(m-Offset))
//
// for m in 0..Horizon. BreakEven is where the chart draws its marker.
type FinanceModel struct {
	Base      float64
	Slope     float64
	Rate      float64
	Offset    int
	Horizon   int
	BreakEven int
}

// MaxHorizon bounds the projection to ten years of monthly points.
const MaxHorizon = 120

// DefaultFinanceModel returns the seed-round model (37 monthly points).
func DefaultFinanceModel() FinanceModel {
	return FinanceModel{
		Base:      50000,
		Slope:     12000,
		Rate:      25000,
		Offset:    6,
		Horizon:   36,
		BreakEven: 18,
	}
}

// Validate checks that the model produces well-formed curves.
func (f FinanceModel) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{{"base", f.Base}, {"slope", f.Slope}, {"rate", f.Rate}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: finance %s must be a finite number, got %g", ErrMalformed, v.name, v.value)
		}
	}

	switch {
	case f.Horizon < 1 || f.Horizon > MaxHorizon:
		return fmt.Errorf("%w: finance horizon %d outside [1, %d] months", ErrMalformed, f.Horizon, MaxHorizon)
	case math.IsInf(f.Spend(f.Horizon), 0):
		return fmt.Errorf("%w: finance spend overflows by month %d", ErrMalformed, f.Horizon)
	case f.Base < 0:
		return fmt.Errorf("%w: finance base must not be negative, got %g", ErrMalformed, f.Base)
	case f.Slope < 0:
		return fmt.Errorf("%w: finance slope must not be negative, got %g", ErrMalformed, f.Slope)
	case f.Rate <= 0:
		return fmt.Errorf("%w: finance rate must be positive, got %g", ErrMalformed, f.Rate)
	case f.Offset < 0 || f.Offset >= f.Horizon:
		return fmt.Errorf("%w: finance offset %d outside [0, %d)", ErrMalformed, f.Offset, f.Horizon)
	case f.BreakEven < 0 || f.BreakEven > f.Horizon:
		return fmt.Errorf("%w: break-even month %d outside [0, %d]", ErrMalformed, f.BreakEven, f.Horizon)
	}
	return nil
}

// Spend is the cumulative investment at month m.
func (f FinanceModel) Spend(m int) float64 {
	return f.Base + f.Slope*float64(m)
}

// Revenue is the cumulative revenue at month m, zero up to Offset.
func (f FinanceModel) Revenue(m int) float64 {
	return math.Max(0, f.Rate*float64(m-f.Offset))
}

// Series samples both curves for every month in 0..Horizon.
func (f FinanceModel) Series() FinancialSeries {
	n := f.Horizon + 1
	if n < 0 {
		n = 0
	}
	s := FinancialSeries{
		Spend:   make([]Point, n),
		Revenue: make([]Point, n),
	}
	for m := 0; m < n; m++ {
		s.Spend[m] = Point{Month: m, Amount: f.Spend(m)}
		s.Revenue[m] = Point{Month: m, Amount: f.Revenue(m)}
	}
	return s
}

// Point is one (month, amount) sample.
type Point struct {
	Month  int
	Amount float64
}

// FinancialSeries is the pair of cumulative curves plotted on the ROI chart.
type FinancialSeries struct {
	Spend   []Point
	Revenue []Point
}

// Validate rejects series that would be silently truncated or padded by a
// renderer: mismatched lengths, gaps in month indices, non-finite amounts,
// decreasing curves and revenue that starts above zero.
func (s FinancialSeries) Validate() error {
	if len(s.Spend) == 0 {
		return fmt.Errorf("%w: empty financial series", ErrMalformed)
	}
	if len(s.Spend) != len(s.Revenue) {
		return fmt.Errorf("%w: spend has %d points, revenue has %d", ErrMalformed, len(s.Spend), len(s.Revenue))
	}
	for i := range s.Spend {
		if s.Spend[i].Month != i || s.Revenue[i].Month != i {
			return fmt.Errorf("%w: point %d is not month %d", ErrMalformed, i, i)
		}
		if !finite(s.Spend[i].Amount) || !finite(s.Revenue[i].Amount) {
			return fmt.Errorf("%w: non-finite amount at month %d", ErrMalformed, i)
		}
		if s.Spend[i].Amount < 0 || s.Revenue[i].Amount < 0 {
			return fmt.Errorf("%w: negative amount at month %d", ErrMalformed, i)
		}
		if i == 0 {
			if s.Revenue[0].Amount > 0 {
				return fmt.Errorf("%w: revenue starts at %g, want 0", ErrMalformed, s.Revenue[0].Amount)
			}
			continue
		}
		if s.Spend[i].Amount < s.Spend[i-1].Amount {
			return fmt.Errorf("%w: spend decreases at month %d", ErrMalformed, i)
		}
		if s.Revenue[i].Amount < s.Revenue[i-1].Amount {
			return fmt.Errorf("%w: revenue decreases at month %d", ErrMalformed, i)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Max returns the largest amount across both curves.
func (s FinancialSeries) Max() float64 {
	peak := 0.0
	for i := range s.Spend {
		peak = math.Max(peak, s.Spend[i].Amount)
	}
	for i := range s.Revenue {
		peak = math.Max(peak, s.Revenue[i].Amount)
	}
	return peak
}

// Months is the number of samples per curve.
func (s FinancialSeries) Months() int {
	return len(s.Spend)
}

// Crossover returns the first month where cumulative revenue reaches
// cumulative spend. ok is false when the curves never meet in the horizon.
func (s FinancialSeries) Crossover() (month int, ok bool) {
	for i := range s.Spend {
		if i < len(s.Revenue) && s.Revenue[i].Amount > 0 && s.Revenue[i].Amount >= s.Spend[i].Amount {
			return s.Spend[i].Month, true
		}
	}
	return 0, false
}
