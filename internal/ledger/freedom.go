package ledger

import "github.com/shopspring/decimal"

type FreedomState string

const (
	FreedomFree        FreedomState = "free"
	FreedomEstimating  FreedomState = "estimating"
	FreedomNeedsIncome FreedomState = "needs_income"
)

// FreedomHorizon estimates how long the remaining burden takes to clear at
// the current monthly income.
type FreedomHorizon struct {
	State FreedomState
	// Months is nil unless State is FreedomEstimating.
	Months *decimal.Decimal
	// Progress is TotalPaid / (TotalPaid + Remaining) in [0, 1].
	Progress float64
	Quote    string
}

const (
	longRoadMonths = 60
	steadyMonths   = 12
)

// Freedom derives the horizon from a ledger-wide summary.
func Freedom(s Summary, income decimal.Decimal) FreedomHorizon {
	if !s.Remaining.IsPositive() {
		return FreedomHorizon{
			State:    FreedomFree,
			Progress: 1,
			Quote:    "Congratulations! Debt free and travelling light.",
		}
	}

	h := FreedomHorizon{Progress: progress(s.TotalPaid, s.Remaining)}
	if !income.IsPositive() {
		h.State = FreedomNeedsIncome
		h.Quote = "Enter your monthly income to estimate your freedom date."
		return h
	}

	months := s.Remaining.Div(income)
	h.State = FreedomEstimating
	h.Months = &months
	switch {
	case months.GreaterThan(decimal.NewFromInt(longRoadMonths)):
		h.Quote = "A long road ahead... keep earning!"
	case months.GreaterThan(decimal.NewFromInt(steadyMonths)):
		h.Quote = "Persistence wins. One payment at a time."
	default:
		h.Quote = "The light is just ahead!"
	}
	return h
}

func progress(paid, remaining decimal.Decimal) float64 {
	total := paid.Add(remaining)
	if !total.IsPositive() {
		return 0
	}
	return paid.Div(total).InexactFloat64()
}
