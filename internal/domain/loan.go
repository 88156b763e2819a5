package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format loans are stored and entered in.
const DateLayout = "2006-01-02"

type Loan struct {
	ID         string
	Amount     decimal.Decimal
	Rate       decimal.Decimal // annual, percent
	Date       time.Time
	Term       int // months
	Penalty    decimal.Decimal
	PaidAmount decimal.Decimal
}

// Validate enforces the single loan input rule: a positive principal.
func (l *Loan) Validate() error {
	if !l.Amount.IsPositive() {
		return ErrLoanAmountRequired
	}
	return nil
}

// IsPaid reports whether the recorded payments cover the principal.
func (l *Loan) IsPaid() bool {
	return l.PaidAmount.GreaterThanOrEqual(l.Amount)
}

// IsDated reports whether the loan has an origination date. Imported
// documents may carry loans without one.
func (l *Loan) IsDated() bool { return !l.Date.IsZero() }

// DueDate is the origination date advanced by the term in calendar months,
// or the zero time for an undated loan.
func (l *Loan) DueDate() time.Time {
	if !l.IsDated() {
		return time.Time{}
	}
	return l.Date.AddDate(0, l.Term, 0)
}

// Apply copies the editable fields of src onto l, keeping l's ID.
func (l *Loan) Apply(src Loan) {
	l.Amount = src.Amount
	l.Rate = src.Rate
	l.Date = src.Date
	l.Term = src.Term
	l.Penalty = src.Penalty
	l.PaidAmount = src.PaidAmount
}

// ParseDay parses a YYYY-MM-DD string as a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// FormatDay formats t as YYYY-MM-DD; the zero time formats as "".
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Today returns the current UTC calendar day.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
