package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/shopspring/decimal"
)

// LoanInput is the editable part of a loan.
type LoanInput struct {
	Amount     decimal.Decimal
	Rate       decimal.Decimal
	Date       time.Time
	Term       int
	Penalty    decimal.Decimal
	PaidAmount decimal.Decimal
}

// LoanForm holds loan fields as typed by a user. Only the amount is checked;
// every other field that is blank or not a number becomes zero, and a blank
// or unreadable date becomes today.
type LoanForm struct {
	Amount     string
	Rate       string
	Date       string
	Term       string
	Penalty    string
	PaidAmount string
}

// Input converts the form, using now for a missing date.
func (f LoanForm) Input(now time.Time) LoanInput {
	date, err := domain.ParseDay(f.Date)
	if err != nil {
		date = domain.Today(now)
	}
	return LoanInput{
		Amount:     CoerceDecimal(f.Amount),
		Rate:       CoerceDecimal(f.Rate),
		Date:       date,
		Term:       CoerceInt(f.Term),
		Penalty:    CoerceDecimal(f.Penalty),
		PaidAmount: CoerceDecimal(f.PaidAmount),
	}
}

// FormFromLoan pre-fills a form for editing.
func FormFromLoan(l *domain.Loan) LoanForm {
	return LoanForm{
		Amount:     l.Amount.String(),
		Rate:       l.Rate.String(),
		Date:       domain.FormatDay(l.Date),
		Term:       strconv.Itoa(l.Term),
		Penalty:    l.Penalty.String(),
		PaidAmount: l.PaidAmount.String(),
	}
}

// CoerceDecimal parses s, returning zero for blank or non-numeric text.
func CoerceDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CoerceInt parses s as a whole number, truncating any fraction, and returns
// zero for blank or non-numeric text.
func CoerceInt(s string) int {
	return int(CoerceDecimal(s).IntPart())
}

func (in LoanInput) loan() domain.Loan {
	return domain.Loan{
		Amount:     in.Amount,
		Rate:       in.Rate,
		Date:       domain.Today(in.Date),
		Term:       in.Term,
		Penalty:    in.Penalty,
		PaidAmount: in.PaidAmount,
	}
}
