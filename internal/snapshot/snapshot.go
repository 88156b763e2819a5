// Package snapshot encodes and decodes the ledger blob. The format carries
// no schema version; decoding coerces missing or non-numeric numbers to zero
// the way the stored documents have always been read.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// StorageKey is the key the ledger blob is stored under.
const StorageKey = "debtTrackerData"

var ErrMalformedSnapshot = errors.New("malformed ledger snapshot")

type wireLedger struct {
	Income    json.Number    `json:"income"`
	Platforms []wirePlatform `json:"platforms"`
}

type wirePlatform struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon"`
	Loans []wireLoan `json:"loans"`
}

type wireLoan struct {
	ID         string      `json:"id"`
	Amount     json.Number `json:"amount"`
	Rate       json.Number `json:"rate"`
	Date       string      `json:"date"`
	Term       int         `json:"term"`
	Penalty    json.Number `json:"penalty"`
	PaidAmount json.Number `json:"paidAmount"`
}

// Encode serializes the whole ledger.
func Encode(l *domain.Ledger) ([]byte, error) {
	w := wireLedger{
		Income:    num(l.Income),
		Platforms: make([]wirePlatform, 0, len(l.Platforms)),
	}
	for _, p := range l.Platforms {
		wp := wirePlatform{
			ID:    p.ID,
			Name:  p.Name,
			Icon:  p.Icon,
			Loans: make([]wireLoan, 0, len(p.Loans)),
		}
		for _, loan := range p.Loans {
			wp.Loans = append(wp.Loans, wireLoan{
				ID:         loan.ID,
				Amount:     num(loan.Amount),
				Rate:       num(loan.Rate),
				Date:       domain.FormatDay(loan.Date),
				Term:       loan.Term,
				Penalty:    num(loan.Penalty),
				PaidAmount: num(loan.PaidAmount),
			})
		}
		w.Platforms = append(w.Platforms, wp)
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return data, nil
}

func num(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Decode parses a stored blob. An empty blob yields the empty ledger.
// Documents whose shape is wrong (not an object, platforms or loans not
// arrays, unreadable loan dates) fail with ErrMalformedSnapshot. A loan with
// a missing or blank date decodes as undated.
func Decode(data []byte) (*domain.Ledger, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.NewLedger(), nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedSnapshot)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformedSnapshot)
	}

	l := domain.NewLedger()
	l.Income = number(root.Get("income"))

	platforms, err := list(root.Get("platforms"), "platforms")
	if err != nil {
		return nil, err
	}
	for i, rp := range platforms {
		if !rp.IsObject() {
			return nil, fmt.Errorf("%w: platforms[%d] is not an object", ErrMalformedSnapshot, i)
		}
		p := &domain.Platform{
			ID:    rp.Get("id").String(),
			Name:  rp.Get("name").String(),
			Icon:  rp.Get("icon").String(),
			Loans: []*domain.Loan{},
		}

		loans, err := list(rp.Get("loans"), fmt.Sprintf("platforms[%d].loans", i))
		if err != nil {
			return nil, err
		}
		for j, rl := range loans {
			loan, err := decodeLoan(rl)
			if err != nil {
				return nil, fmt.Errorf("platforms[%d].loans[%d]: %w", i, j, err)
			}
			p.Loans = append(p.Loans, loan)
		}
		l.Platforms = append(l.Platforms, p)
	}
	return l, nil
}

func decodeLoan(r gjson.Result) (*domain.Loan, error) {
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: loan is not an object", ErrMalformedSnapshot)
	}
	date, err := parseDate(r.Get("date").String())
	if err != nil {
		return nil, err
	}
	return &domain.Loan{
		ID:         r.Get("id").String(),
		Amount:     number(r.Get("amount")),
		Rate:       number(r.Get("rate")),
		Date:       date,
		Term:       int(number(r.Get("term")).IntPart()),
		Penalty:    number(r.Get("penalty")),
		PaidAmount: number(r.Get("paidAmount")),
	}, nil
}

func list(r gjson.Result, path string) ([]gjson.Result, error) {
	if !r.Exists() || r.Type == gjson.Null {
		return nil, nil
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: %s is not an array", ErrMalformedSnapshot, path)
	}
	return r.Array(), nil
}

// number coerces a JSON value to a decimal; anything that is not a finite
// number or numeric string becomes zero.
func number(r gjson.Result) decimal.Decimal {
	switch r.Type {
	case gjson.Number:
		if d, err := decimal.NewFromString(r.Raw); err == nil {
			return d
		}
		return decimal.NewFromFloat(r.Num)
	case gjson.String:
		s := strings.TrimSpace(r.Str)
		if s == "" {
			return decimal.Zero
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
		return decimal.Zero
	case gjson.True:
		return decimal.NewFromInt(1)
	default:
		return decimal.Zero
	}
}

func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	if t, err := domain.ParseDay(s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return domain.Today(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid loan date %q", ErrMalformedSnapshot, s)
}
