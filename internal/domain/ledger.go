package domain

import "github.com/shopspring/decimal"

// Ledger is the root aggregate. It is loaded and saved as a whole.
type Ledger struct {
	Income    decimal.Decimal
	Platforms []*Platform
}

// NewLedger returns the empty default ledger.
func NewLedger() *Ledger {
	return &Ledger{Income: decimal.Zero, Platforms: []*Platform{}}
}

// FindPlatform returns the platform with the given ID, or nil.
func (l *Ledger) FindPlatform(id string) *Platform {
	for _, p := range l.Platforms {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindLoan locates a loan across all platforms.
func (l *Ledger) FindLoan(id string) (*Platform, *Loan) {
	for _, p := range l.Platforms {
		if loan := p.FindLoan(id); loan != nil {
			return p, loan
		}
	}
	return nil, nil
}

// RemovePlatform drops a platform together with all of its loans.
func (l *Ledger) RemovePlatform(id string) bool {
	for i, p := range l.Platforms {
		if p.ID == id {
			l.Platforms = append(l.Platforms[:i], l.Platforms[i+1:]...)
			return true
		}
	}
	return false
}

// Loans returns every loan in display order.
func (l *Ledger) Loans() []*Loan {
	var out []*Loan
	for _, p := range l.Platforms {
		out = append(out, p.Loans...)
	}
	return out
}
