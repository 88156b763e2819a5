package domain

import "strings"

type Platform struct {
	ID    string
	Name  string
	Icon  string
	Loans []*Loan
}

// Validate enforces the single platform input rule: a non-blank name.
func (p *Platform) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrPlatformNameRequired
	}
	return nil
}

// FindLoan returns the loan with the given ID, or nil.
func (p *Platform) FindLoan(id string) *Loan {
	for _, l := range p.Loans {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// RemoveLoan drops the loan with the given ID, preserving the order of the
// rest. It reports whether a loan was removed.
func (p *Platform) RemoveLoan(id string) bool {
	for i, l := range p.Loans {
		if l.ID == id {
			p.Loans = append(p.Loans[:i], p.Loans[i+1:]...)
			return true
		}
	}
	return false
}

// DisplayID returns a short prefix of the ID for listings.
func (p *Platform) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
