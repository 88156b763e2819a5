package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/repository"
	"github.com/google/uuid"
)

type loanService struct {
	store ledgerStore
}

func NewLoanService(ledgers repository.LedgerRepo, uow db.UnitOfWork, observers ...UseCaseObserver) LoanService {
	return &loanService{store: newLedgerStore(ledgers, uow, observers)}
}

func (s *loanService) Create(ctx context.Context, platformID string, in LoanInput) (loan *domain.Loan, err error) {
	startedAt := time.Now()
	fields := map[string]any{"platform_id": platformID, "amount": in.Amount.String()}
	defer func() { s.store.observe(ctx, "create-loan", startedAt, fields, err) }()

	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	l := in.loan()
	if err = l.Validate(); err != nil {
		return nil, err
	}
	l.ID = uuid.New().String()
	fields["loan_id"] = l.ID

	err = s.store.mutate(ctx, func(ledger *domain.Ledger) error {
		p := ledger.FindPlatform(platformID)
		if p == nil {
			return platformNotFound(platformID)
		}
		p.Loans = append(p.Loans, &l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Update overwrites every editable field of the loan. The loan keeps its ID
// and its position within the platform.
func (s *loanService) Update(ctx context.Context, loanID string, in LoanInput) (loan *domain.Loan, err error) {
	startedAt := time.Now()
	defer func() {
		s.store.observe(ctx, "update-loan", startedAt, map[string]any{"loan_id": loanID}, err)
	}()

	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	src := in.loan()
	if err = src.Validate(); err != nil {
		return nil, err
	}

	err = s.store.mutate(ctx, func(l *domain.Ledger) error {
		_, loan = l.FindLoan(loanID)
		if loan == nil {
			return loanNotFound(loanID)
		}
		loan.Apply(src)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *loanService) Delete(ctx context.Context, loanID string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.store.observe(ctx, "delete-loan", startedAt, map[string]any{"loan_id": loanID}, err)
	}()

	return s.store.mutate(ctx, func(l *domain.Ledger) error {
		p, _ := l.FindLoan(loanID)
		if p == nil || !p.RemoveLoan(loanID) {
			return loanNotFound(loanID)
		}
		return nil
	})
}

func (s *loanService) Get(ctx context.Context, loanID string) (*domain.Loan, error) {
	l, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	_, loan := l.FindLoan(loanID)
	if loan == nil {
		return nil, loanNotFound(loanID)
	}
	return loan, nil
}

func (s *loanService) ListByPlatform(ctx context.Context, platformID string) ([]*domain.Loan, error) {
	l, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	p := l.FindPlatform(platformID)
	if p == nil {
		return nil, platformNotFound(platformID)
	}
	return p.Loans, nil
}

// Resolve finds a loan by exact ID or unique ID prefix.
func (s *loanService) Resolve(ctx context.Context, input string) (*domain.Loan, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("loan identifier is empty: %w", domain.ErrNotFound)
	}
	l, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, loan := l.FindLoan(input); loan != nil {
		return loan, nil
	}

	var match *domain.Loan
	for _, loan := range l.Loans() {
		if strings.HasPrefix(loan.ID, input) {
			if match != nil {
				return nil, fmt.Errorf("loan %q: %w", input, ErrAmbiguousID)
			}
			match = loan
		}
	}
	if match == nil {
		return nil, loanNotFound(input)
	}
	return match, nil
}

func loanNotFound(id string) error {
	return fmt.Errorf("loan %s: %w", id, domain.ErrNotFound)
}
