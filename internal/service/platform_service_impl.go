package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/repository"
	"github.com/google/uuid"
)

// ErrAmbiguousID is returned by Resolve when an ID prefix matches more than
// one record.
var ErrAmbiguousID = errors.New("ambiguous id prefix")

type platformService struct {
	store ledgerStore
}

func NewPlatformService(ledgers repository.LedgerRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PlatformService {
	return &platformService{store: newLedgerStore(ledgers, uow, observers)}
}

func (s *platformService) Create(ctx context.Context, name, icon string) (p *domain.Platform, err error) {
	startedAt := time.Now()
	fields := map[string]any{"name": name}
	defer func() { s.store.observe(ctx, "create-platform", startedAt, fields, err) }()

	p = &domain.Platform{
		ID:    uuid.New().String(),
		Name:  strings.TrimSpace(name),
		Icon:  iconOrDefault(icon),
		Loans: []*domain.Loan{},
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	fields["platform_id"] = p.ID

	err = s.store.mutate(ctx, func(l *domain.Ledger) error {
		l.Platforms = append(l.Platforms, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update renames a platform and replaces its icon. An empty icon keeps the
// current one.
func (s *platformService) Update(ctx context.Context, id, name, icon string) (p *domain.Platform, err error) {
	startedAt := time.Now()
	defer func() {
		s.store.observe(ctx, "update-platform", startedAt, map[string]any{"platform_id": id}, err)
	}()

	probe := domain.Platform{Name: name}
	if err = probe.Validate(); err != nil {
		return nil, err
	}

	err = s.store.mutate(ctx, func(l *domain.Ledger) error {
		p = l.FindPlatform(id)
		if p == nil {
			return platformNotFound(id)
		}
		p.Name = strings.TrimSpace(name)
		p.Icon = domain.CoalesceStr(icon, p.Icon, domain.DefaultPlatformIcon)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a platform and every loan it owns.
func (s *platformService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.store.observe(ctx, "delete-platform", startedAt, map[string]any{"platform_id": id}, err)
	}()

	return s.store.mutate(ctx, func(l *domain.Ledger) error {
		if !l.RemovePlatform(id) {
			return platformNotFound(id)
		}
		return nil
	})
}

func (s *platformService) Get(ctx context.Context, id string) (*domain.Platform, error) {
	l, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	p := l.FindPlatform(id)
	if p == nil {
		return nil, platformNotFound(id)
	}
	return p, nil
}

func (s *platformService) List(ctx context.Context) ([]*domain.Platform, error) {
	l, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	return l.Platforms, nil
}

// Resolve finds a platform by exact ID, then by case-insensitive name, then
// by unique ID prefix.
func (s *platformService) Resolve(ctx context.Context, input string) (*domain.Platform, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("platform identifier is empty: %w", domain.ErrNotFound)
	}
	l, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	if p := l.FindPlatform(input); p != nil {
		return p, nil
	}
	for _, p := range l.Platforms {
		if strings.EqualFold(p.Name, input) {
			return p, nil
		}
	}

	var match *domain.Platform
	for _, p := range l.Platforms {
		if strings.HasPrefix(p.ID, input) {
			if match != nil {
				return nil, fmt.Errorf("platform %q: %w", input, ErrAmbiguousID)
			}
			match = p
		}
	}
	if match == nil {
		return nil, platformNotFound(input)
	}
	return match, nil
}

func (s *platformService) LoanList(ctx context.Context, id string, now time.Time) (app.LoanList, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return app.LoanList{}, err
	}
	return app.BuildLoanList(p, now), nil
}

func iconOrDefault(icon string) string {
	return domain.CoalesceStr(icon, domain.DefaultPlatformIcon)
}

func platformNotFound(id string) error {
	return fmt.Errorf("platform %s: %w", id, domain.ErrNotFound)
}
