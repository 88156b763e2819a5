package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/repository"
)

// ledgerStore is shared by the ledger-backed services. Reads go through the
// plain repository; every mutation loads, changes and saves the whole ledger
// inside one transaction so writers in other processes are never lost.
type ledgerStore struct {
	ledgers  repository.LedgerRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func newLedgerStore(ledgers repository.LedgerRepo, uow db.UnitOfWork, observers []UseCaseObserver) ledgerStore {
	return ledgerStore{ledgers: ledgers, uow: uow, observer: combineObservers(observers)}
}

func (s ledgerStore) load(ctx context.Context) (*domain.Ledger, error) {
	return s.ledgers.Load(ctx)
}

func (s ledgerStore) mutate(ctx context.Context, fn func(l *domain.Ledger) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteLedgerRepo(tx)
		l, err := repo.Load(ctx)
		if err != nil {
			return err
		}
		if err := fn(l); err != nil {
			return err
		}
		if err := repo.Save(ctx, l); err != nil {
			return fmt.Errorf("saving ledger: %w", err)
		}
		return nil
	})
}

func (s ledgerStore) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	observeSince(ctx, s.observer, name, startedAt, fields, err)
}
