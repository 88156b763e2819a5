package service

import (
	"context"
	"time"

	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/repository"
	"github.com/alexanderramin/debtpad/internal/snapshot"
)

type snapshotService struct {
	store ledgerStore
}

func NewSnapshotService(ledgers repository.LedgerRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SnapshotService {
	return &snapshotService{store: newLedgerStore(ledgers, uow, observers)}
}

// Export returns the stored blob exactly as persisted.
func (s *snapshotService) Export(ctx context.Context) ([]byte, error) {
	return s.store.ledgers.LoadRaw(ctx)
}

// Import decodes data leniently and replaces the whole ledger with it.
// Malformed documents leave the stored ledger untouched.
func (s *snapshotService) Import(ctx context.Context, data []byte) (imported *domain.Ledger, err error) {
	startedAt := time.Now()
	fields := map[string]any{"bytes": len(data)}
	defer func() { s.store.observe(ctx, "import-ledger", startedAt, fields, err) }()

	imported, err = snapshot.Decode(data)
	if err != nil {
		return nil, err
	}
	fields["platforms"] = len(imported.Platforms)

	err = s.store.mutate(ctx, func(l *domain.Ledger) error {
		*l = *imported
		return nil
	})
	if err != nil {
		return nil, err
	}
	return imported, nil
}
