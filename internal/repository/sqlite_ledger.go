package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/snapshot"
)

// SQLiteLedgerRepo implements LedgerRepo on the kv_store table under
// snapshot.StorageKey.
type SQLiteLedgerRepo struct {
	kv kvStore
}

func NewSQLiteLedgerRepo(db db.DBTX) *SQLiteLedgerRepo {
	return &SQLiteLedgerRepo{kv: kvStore{db: db}}
}

// Load returns the stored ledger, or the empty default when nothing has
// been saved yet.
func (r *SQLiteLedgerRepo) Load(ctx context.Context) (*domain.Ledger, error) {
	raw, ok, err := r.kv.get(ctx, snapshot.StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.NewLedger(), nil
	}
	l, err := snapshot.Decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return l, nil
}

func (r *SQLiteLedgerRepo) LoadRaw(ctx context.Context) ([]byte, error) {
	raw, ok, err := r.kv.get(ctx, snapshot.StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return snapshot.Encode(domain.NewLedger())
	}
	return []byte(raw), nil
}

func (r *SQLiteLedgerRepo) Save(ctx context.Context, l *domain.Ledger) error {
	data, err := snapshot.Encode(l)
	if err != nil {
		return err
	}
	return r.kv.put(ctx, snapshot.StorageKey, string(data))
}
