package repository

import (
	"context"

	"github.com/alexanderramin/debtpad/internal/domain"
)

// LedgerRepo stores the whole ledger as a single document. Save always
// overwrites the previous document in full.
type LedgerRepo interface {
	Load(ctx context.Context) (*domain.Ledger, error)
	Save(ctx context.Context, l *domain.Ledger) error
	LoadRaw(ctx context.Context) ([]byte, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
