package repository

import (
	"context"

	"github.com/alexanderramin/debtpad/internal/db"
)

// ThemeKey is where the theme preference is stored.
const ThemeKey = "theme"

type SQLiteSettingsRepo struct {
	kv kvStore
}

func NewSQLiteSettingsRepo(db db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{kv: kvStore{db: db}}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	return r.kv.get(ctx, key)
}

func (r *SQLiteSettingsRepo) Set(ctx context.Context, key, value string) error {
	return r.kv.put(ctx, key, value)
}
