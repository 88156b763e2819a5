package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func put(ctx context.Context, tx db.DBTX, key, val string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, '2025-01-01T00:00:00Z')`, key, val)
	return err
}

func lookup(t *testing.T, uow *db.SQLiteUnitOfWork, key string) (string, bool) {
	t.Helper()
	var val string
	var found bool
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&val); err == nil {
			found = true
		}
		return nil
	}))
	return val, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return put(ctx, tx, "k1", "v1")
	})
	require.NoError(t, err)

	val, found := lookup(t, uow, "k1")
	assert.True(t, found)
	assert.Equal(t, "v1", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)
	sentinel := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		require.NoError(t, put(ctx, tx, "k2", "v2"))
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, found := lookup(t, uow, "k2")
	assert.False(t, found)
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = put(ctx, tx, "k3", "v3")
			panic("boom")
		})
	})

	_, found := lookup(t, uow, "k3")
	assert.False(t, found)
}
