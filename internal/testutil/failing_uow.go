package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/debtpad/internal/db"
)

// FailingWriteUoW is a UnitOfWork whose transactions read normally but
// reject every write with Err. Services that mutate the ledger can be checked
// for leaving the stored document untouched when the save fails.
type FailingWriteUoW struct {
	DB  *sql.DB
	Err error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if fnErr := fn(ctx, readOnlyTx{DBTX: tx, err: u.Err}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type readOnlyTx struct {
	db.DBTX
	err error
}

func (r readOnlyTx) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, r.err
}
