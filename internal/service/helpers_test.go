package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/repository"
	"github.com/alexanderramin/debtpad/internal/testutil"
)

type testEnv struct {
	db      *sql.DB
	uow     db.UnitOfWork
	ledgers repository.LedgerRepo
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testEnv{
		db:      database,
		uow:     testutil.NewTestUoW(database),
		ledgers: repository.NewSQLiteLedgerRepo(database),
	}
}

// recordingObserver collects use-case events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Name)
	}
	return out
}
