package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_SetIncome(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	svc := NewLedgerService(env.ledgers, env.uow)

	require.NoError(t, svc.SetIncome(ctx, dec("4200.50")))
	l, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, l.Income.Equal(dec("4200.50")))

	require.NoError(t, svc.SetIncome(ctx, dec("-5")))
	l, err = svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, l.Income.IsZero(), "negative income clamps to zero")
}

func TestLedgerService_Dashboard(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	svc := NewLedgerService(env.ledgers, env.uow)
	platforms := NewPlatformService(env.ledgers, env.uow)
	loans := NewLoanService(env.ledgers, env.uow)

	now := time.Now()
	p, err := platforms.Create(ctx, "Bank", "")
	require.NoError(t, err)
	_, err = loans.Create(ctx, p.ID, LoanInput{Amount: dec("1200"), Term: 12, Date: now})
	require.NoError(t, err)
	require.NoError(t, svc.SetIncome(ctx, dec("100")))

	d, err := svc.Dashboard(ctx, now)
	require.NoError(t, err)
	require.Len(t, d.Cards, 1)
	assert.Equal(t, ledger.FreedomEstimating, d.Freedom.State)
	require.NotNil(t, d.Freedom.Months)
	assert.True(t, d.Freedom.Months.Equal(dec("12")))
}

func TestLedgerService_EmitsUseCaseEvents(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewLedgerService(env.ledgers, env.uow, obs)

	require.NoError(t, svc.SetIncome(ctx, dec("1")))
	assert.Equal(t, []string{"set-income"}, obs.names())
	assert.True(t, obs.events[0].Success)
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogUseCaseObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(bufferLogger(&buf))
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "create-platform",
		Success: true,
		Fields:  map[string]any{"name": "Bank", "icon": "🏦"},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=create-platform")
	assert.Contains(t, out, "success=true")
	assert.Less(t, strings.Index(out, "icon="), strings.Index(out, "name=Bank"), "fields are sorted")
}

func TestLogUseCaseObserver_LevelFollowsError(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(bufferLogger(&buf))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "create-loan", Err: domain.ErrLoanAmountRequired})
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "create-loan", Err: errors.New("disk full")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `error="disk full"`)
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestCombineObservers_FansOut(t *testing.T) {
	env := setupEnv(t)
	first, second := &recordingObserver{}, &recordingObserver{}
	svc := NewLedgerService(env.ledgers, env.uow, first, nil, second)
	require.NoError(t, svc.SetIncome(context.Background(), dec("10")))

	assert.Equal(t, []string{"set-income"}, first.names())
	assert.Equal(t, []string{"set-income"}, second.names())
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers([]UseCaseObserver{nil}))
}
