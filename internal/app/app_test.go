package app

import (
	"testing"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/ledger"
	"github.com/alexanderramin/debtpad/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestBuildDashboard_EmptyLedger(t *testing.T) {
	d := BuildDashboard(domain.NewLedger(), refNow)

	assert.True(t, d.IsEmpty())
	assert.Equal(t, ledger.FreedomFree, d.Freedom.State)
	assert.Equal(t, 1.0, d.Freedom.Progress)
	assert.True(t, d.Stats.Remaining.IsZero())
}

func TestBuildDashboard_CardsCarryActions(t *testing.T) {
	overdue := testutil.NewTestLoan(500, testutil.WithDate(refNow.AddDate(0, -3, 0)), testutil.WithTerm(1), testutil.WithPenalty(20))
	paid := testutil.NewTestLoan(300, testutil.WithPaid(300))
	p := testutil.NewTestPlatform("Card Co", testutil.WithIcon("💳"), testutil.WithLoans(overdue, paid))
	l := testutil.NewTestLedger(1000, p)

	d := BuildDashboard(l, refNow)

	require.Len(t, d.Cards, 1)
	card := d.Cards[0]
	assert.Equal(t, "💳", card.Icon)
	assert.Equal(t, 2, card.LoanCount)
	assert.True(t, card.Overdue)
	assert.True(t, card.TotalDebt.Equal(decimal.NewFromInt(800)))
	assert.True(t, card.Paid.Equal(decimal.NewFromInt(300)))
	assert.True(t, card.Fines.Equal(decimal.NewFromInt(20)))

	open, ok := Find(card.Actions, ActionOpenPlatform)
	require.True(t, ok)
	assert.Equal(t, p.ID, open.PlatformID)
	assert.False(t, open.Confirm)

	del, ok := Find(card.Actions, ActionDeletePlatform)
	require.True(t, ok)
	assert.True(t, del.Confirm, "deleting a platform must be confirmed")

	assert.Equal(t, 1, d.Stats.OverdueCount)
	assert.Equal(t, ledger.FreedomEstimating, d.Freedom.State)
	require.NotNil(t, d.Freedom.Months)
}

func TestBuildDashboard_DoesNotMutateLedger(t *testing.T) {
	loan := testutil.NewTestLoan(1000, testutil.WithRate(12), testutil.WithDate(refNow.AddDate(0, 0, -100)))
	l := testutil.NewTestLedger(0, testutil.NewTestPlatform("A", testutil.WithLoans(loan)))
	before := *loan

	BuildDashboard(l, refNow)
	BuildDashboard(l, refNow.AddDate(1, 0, 0))

	assert.Equal(t, before, *loan)
}

func TestBuildDashboard_DefaultIcon(t *testing.T) {
	p := testutil.NewTestPlatform("Bare", testutil.WithIcon(""))
	d := BuildDashboard(testutil.NewTestLedger(0, p), refNow)
	require.Len(t, d.Cards, 1)
	assert.Equal(t, domain.DefaultPlatformIcon, d.Cards[0].Icon)
}

func TestBuildLoanList_Rows(t *testing.T) {
	date := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	active := testutil.NewTestLoan(1000, testutil.WithRate(12), testutil.WithDate(refNow.AddDate(0, 0, -100)), testutil.WithTerm(4))
	late := testutil.NewTestLoan(200, testutil.WithDate(date), testutil.WithTerm(1))
	p := testutil.NewTestPlatform("Bank", testutil.WithLoans(active, late))

	list := BuildLoanList(p, refNow)

	require.Len(t, list.Rows, 2)
	assert.Equal(t, active.ID, list.Rows[0].LoanID, "insertion order is display order")

	assert.Equal(t, domain.LoanActive, list.Rows[0].Status)
	assert.Equal(t, "Repaying", list.Rows[0].StatusLabel)
	assert.Zero(t, list.Rows[0].DaysOverdue)

	row := list.Rows[1]
	assert.Equal(t, domain.LoanOverdue, row.Status)
	assert.Equal(t, "2025-03-03", row.DueDate, "Jan 31 plus one month normalises into March")
	assert.Positive(t, row.DaysOverdue)

	edit, ok := Find(row.Actions, ActionEditLoan)
	require.True(t, ok)
	assert.Equal(t, late.ID, edit.LoanID)
	assert.Equal(t, p.ID, edit.PlatformID)

	del, ok := Find(row.Actions, ActionDeleteLoan)
	require.True(t, ok)
	assert.True(t, del.Confirm)
}

func TestFind_Missing(t *testing.T) {
	_, ok := Find(nil, ActionEditLoan)
	assert.False(t, ok)
}
