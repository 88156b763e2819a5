package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLedger() *Ledger {
	return &Ledger{
		Income: decimal.NewFromInt(5000),
		Platforms: []*Platform{
			{ID: "p1", Name: "Bank", Loans: []*Loan{{ID: "l1"}, {ID: "l2"}}},
			{ID: "p2", Name: "Card", Loans: []*Loan{{ID: "l3"}}},
		},
	}
}

func TestLedger_FindLoanAcrossPlatforms(t *testing.T) {
	l := sampleLedger()

	p, loan := l.FindLoan("l3")
	require.NotNil(t, loan)
	assert.Equal(t, "p2", p.ID)

	p, loan = l.FindLoan("missing")
	assert.Nil(t, p)
	assert.Nil(t, loan)
}

func TestLedger_RemovePlatformDropsLoans(t *testing.T) {
	l := sampleLedger()

	assert.True(t, l.RemovePlatform("p1"))
	assert.False(t, l.RemovePlatform("p1"))
	require.Len(t, l.Platforms, 1)
	assert.Len(t, l.Loans(), 1)
}

func TestPlatform_RemoveLoanKeepsOrder(t *testing.T) {
	p := &Platform{Loans: []*Loan{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	require.True(t, p.RemoveLoan("b"))
	assert.Equal(t, "a", p.Loans[0].ID)
	assert.Equal(t, "c", p.Loans[1].ID)
}

func TestPlatform_ValidateName(t *testing.T) {
	assert.ErrorIs(t, (&Platform{Name: "   "}).Validate(), ErrPlatformNameRequired)
	assert.NoError(t, (&Platform{Name: "Bank"}).Validate())
}

func TestLoan_ValidateAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount decimal.Decimal
		ok     bool
	}{
		{"zero", decimal.Zero, false},
		{"negative", decimal.NewFromInt(-5), false},
		{"positive", decimal.NewFromFloat(0.01), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := (&Loan{Amount: tc.amount}).Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrLoanAmountRequired)
				assert.True(t, IsValidation(err))
			}
		})
	}
}

func TestLoan_DueDateNormalisesMonthOverflow(t *testing.T) {
	l := &Loan{Date: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), Term: 1}
	assert.Equal(t, "2025-03-03", l.DueDate().Format(DateLayout))
}

func TestLoan_IsPaid(t *testing.T) {
	l := &Loan{Amount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(100)}
	assert.True(t, l.IsPaid())
	l.PaidAmount = decimal.NewFromInt(99)
	assert.False(t, l.IsPaid())
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeDark, ParseTheme(""))
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.True(t, ThemeDark.IsDark())
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "🏦", CoalesceStr("  ", "", "🏦"))
	assert.Equal(t, "💳", CoalesceStr(" 💳 ", "🏦"))
	assert.Empty(t, CoalesceStr())
}

func TestFormatDay_ZeroIsBlank(t *testing.T) {
	assert.Equal(t, "", FormatDay(time.Time{}))
	assert.Equal(t, "2025-03-09", FormatDay(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)))

	undated := &Loan{Term: 6}
	assert.False(t, undated.IsDated())
	assert.True(t, undated.DueDate().IsZero())
}
