package fx_test

import (
	"testing"

	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testTable() fx.Table {
	return fx.NewTable(map[string]decimal.Decimal{
		"USD": dec("0.9"),
		"GBP": dec("1.15"),
	})
}

func TestToBase_BaseCurrencyIdentity(t *testing.T) {
	table := testTable()
	base, known := fx.ToBase(dec("123.45"), "EUR", table)
	assert.True(t, known)
	assert.True(t, base.Equal(dec("123.45")), "EUR must convert at rate 1, got %s", base)
}

func TestToBase_KnownCurrency(t *testing.T) {
	table := testTable()
	base, known := fx.ToBase(dec("100"), "USD", table)
	assert.True(t, known)
	assert.True(t, base.Equal(dec("90")), "expected 90, got %s", base)
}

func TestToBase_UnknownCurrencyFallsBackToOne(t *testing.T) {
	table := testTable()
	base, known := fx.ToBase(dec("42"), "XYZ", table)
	assert.False(t, known, "unknown code must be reported")
	assert.True(t, base.Equal(dec("42")))
}

func TestConversionRoundTrip(t *testing.T) {
	table := fx.NewTable(map[string]decimal.Decimal{"USD": dec("0.8")})
	base, known := fx.ToBase(dec("250"), "USD", table)
	require.True(t, known)

	ctx := fx.NewDisplayContext("USD", table)
	back := ctx.ToDisplay(base)
	assert.True(t, back.Equal(dec("250")), "round trip lost value: %s", back)
}

func TestNewDisplayContext_Defaults(t *testing.T) {
	table := testTable()

	ctx := fx.NewDisplayContext("", table)
	assert.Equal(t, fx.BaseCurrency, ctx.Currency)
	assert.True(t, ctx.ConversionRate.Equal(decimal.NewFromInt(1)))

	// Unknown display currency degrades to base rather than dividing by a
	// guessed rate.
	ctx = fx.NewDisplayContext("XYZ", table)
	assert.Equal(t, fx.BaseCurrency, ctx.Currency)
	assert.True(t, ctx.ConversionRate.Equal(decimal.NewFromInt(1)))
}

func TestToDisplay_ZeroRateGuard(t *testing.T) {
	ctx := fx.DisplayContext{Currency: "USD", ConversionRate: decimal.Zero}
	got := ctx.ToDisplay(dec("90"))
	assert.True(t, got.Equal(dec("90")), "zero rate must behave as 1, got %s", got)
}

func TestBudgetPercent_Boundaries(t *testing.T) {
	cases := []struct {
		name   string
		budget string
		spent  string
		want   string
	}{
		{"zero budget with spend", "0", "50", "100"},
		{"zero budget no spend", "0", "0", "0"},
		{"overspent is unclamped", "100", "150", "150"},
		{"half spent", "200", "100", "50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fx.BudgetPercent(dec(tc.budget), dec(tc.spent))
			assert.True(t, got.Equal(dec(tc.want)), "want %s, got %s", tc.want, got)
		})
	}
}

func TestClampPercent(t *testing.T) {
	assert.True(t, fx.ClampPercent(dec("150")).Equal(dec("100")))
	assert.True(t, fx.ClampPercent(dec("-5")).Equal(decimal.Zero))
	assert.True(t, fx.ClampPercent(dec("37.5")).Equal(dec("37.5")))
}

func TestSavingsRate_ZeroIncomeGuard(t *testing.T) {
	assert.True(t, fx.SavingsRate(decimal.Zero, dec("-100")).Equal(decimal.Zero))
	assert.True(t, fx.SavingsRate(dec("2000"), dec("500")).Equal(dec("25")))
}

func TestTable_BaseAlwaysOne(t *testing.T) {
	// Even a table seeded with a bogus EUR rate must keep the base at 1.
	table := fx.NewTable(map[string]decimal.Decimal{"EUR": dec("2")})
	rate, known := table.Rate("EUR")
	assert.True(t, known)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}
