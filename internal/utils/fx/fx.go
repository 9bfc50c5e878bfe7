// Package fx holds the pure multi-currency arithmetic shared by every
// service: rate lookup, base/display conversion, budget percentages and
// savings rates. All amounts are shopspring decimals.
package fx

import (
	"github.com/shopspring/decimal"
)

// BaseCurrency is the fixed reference currency all stored amounts are
// normalized into.
const BaseCurrency = "EUR"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Table maps currency codes to their rate into the base currency.
// The base currency always maps to 1.
type Table struct {
	rates map[string]decimal.Decimal
}

// NewTable builds a rate table from a code→rate map. The base currency is
// forced to 1 regardless of input.
func NewTable(rates map[string]decimal.Decimal) Table {
	copied := make(map[string]decimal.Decimal, len(rates)+1)
	for code, rate := range rates {
		copied[code] = rate
	}
	copied[BaseCurrency] = one
	return Table{rates: copied}
}

// Rate returns the rate-to-base for a currency code. Unknown codes fall
// back to 1 (treated as base-equivalent, preserving the permissive
// historical behavior); the second return value tells the caller whether
// the code was actually present so the fallback never goes unnoticed.
func (t Table) Rate(code string) (decimal.Decimal, bool) {
	if rate, ok := t.rates[code]; ok && !rate.IsZero() {
		return rate, true
	}
	return one, false
}

// Has reports whether the table holds a usable rate for the code.
func (t Table) Has(code string) bool {
	_, ok := t.rates[code]
	return ok
}

// Currencies lists the codes present in the table.
func (t Table) Currencies() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	return codes
}

// ToBase converts a native amount into the base currency using the table.
// The boolean mirrors Rate: false means the rate was assumed to be 1.
func ToBase(amount decimal.Decimal, code string, t Table) (decimal.Decimal, bool) {
	rate, known := t.Rate(code)
	return amount.Mul(rate), known
}

// DisplayContext is the per-session presentation choice: which currency
// aggregate figures are shown in, and the rate used to get there.
type DisplayContext struct {
	Currency       string
	ConversionRate decimal.Decimal
}

// NewDisplayContext resolves a display currency against the rate table.
// An empty code, an unknown code or a zero rate all degrade to the base
// currency at rate 1, so conversion can never divide by zero.
func NewDisplayContext(code string, t Table) DisplayContext {
	if code == "" {
		code = BaseCurrency
	}
	rate, known := t.Rate(code)
	if !known && code != BaseCurrency {
		return DisplayContext{Currency: BaseCurrency, ConversionRate: one}
	}
	return DisplayContext{Currency: code, ConversionRate: rate}
}

// ToDisplay converts a base-currency amount into the display currency.
func (d DisplayContext) ToDisplay(base decimal.Decimal) decimal.Decimal {
	rate := d.ConversionRate
	if rate.IsZero() {
		rate = one
	}
	return base.Div(rate)
}

// BudgetPercent computes spent/budget as a percentage. A zero budget with
// any spend reads as fully consumed (100); a zero budget with no spend is
// 0. The result is unclamped and can exceed 100.
func BudgetPercent(budget, spent decimal.Decimal) decimal.Decimal {
	if budget.IsPositive() {
		return spent.Div(budget).Mul(hundred)
	}
	if spent.IsPositive() {
		return hundred
	}
	return decimal.Zero
}

// ClampPercent bounds a raw percentage to [0, 100] for progress display.
func ClampPercent(percent decimal.Decimal) decimal.Decimal {
	if percent.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}

// SavingsRate computes net savings as a percentage of income, guarding
// the zero-income case.
func SavingsRate(income, netSavings decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return netSavings.Div(income).Mul(hundred)
}
