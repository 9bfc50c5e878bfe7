package domain

import (
	"github.com/shopspring/decimal"
)

// BudgetStatus compares actual spend against a category's budget for one
// month. Budget, Spent and Remaining are in the display currency. Percent
// is the raw value and may exceed 100; ClampedPercent is bounded to
// [0, 100] for progress-bar rendering.
type BudgetStatus struct {
	CategoryID     string          `json:"categoryID"`
	CategoryName   string          `json:"categoryName"`
	Month          string          `json:"month"`
	Budget         decimal.Decimal `json:"budget"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	Percent        decimal.Decimal `json:"percent"`
	ClampedPercent decimal.Decimal `json:"clampedPercent"`
}

// PeriodSummary aggregates income and expenses over a date range,
// expressed in the display currency. SavingsRate is a percentage and is 0
// when the period has no income.
type PeriodSummary struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetSavings  decimal.Decimal `json:"netSavings"`
	SavingsRate decimal.Decimal `json:"savingsRate"`
}

// AccountWorth is one account's contribution to net worth, converted from
// its native balance into the display currency.
type AccountWorth struct {
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"` // native currency
	Worth        decimal.Decimal `json:"worth"`   // display currency
}

// NetWorthReport sums account balances at current rates plus investments
// at recorded cost basis.
type NetWorthReport struct {
	Accounts         []AccountWorth  `json:"accounts"`
	AccountsTotal    decimal.Decimal `json:"accountsTotal"`
	InvestmentsTotal decimal.Decimal `json:"investmentsTotal"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// MonthlyReport is the one-month dashboard: period summary, per-category
// budget variance and the largest expenses, all in the display currency.
type MonthlyReport struct {
	Month       string         `json:"month"`
	Summary     PeriodSummary  `json:"summary"`
	Budgets     []BudgetStatus `json:"budgets"`
	TopExpenses []Expense      `json:"topExpenses"`
}
