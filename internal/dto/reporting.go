package dto

import (
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodSummaryParams defines query parameters for the period summary.
type PeriodSummaryParams struct {
	From     string `form:"from" binding:"required,datetime=2006-01-02"`
	To       string `form:"to" binding:"required,datetime=2006-01-02"`
	Currency string `form:"currency" binding:"omitempty,currency"`
}

// PeriodSummaryResponse is the period aggregation in display currency.
type PeriodSummaryResponse struct {
	From            string          `json:"from"`
	To              string          `json:"to"`
	DisplayCurrency string          `json:"displayCurrency"`
	Income          decimal.Decimal `json:"income"`
	Expenses        decimal.Decimal `json:"expenses"`
	NetSavings      decimal.Decimal `json:"netSavings"`
	SavingsRate     decimal.Decimal `json:"savingsRate"`
}

// NetWorthAccountResponse is one account's net-worth contribution.
type NetWorthAccountResponse struct {
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	Worth        decimal.Decimal `json:"worth"`
}

// NetWorthResponse is the net worth report in display currency.
type NetWorthResponse struct {
	DisplayCurrency  string                    `json:"displayCurrency"`
	Accounts         []NetWorthAccountResponse `json:"accounts"`
	AccountsTotal    decimal.Decimal           `json:"accountsTotal"`
	InvestmentsTotal decimal.Decimal           `json:"investmentsTotal"`
	NetWorth         decimal.Decimal           `json:"netWorth"`
}

// ToNetWorthResponse converts a domain net worth report to its DTO.
func ToNetWorthResponse(r *domain.NetWorthReport, displayCurrency string) NetWorthResponse {
	resp := NetWorthResponse{
		DisplayCurrency:  displayCurrency,
		Accounts:         make([]NetWorthAccountResponse, len(r.Accounts)),
		AccountsTotal:    r.AccountsTotal,
		InvestmentsTotal: r.InvestmentsTotal,
		NetWorth:         r.NetWorth,
	}
	for i, a := range r.Accounts {
		resp.Accounts[i] = NetWorthAccountResponse{
			AccountID:    a.AccountID,
			Name:         a.Name,
			CurrencyCode: a.CurrencyCode,
			Balance:      a.Balance,
			Worth:        a.Worth,
		}
	}
	return resp
}

// MonthlyReportResponse is the one-month dashboard in display currency.
type MonthlyReportResponse struct {
	Month           string                 `json:"month"`
	DisplayCurrency string                 `json:"displayCurrency"`
	Income          decimal.Decimal        `json:"income"`
	Expenses        decimal.Decimal        `json:"expenses"`
	NetSavings      decimal.Decimal        `json:"netSavings"`
	SavingsRate     decimal.Decimal        `json:"savingsRate"`
	Budgets         []BudgetStatusResponse `json:"budgets"`
	TopExpenses     []ExpenseResponse      `json:"topExpenses"`
}

// ToMonthlyReportResponse converts a domain monthly report to its DTO.
func ToMonthlyReportResponse(r *domain.MonthlyReport, displayCurrency string) MonthlyReportResponse {
	resp := MonthlyReportResponse{
		Month:           r.Month,
		DisplayCurrency: displayCurrency,
		Income:          r.Summary.Income,
		Expenses:        r.Summary.Expenses,
		NetSavings:      r.Summary.NetSavings,
		SavingsRate:     r.Summary.SavingsRate,
		Budgets:         make([]BudgetStatusResponse, len(r.Budgets)),
		TopExpenses:     make([]ExpenseResponse, len(r.TopExpenses)),
	}
	for i, s := range r.Budgets {
		resp.Budgets[i] = BudgetStatusResponse{
			CategoryID:     s.CategoryID,
			CategoryName:   s.CategoryName,
			Budget:         s.Budget,
			Spent:          s.Spent,
			Remaining:      s.Remaining,
			Percent:        s.Percent,
			ClampedPercent: s.ClampedPercent,
		}
	}
	for i := range r.TopExpenses {
		resp.TopExpenses[i] = ToExpenseResponse(&r.TopExpenses[i])
	}
	return resp
}
