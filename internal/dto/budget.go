package dto

import (
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertBudgetRequest sets or replaces the budget for a category and
// month. Amount is denominated in the base currency.
type UpsertBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Month      string          `json:"month" binding:"required,datetime=2006-01"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse defines the data returned for a stored budget.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Month:      b.Month,
		Amount:     b.Amount,
	}
}

// BudgetStatusResponse is one category's budget-versus-actual row.
type BudgetStatusResponse struct {
	CategoryID     string          `json:"categoryID"`
	CategoryName   string          `json:"categoryName"`
	Budget         decimal.Decimal `json:"budget"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	Percent        decimal.Decimal `json:"percent"`
	ClampedPercent decimal.Decimal `json:"clampedPercent"`
}

// BudgetStatusListResponse wraps the statuses for a month with totals.
type BudgetStatusListResponse struct {
	Month           string                 `json:"month"`
	DisplayCurrency string                 `json:"displayCurrency"`
	Statuses        []BudgetStatusResponse `json:"statuses"`
	TotalBudget     decimal.Decimal        `json:"totalBudget"`
	TotalSpent      decimal.Decimal        `json:"totalSpent"`
}

// ToBudgetStatusListResponse converts budget statuses to the wrapped
// response, accumulating totals.
func ToBudgetStatusListResponse(month, displayCurrency string, statuses []domain.BudgetStatus) BudgetStatusListResponse {
	resp := BudgetStatusListResponse{
		Month:           month,
		DisplayCurrency: displayCurrency,
		Statuses:        make([]BudgetStatusResponse, len(statuses)),
		TotalBudget:     decimal.Zero,
		TotalSpent:      decimal.Zero,
	}
	for i, s := range statuses {
		resp.Statuses[i] = BudgetStatusResponse{
			CategoryID:     s.CategoryID,
			CategoryName:   s.CategoryName,
			Budget:         s.Budget,
			Spent:          s.Spent,
			Remaining:      s.Remaining,
			Percent:        s.Percent,
			ClampedPercent: s.ClampedPercent,
		}
		resp.TotalBudget = resp.TotalBudget.Add(s.Budget)
		resp.TotalSpent = resp.TotalSpent.Add(s.Spent)
	}
	return resp
}
