package domain

import (
	"github.com/shopspring/decimal"
)

// Budget is a monthly spending target for a category.
// Amount is denominated in the base currency (EUR); budget status
// converts it to the display currency together with the spend, so the
// percentage is independent of the currency the user is looking at.
// One budget per (category, month), month formatted "YYYY-MM".
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	UserID     string          `json:"userID"`
	CategoryID string          `json:"categoryID"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	AuditFields
}
