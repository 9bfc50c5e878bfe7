package models

import (
	"github.com/shopspring/decimal"
)

// Budget represents a row of the budgets table. Uniqueness on
// (user_id, category_id, month) backs the upsert.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	UserID     string          `db:"user_id"`
	CategoryID string          `db:"category_id"`
	Month      string          `db:"month"`
	Amount     decimal.Decimal `db:"budget_amount"`
	AuditFields
}
