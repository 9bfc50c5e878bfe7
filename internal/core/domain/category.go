package domain

// CategoryType determines which transaction kind a category applies to.
type CategoryType string

const (
	CategoryExpense    CategoryType = "expense"
	CategoryIncome     CategoryType = "income"
	CategoryInvestment CategoryType = "investment"
	CategorySaving     CategoryType = "saving"
)

// Category labels transactions for budgeting and reporting.
type Category struct {
	CategoryID string       `json:"categoryID"`
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	AuditFields
}
