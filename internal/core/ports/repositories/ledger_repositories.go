package repositories

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListExpensesParams filters and paginates expense listings. Month is
// "YYYY-MM" and empty means no month filter. NextToken is an opaque
// date-based pagination token from a previous page.
type ListExpensesParams struct {
	Month      string
	CategoryID string
	Limit      int
	NextToken  string
}

// ListExpensesResult carries one page of expenses and the token for the
// next page, empty when exhausted.
type ListExpensesResult struct {
	Expenses  []domain.Expense
	NextToken string
}

// ExpenseRepository persists expenses. SaveExpense inserts the row and
// applies the native-currency balance delta to the referenced account in
// one database transaction; if the account does not exist the whole
// operation fails and nothing is written.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense, nativeDelta decimal.Decimal) error
	ListExpenses(ctx context.Context, userID string, params ListExpensesParams) (*ListExpensesResult, error)
}

// IncomeRepository persists income records with the same atomicity
// contract as ExpenseRepository.
type IncomeRepository interface {
	SaveIncome(ctx context.Context, income domain.Income, nativeDelta decimal.Decimal) error
	ListIncome(ctx context.Context, userID string, month string) ([]domain.Income, error)
}

// InvestmentRepository persists investments. Investments do not adjust
// account balances; money movement into the investment account is
// recorded separately as a transfer.
type InvestmentRepository interface {
	SaveInvestment(ctx context.Context, investment domain.Investment) error
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
}

// TransferRepository persists transfers, adjusting both account balances
// in native currency within one transaction.
type TransferRepository interface {
	SaveTransfer(ctx context.Context, transfer domain.Transfer) error
	ListTransfers(ctx context.Context, userID string, from, to time.Time) ([]domain.Transfer, error)
}
