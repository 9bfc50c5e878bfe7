package services

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

// LedgerSvcFacade records transactions. Every record operation snapshots
// the base-currency amount with the current rate table and adjusts the
// affected account balances atomically with the insert. Records are
// immutable once written; there are no update or delete operations.
type LedgerSvcFacade interface {
	RecordExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	RecordIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.Income, error)
	RecordInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.Investment, error)
	RecordTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error)

	ListExpenses(ctx context.Context, userID string, params portsrepo.ListExpensesParams) (*portsrepo.ListExpensesResult, error)
	ListIncome(ctx context.Context, userID, month string) ([]domain.Income, error)
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
	ListTransfers(ctx context.Context, userID string, from, to time.Time) ([]domain.Transfer, error)
}
