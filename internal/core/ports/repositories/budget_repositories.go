package repositories

import (
	"context"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
)

// BudgetRepository persists monthly category budgets. UpsertBudget
// inserts or overwrites the single row for (user, category, month).
type BudgetRepository interface {
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
	FindBudget(ctx context.Context, userID, categoryID, month string) (*domain.Budget, error)
	ListBudgetsByMonth(ctx context.Context, userID, month string) ([]domain.Budget, error)
}
