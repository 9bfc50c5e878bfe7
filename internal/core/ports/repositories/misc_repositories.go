package repositories

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, typeFilter domain.CategoryType) ([]domain.Category, error)
}

// ExchangeRateRepository reads and maintains the flat rate table.
type ExchangeRateRepository interface {
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
	UpsertRate(ctx context.Context, rate domain.ExchangeRate) error
}

// UserRepository persists users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateDisplayCurrency(ctx context.Context, userID, currencyCode string, at time.Time) error
	UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiry *time.Time, at time.Time) error
}

// ReportingRepository runs the aggregate queries behind summaries,
// budget statuses and net worth. All monetary results are base-currency
// sums of stored amount_base snapshots.
type ReportingRepository interface {
	PeriodTotals(ctx context.Context, userID string, from, to time.Time) (income, expenses decimal.Decimal, err error)
	SpentByCategory(ctx context.Context, userID, month string) (map[string]decimal.Decimal, error)
	SumInvestmentBase(ctx context.Context, userID string) (decimal.Decimal, error)
	ListActiveAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	TopExpenses(ctx context.Context, userID, month string, limit int) ([]domain.Expense, error)
}
