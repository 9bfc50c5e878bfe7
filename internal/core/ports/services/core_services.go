package services

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
)

// AccountSvcFacade manages accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string, limit, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, userID, accountID string) error
}

// CategorySvcFacade manages categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, typeFilter domain.CategoryType) ([]domain.Category, error)
}

// BudgetSvcFacade manages monthly budgets and computes budget statuses.
type BudgetSvcFacade interface {
	UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest, userID string) (*domain.Budget, error)
	MonthStatuses(ctx context.Context, userID, month, displayCurrency string) ([]domain.BudgetStatus, error)
}

// ReportingSvcFacade computes the aggregate views. displayCurrency is an
// optional override; empty falls back to the user's stored preference.
type ReportingSvcFacade interface {
	PeriodSummary(ctx context.Context, userID string, from, to time.Time, displayCurrency string) (*domain.PeriodSummary, error)
	NetWorth(ctx context.Context, userID, displayCurrency string) (*domain.NetWorthReport, error)
	MonthlyReport(ctx context.Context, userID, month, displayCurrency string) (*domain.MonthlyReport, error)
}

// RatesSvcFacade serves the cached rate table and display contexts, and
// lets an operator maintain rates.
type RatesSvcFacade interface {
	Table(ctx context.Context) (fx.Table, error)
	DisplayContext(ctx context.Context, userID, override string) (fx.DisplayContext, error)
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
	UpsertRate(ctx context.Context, req dto.UpsertRateRequest, userID string) (*domain.ExchangeRate, error)
}

// UserSvcFacade manages users and credentials.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
	UpdateDisplayCurrency(ctx context.Context, userID, currencyCode string) (*domain.User, error)
	SetRefreshToken(ctx context.Context, userID, rawToken string, expiry time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// TokenSvcFacade issues and validates application tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	ValidateRefreshToken(ctx context.Context, userID, rawToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade exchanges Google authorization codes and validates
// the resulting identity.
type GoogleOAuthSvcFacade interface {
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error)
}
