package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService manages monthly budgets and computes budget-versus-actual
// statuses. Budgets are stored in the base currency; statuses convert
// both sides into the display currency, which leaves the percentage
// unchanged whatever currency the user views in.
type BudgetService struct {
	budgetRepo    portsrepo.BudgetRepository
	categoryRepo  portsrepo.CategoryRepository
	reportingRepo portsrepo.ReportingRepository
	rates         portssvc.RatesSvcFacade
}

func NewBudgetService(repos portsrepo.RepositoryProvider, rates portssvc.RatesSvcFacade) *BudgetService {
	return &BudgetService{
		budgetRepo:    repos.BudgetRepo,
		categoryRepo:  repos.CategoryRepo,
		reportingRepo: repos.ReportingRepo,
		rates:         rates,
	}
}

var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

// UpsertBudget sets or replaces the budget for one (category, month).
func (s *BudgetService) UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest, userID string) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: budget amount must not be negative", apperrors.ErrValidation)
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != domain.CategoryExpense {
		return nil, fmt.Errorf("%w: budgets apply to expense categories only", apperrors.ErrValidation)
	}

	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Month:       req.Month,
		Amount:      req.Amount,
		AuditFields: domain.NewAuditFields(userID, time.Now()),
	}

	saved, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		logger.Error("Failed to upsert budget", slog.String("error", err.Error()),
			slog.String("category_id", req.CategoryID), slog.String("month", req.Month))
		return nil, err
	}

	logger.Info("Budget upserted", slog.String("budget_id", saved.BudgetID),
		slog.String("category_id", saved.CategoryID), slog.String("month", saved.Month))
	return saved, nil
}

// MonthStatuses compares each budgeted category's spend against its
// budget for one month. The percentage is computed from the base-currency
// figures; the monetary columns are converted for display.
func (s *BudgetService) MonthStatuses(ctx context.Context, userID, month, displayCurrency string) ([]domain.BudgetStatus, error) {
	budgets, err := s.budgetRepo.ListBudgetsByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	spentByCategory, err := s.reportingRepo.SpentByCategory(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListCategories(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.CategoryID] = c.Name
	}

	dc, err := s.rates.DisplayContext(ctx, userID, displayCurrency)
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spentBase := spentByCategory[b.CategoryID]
		if spentBase.IsZero() {
			spentBase = decimal.Zero
		}
		percent := fx.BudgetPercent(b.Amount, spentBase)

		budgetDisp := dc.ToDisplay(b.Amount)
		spentDisp := dc.ToDisplay(spentBase)
		statuses = append(statuses, domain.BudgetStatus{
			CategoryID:     b.CategoryID,
			CategoryName:   names[b.CategoryID],
			Month:          month,
			Budget:         budgetDisp,
			Spent:          spentDisp,
			Remaining:      budgetDisp.Sub(spentDisp),
			Percent:        percent,
			ClampedPercent: fx.ClampPercent(percent),
		})
	}
	return statuses, nil
}
