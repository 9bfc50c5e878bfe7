package services_test

import (
	"context"
	"testing"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/core/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo    *MockBudgetRepository
	mockCategoryRepo  *MockCategoryRepository
	mockReportingRepo *MockReportingRepository
	mockRates         *MockRatesService
	service           *services.BudgetService
	ctx               context.Context
	userID            string
	month             string
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.mockBudgetRepo = new(MockBudgetRepository)
	s.mockCategoryRepo = new(MockCategoryRepository)
	s.mockReportingRepo = new(MockReportingRepository)
	s.mockRates = new(MockRatesService)
	s.service = services.NewBudgetService(portsrepo.RepositoryProvider{
		BudgetRepo:    s.mockBudgetRepo,
		CategoryRepo:  s.mockCategoryRepo,
		ReportingRepo: s.mockReportingRepo,
	}, s.mockRates)
	s.ctx = context.Background()
	s.userID = "user-1"
	s.month = "2026-03"
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) baseDisplay() fx.DisplayContext {
	return fx.DisplayContext{Currency: fx.BaseCurrency, ConversionRate: decimal.NewFromInt(1)}
}

func (s *BudgetServiceTestSuite) budget(categoryID, amount string) domain.Budget {
	return domain.Budget{
		BudgetID:   "bud-" + categoryID,
		UserID:     s.userID,
		CategoryID: categoryID,
		Month:      s.month,
		Amount:     decimal.RequireFromString(amount),
	}
}

func (s *BudgetServiceTestSuite) TestUpsertBudget_Success() {
	req := dto.UpsertBudgetRequest{
		CategoryID: "cat-groceries",
		Month:      s.month,
		Amount:     decimal.RequireFromString("300"),
	}
	saved := s.budget("cat-groceries", "300")

	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-groceries").
		Return(&domain.Category{CategoryID: "cat-groceries", Type: domain.CategoryExpense}, nil).Once()
	s.mockBudgetRepo.On("UpsertBudget", s.ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.CategoryID == "cat-groceries" && b.Month == s.month &&
			b.Amount.Equal(decimal.RequireFromString("300"))
	})).Return(&saved, nil).Once()

	result, err := s.service.UpsertBudget(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.Equal(saved.BudgetID, result.BudgetID)
	s.mockBudgetRepo.AssertExpectations(s.T())
}

func (s *BudgetServiceTestSuite) TestUpsertBudget_NegativeAmount() {
	req := dto.UpsertBudgetRequest{
		CategoryID: "cat-groceries",
		Month:      s.month,
		Amount:     decimal.RequireFromString("-5"),
	}

	_, err := s.service.UpsertBudget(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockBudgetRepo.AssertNotCalled(s.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (s *BudgetServiceTestSuite) TestUpsertBudget_RejectsIncomeCategory() {
	req := dto.UpsertBudgetRequest{
		CategoryID: "cat-salary",
		Month:      s.month,
		Amount:     decimal.RequireFromString("100"),
	}

	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-salary").
		Return(&domain.Category{CategoryID: "cat-salary", Type: domain.CategoryIncome}, nil).Once()

	_, err := s.service.UpsertBudget(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockBudgetRepo.AssertNotCalled(s.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (s *BudgetServiceTestSuite) TestMonthStatuses_PercentBoundaries() {
	budgets := []domain.Budget{
		s.budget("cat-under", "100"),  // 50 spent -> 50%
		s.budget("cat-over", "100"),   // 150 spent -> 150% raw, 100 clamped
		s.budget("cat-zero", "0"),     // 50 spent on zero budget -> 100%
		s.budget("cat-nothing", "0"),  // nothing spent, nothing budgeted -> 0%
	}
	spent := map[string]decimal.Decimal{
		"cat-under": decimal.RequireFromString("50"),
		"cat-over":  decimal.RequireFromString("150"),
		"cat-zero":  decimal.RequireFromString("50"),
	}
	categories := []domain.Category{
		{CategoryID: "cat-under", Name: "Groceries", Type: domain.CategoryExpense},
		{CategoryID: "cat-over", Name: "Dining", Type: domain.CategoryExpense},
		{CategoryID: "cat-zero", Name: "Impulse", Type: domain.CategoryExpense},
		{CategoryID: "cat-nothing", Name: "Hobbies", Type: domain.CategoryExpense},
	}

	s.mockBudgetRepo.On("ListBudgetsByMonth", s.ctx, s.userID, s.month).Return(budgets, nil).Once()
	s.mockReportingRepo.On("SpentByCategory", s.ctx, s.userID, s.month).Return(spent, nil).Once()
	s.mockCategoryRepo.On("ListCategories", s.ctx, s.userID, domain.CategoryType("")).Return(categories, nil).Once()
	s.mockRates.On("DisplayContext", s.ctx, s.userID, "").Return(s.baseDisplay(), nil).Once()

	statuses, err := s.service.MonthStatuses(s.ctx, s.userID, s.month, "")

	s.Require().NoError(err)
	s.Require().Len(statuses, 4)

	byCategory := make(map[string]domain.BudgetStatus, len(statuses))
	for _, st := range statuses {
		byCategory[st.CategoryID] = st
	}

	under := byCategory["cat-under"]
	s.Equal("Groceries", under.CategoryName)
	s.True(under.Percent.Equal(decimal.RequireFromString("50")))
	s.True(under.Remaining.Equal(decimal.RequireFromString("50")))

	over := byCategory["cat-over"]
	s.True(over.Percent.Equal(decimal.RequireFromString("150")))
	s.True(over.ClampedPercent.Equal(decimal.RequireFromString("100")))
	s.True(over.Remaining.Equal(decimal.RequireFromString("-50")))

	zero := byCategory["cat-zero"]
	s.True(zero.Percent.Equal(decimal.RequireFromString("100")))

	nothing := byCategory["cat-nothing"]
	s.True(nothing.Percent.IsZero())
	s.True(nothing.ClampedPercent.IsZero())
}

func (s *BudgetServiceTestSuite) TestMonthStatuses_PercentIgnoresDisplayCurrency() {
	budgets := []domain.Budget{s.budget("cat-under", "90")}
	spent := map[string]decimal.Decimal{"cat-under": decimal.RequireFromString("45")}
	categories := []domain.Category{{CategoryID: "cat-under", Name: "Groceries", Type: domain.CategoryExpense}}
	usdDisplay := fx.DisplayContext{Currency: "USD", ConversionRate: decimal.RequireFromString("0.9")}

	s.mockBudgetRepo.On("ListBudgetsByMonth", s.ctx, s.userID, s.month).Return(budgets, nil).Once()
	s.mockReportingRepo.On("SpentByCategory", s.ctx, s.userID, s.month).Return(spent, nil).Once()
	s.mockCategoryRepo.On("ListCategories", s.ctx, s.userID, domain.CategoryType("")).Return(categories, nil).Once()
	s.mockRates.On("DisplayContext", s.ctx, s.userID, "USD").Return(usdDisplay, nil).Once()

	statuses, err := s.service.MonthStatuses(s.ctx, s.userID, s.month, "USD")

	s.Require().NoError(err)
	s.Require().Len(statuses, 1)

	status := statuses[0]
	// Monetary columns come out in USD, the ratio does not move.
	s.True(status.Budget.Equal(decimal.RequireFromString("100")))
	s.True(status.Spent.Equal(decimal.RequireFromString("50")))
	s.True(status.Percent.Equal(decimal.RequireFromString("50")))
}

func (s *BudgetServiceTestSuite) TestMonthStatuses_NoBudgets() {
	s.mockBudgetRepo.On("ListBudgetsByMonth", s.ctx, s.userID, s.month).Return([]domain.Budget{}, nil).Once()
	s.mockReportingRepo.On("SpentByCategory", s.ctx, s.userID, s.month).Return(map[string]decimal.Decimal{}, nil).Once()
	s.mockCategoryRepo.On("ListCategories", s.ctx, s.userID, domain.CategoryType("")).Return([]domain.Category{}, nil).Once()
	s.mockRates.On("DisplayContext", s.ctx, s.userID, "").Return(s.baseDisplay(), nil).Once()

	statuses, err := s.service.MonthStatuses(s.ctx, s.userID, s.month, "")

	s.Require().NoError(err)
	s.Empty(statuses)
}
