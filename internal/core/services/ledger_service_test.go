package services_test

import (
	"context"
	"testing"
	"time"

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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo    *MockExpenseRepository
	mockIncomeRepo     *MockIncomeRepository
	mockInvestmentRepo *MockInvestmentRepository
	mockTransferRepo   *MockTransferRepository
	mockAccountRepo    *MockAccountRepository
	mockCategoryRepo   *MockCategoryRepository
	mockRates          *MockRatesService
	service            *services.LedgerService
	ctx                context.Context
	userID             string
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockExpenseRepo = new(MockExpenseRepository)
	s.mockIncomeRepo = new(MockIncomeRepository)
	s.mockInvestmentRepo = new(MockInvestmentRepository)
	s.mockTransferRepo = new(MockTransferRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockCategoryRepo = new(MockCategoryRepository)
	s.mockRates = new(MockRatesService)
	s.service = services.NewLedgerService(portsrepo.RepositoryProvider{
		ExpenseRepo:    s.mockExpenseRepo,
		IncomeRepo:     s.mockIncomeRepo,
		InvestmentRepo: s.mockInvestmentRepo,
		TransferRepo:   s.mockTransferRepo,
		AccountRepo:    s.mockAccountRepo,
		CategoryRepo:   s.mockCategoryRepo,
	}, s.mockRates)
	s.ctx = context.Background()
	s.userID = "user-1"
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) ratesTable() fx.Table {
	return fx.NewTable(map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("0.9"),
		"GBP": decimal.RequireFromString("1.2"),
	})
}

func (s *LedgerServiceTestSuite) account(id, currency string, active bool) *domain.Account {
	return &domain.Account{
		AccountID:    id,
		UserID:       s.userID,
		Name:         "Account " + id,
		AccountType:  domain.AccountBank,
		CurrencyCode: currency,
		Balance:      decimal.RequireFromString("500"),
		IsActive:     active,
	}
}

func (s *LedgerServiceTestSuite) category(id string, typ domain.CategoryType) *domain.Category {
	return &domain.Category{CategoryID: id, UserID: s.userID, Name: "Category " + id, Type: typ}
}

func (s *LedgerServiceTestSuite) TestRecordExpense_SnapshotsBaseAmount() {
	req := dto.CreateExpenseRequest{
		Date:         "2026-03-10",
		Amount:       decimal.RequireFromString("100"),
		CurrencyCode: "USD",
		CategoryID:   "cat-groceries",
		AccountID:    "acc-1",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-1").
		Return(s.account("acc-1", "EUR", true), nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-groceries").
		Return(s.category("cat-groceries", domain.CategoryExpense), nil).Once()
	s.mockRates.On("Table", s.ctx).Return(s.ratesTable(), nil).Once()
	s.mockExpenseRepo.On("SaveExpense", s.ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.AmountBase.Equal(decimal.RequireFromString("90")) &&
			!e.RateAssumed &&
			e.Source == "manual" &&
			e.UserID == s.userID
	}), mock.MatchedBy(func(delta decimal.Decimal) bool {
		// EUR account, so the base delta applies unscaled.
		return delta.Equal(decimal.RequireFromString("-90"))
	})).Return(nil).Once()

	expense, err := s.service.RecordExpense(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(expense)
	s.True(expense.AmountBase.Equal(decimal.RequireFromString("90")))
	s.False(expense.RateAssumed)
	s.Equal("2026-03-10", expense.Date.Format("2006-01-02"))
	s.mockExpenseRepo.AssertExpectations(s.T())
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordExpense_NativeDeltaUsesAccountCurrency() {
	req := dto.CreateExpenseRequest{
		Date:         "2026-03-10",
		Amount:       decimal.RequireFromString("100"),
		CurrencyCode: "USD",
		CategoryID:   "cat-groceries",
		AccountID:    "acc-usd",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-usd").
		Return(s.account("acc-usd", "USD", true), nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-groceries").
		Return(s.category("cat-groceries", domain.CategoryExpense), nil).Once()
	s.mockRates.On("Table", s.ctx).Return(s.ratesTable(), nil).Once()
	s.mockExpenseRepo.On("SaveExpense", s.ctx, mock.AnythingOfType("domain.Expense"),
		mock.MatchedBy(func(delta decimal.Decimal) bool {
			// -90 base back through the USD rate lands at -100 native.
			return delta.Equal(decimal.RequireFromString("-100"))
		})).Return(nil).Once()

	_, err := s.service.RecordExpense(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.mockExpenseRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordExpense_UnknownCurrencyAssumesRate() {
	req := dto.CreateExpenseRequest{
		Date:         "2026-03-10",
		Amount:       decimal.RequireFromString("42"),
		CurrencyCode: "JPY",
		CategoryID:   "cat-travel",
		AccountID:    "acc-1",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-1").
		Return(s.account("acc-1", "EUR", true), nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-travel").
		Return(s.category("cat-travel", domain.CategoryExpense), nil).Once()
	s.mockRates.On("Table", s.ctx).Return(s.ratesTable(), nil).Once()
	s.mockExpenseRepo.On("SaveExpense", s.ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.RateAssumed && e.AmountBase.Equal(decimal.RequireFromString("42"))
	}), mock.AnythingOfType("decimal.Decimal")).Return(nil).Once()

	expense, err := s.service.RecordExpense(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(expense.RateAssumed)
	s.mockExpenseRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordExpense_NonPositiveAmount() {
	req := dto.CreateExpenseRequest{
		Date:         "2026-03-10",
		Amount:       decimal.Zero,
		CurrencyCode: "EUR",
		CategoryID:   "cat-groceries",
		AccountID:    "acc-1",
	}

	_, err := s.service.RecordExpense(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockAccountRepo.AssertNotCalled(s.T(), "FindAccountByID", mock.Anything, mock.Anything, mock.Anything)
	s.mockExpenseRepo.AssertNotCalled(s.T(), "SaveExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordExpense_InactiveAccount() {
	req := dto.CreateExpenseRequest{
		Date:         "2026-03-10",
		Amount:       decimal.RequireFromString("10"),
		CurrencyCode: "EUR",
		CategoryID:   "cat-groceries",
		AccountID:    "acc-closed",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-closed").
		Return(s.account("acc-closed", "EUR", false), nil).Once()

	_, err := s.service.RecordExpense(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockExpenseRepo.AssertNotCalled(s.T(), "SaveExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordExpense_RejectsIncomeCategory() {
	req := dto.CreateExpenseRequest{
		Date:         "2026-03-10",
		Amount:       decimal.RequireFromString("10"),
		CurrencyCode: "EUR",
		CategoryID:   "cat-salary",
		AccountID:    "acc-1",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-1").
		Return(s.account("acc-1", "EUR", true), nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-salary").
		Return(s.category("cat-salary", domain.CategoryIncome), nil).Once()

	_, err := s.service.RecordExpense(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockExpenseRepo.AssertNotCalled(s.T(), "SaveExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordIncome_CreditsAccount() {
	req := dto.CreateIncomeRequest{
		Date:         "2026-03-01",
		Amount:       decimal.RequireFromString("2000"),
		CurrencyCode: "GBP",
		CategoryID:   "cat-salary",
		AccountID:    "acc-gbp",
		Source:       "Employer Ltd",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-gbp").
		Return(s.account("acc-gbp", "GBP", true), nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-salary").
		Return(s.category("cat-salary", domain.CategoryIncome), nil).Once()
	s.mockRates.On("Table", s.ctx).Return(s.ratesTable(), nil).Once()
	s.mockIncomeRepo.On("SaveIncome", s.ctx, mock.MatchedBy(func(in domain.Income) bool {
		return in.AmountBase.Equal(decimal.RequireFromString("2400")) && !in.RateAssumed
	}), mock.MatchedBy(func(delta decimal.Decimal) bool {
		// 2400 base over the 1.2 GBP rate credits 2000 native.
		return delta.Equal(decimal.RequireFromString("2000"))
	})).Return(nil).Once()

	income, err := s.service.RecordIncome(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(income.AmountBase.Equal(decimal.RequireFromString("2400")))
	s.mockIncomeRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordIncome_RejectsExpenseCategory() {
	req := dto.CreateIncomeRequest{
		Date:         "2026-03-01",
		Amount:       decimal.RequireFromString("100"),
		CurrencyCode: "EUR",
		CategoryID:   "cat-groceries",
		AccountID:    "acc-1",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-1").
		Return(s.account("acc-1", "EUR", true), nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-groceries").
		Return(s.category("cat-groceries", domain.CategoryExpense), nil).Once()

	_, err := s.service.RecordIncome(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockIncomeRepo.AssertNotCalled(s.T(), "SaveIncome", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordInvestment_DoesNotTouchBalances() {
	req := dto.CreateInvestmentRequest{
		Date:           "2026-03-15",
		Amount:         decimal.RequireFromString("1000"),
		CurrencyCode:   "USD",
		InstrumentName: "VWCE",
		InvestmentType: "etf",
		Action:         "buy",
		AccountID:      "acc-broker",
		CategoryID:     "cat-invest",
		Units:          decimal.RequireFromString("9.5"),
		PricePerUnit:   decimal.RequireFromString("105.26"),
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-broker").
		Return(s.account("acc-broker", "USD", true), nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, s.userID, "cat-invest").
		Return(s.category("cat-invest", domain.CategoryExpense), nil).Once()
	s.mockRates.On("Table", s.ctx).Return(s.ratesTable(), nil).Once()
	s.mockInvestmentRepo.On("SaveInvestment", s.ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.AmountBase.Equal(decimal.RequireFromString("900")) &&
			inv.Action == domain.InvestmentBuy
	})).Return(nil).Once()

	investment, err := s.service.RecordInvestment(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(investment.AmountBase.Equal(decimal.RequireFromString("900")))
	s.mockInvestmentRepo.AssertExpectations(s.T())
	s.mockAccountRepo.AssertNotCalled(s.T(), "ApplyBalanceDeltas",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordTransfer_SameCurrencyDefaultsDestinationAmount() {
	req := dto.CreateTransferRequest{
		Date:                 "2026-03-20",
		Amount:               decimal.RequireFromString("250"),
		SourceAccountID:      "acc-1",
		DestinationAccountID: "acc-2",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-1").
		Return(s.account("acc-1", "EUR", true), nil).Once()
	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-2").
		Return(s.account("acc-2", "EUR", true), nil).Once()
	s.mockTransferRepo.On("SaveTransfer", s.ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.DestinationAmount.Equal(decimal.RequireFromString("250")) &&
			t.ExchangeRate.Equal(decimal.NewFromInt(1))
	})).Return(nil).Once()

	transfer, err := s.service.RecordTransfer(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(transfer.DestinationAmount.Equal(req.Amount))
	s.mockTransferRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordTransfer_SameCurrencyMismatch() {
	req := dto.CreateTransferRequest{
		Date:                 "2026-03-20",
		Amount:               decimal.RequireFromString("250"),
		SourceAccountID:      "acc-1",
		DestinationAccountID: "acc-2",
		DestinationAmount:    decimal.RequireFromString("240"),
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-1").
		Return(s.account("acc-1", "EUR", true), nil).Once()
	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-2").
		Return(s.account("acc-2", "EUR", true), nil).Once()

	_, err := s.service.RecordTransfer(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTransferRepo.AssertNotCalled(s.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordTransfer_CrossCurrencyDerivesRate() {
	req := dto.CreateTransferRequest{
		Date:                 "2026-03-20",
		Amount:               decimal.RequireFromString("100"),
		SourceAccountID:      "acc-eur",
		DestinationAccountID: "acc-usd",
		DestinationAmount:    decimal.RequireFromString("110"),
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-eur").
		Return(s.account("acc-eur", "EUR", true), nil).Once()
	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-usd").
		Return(s.account("acc-usd", "USD", true), nil).Once()
	s.mockTransferRepo.On("SaveTransfer", s.ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.ExchangeRate.Equal(decimal.RequireFromString("1.1"))
	})).Return(nil).Once()

	transfer, err := s.service.RecordTransfer(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(transfer.ExchangeRate.Equal(decimal.RequireFromString("1.1")))
	s.mockTransferRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordTransfer_CrossCurrencyRequiresDestinationAmount() {
	req := dto.CreateTransferRequest{
		Date:                 "2026-03-20",
		Amount:               decimal.RequireFromString("100"),
		SourceAccountID:      "acc-eur",
		DestinationAccountID: "acc-usd",
	}

	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-eur").
		Return(s.account("acc-eur", "EUR", true), nil).Once()
	s.mockAccountRepo.On("FindAccountByID", s.ctx, s.userID, "acc-usd").
		Return(s.account("acc-usd", "USD", true), nil).Once()

	_, err := s.service.RecordTransfer(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTransferRepo.AssertNotCalled(s.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordTransfer_SameAccount() {
	req := dto.CreateTransferRequest{
		Date:                 "2026-03-20",
		Amount:               decimal.RequireFromString("100"),
		SourceAccountID:      "acc-1",
		DestinationAccountID: "acc-1",
	}

	_, err := s.service.RecordTransfer(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockAccountRepo.AssertNotCalled(s.T(), "FindAccountByID", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestListTransfers_Passthrough() {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	expected := []domain.Transfer{{TransferID: "tr-1"}}

	s.mockTransferRepo.On("ListTransfers", s.ctx, s.userID, from, to).
		Return(expected, nil).Once()

	transfers, err := s.service.ListTransfers(s.ctx, s.userID, from, to)

	s.Require().NoError(err)
	s.Equal(expected, transfers)
	s.mockTransferRepo.AssertExpectations(s.T())
}
