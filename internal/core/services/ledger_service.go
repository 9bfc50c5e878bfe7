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

const dateLayout = "2006-01-02"

// sourceManual marks records created through the API, as opposed to bulk
// imports.
const sourceManual = "manual"

// LedgerService records the four transaction kinds. Each record operation
// snapshots the base-currency amount with the rate table in effect and
// hands the repository the native-currency balance delta to apply
// atomically with the insert.
type LedgerService struct {
	expenseRepo    portsrepo.ExpenseRepository
	incomeRepo     portsrepo.IncomeRepository
	investmentRepo portsrepo.InvestmentRepository
	transferRepo   portsrepo.TransferRepository
	accountRepo    portsrepo.AccountRepository
	categoryRepo   portsrepo.CategoryRepository
	rates          portssvc.RatesSvcFacade
}

func NewLedgerService(repos portsrepo.RepositoryProvider, rates portssvc.RatesSvcFacade) *LedgerService {
	return &LedgerService{
		expenseRepo:    repos.ExpenseRepo,
		incomeRepo:     repos.IncomeRepo,
		investmentRepo: repos.InvestmentRepo,
		transferRepo:   repos.TransferRepo,
		accountRepo:    repos.AccountRepo,
		categoryRepo:   repos.CategoryRepo,
		rates:          rates,
	}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// activeAccount fetches one of the user's accounts and rejects inactive
// ones: new transactions may not reference a deactivated account.
func (s *LedgerService) activeAccount(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, accountID)
	}
	return account, nil
}

// nativeDelta converts a base-currency delta into the account's native
// currency. When the account currency has no rate the delta is applied
// as-is; the assumption is logged so it never passes silently.
func (s *LedgerService) nativeDelta(ctx context.Context, table fx.Table, account *domain.Account, baseDelta decimal.Decimal) decimal.Decimal {
	rate, known := table.Rate(account.CurrencyCode)
	if !known && account.CurrencyCode != fx.BaseCurrency {
		middleware.GetLoggerFromCtx(ctx).Warn("No rate for account currency, applying balance delta at 1:1",
			slog.String("account_id", account.AccountID), slog.String("currency", account.CurrencyCode))
	}
	return baseDelta.Div(rate)
}

// RecordExpense inserts an expense and debits the paying account.
func (s *LedgerService) RecordExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	account, err := s.activeAccount(ctx, userID, req.AccountID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != domain.CategoryExpense {
		return nil, fmt.Errorf("%w: category %s is not an expense category", apperrors.ErrValidation, req.CategoryID)
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, err
	}
	amountBase, known := fx.ToBase(req.Amount, req.CurrencyCode, table)
	if !known {
		logger.Warn("No rate for expense currency, assuming base-equivalent",
			slog.String("currency", req.CurrencyCode))
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		UserID:        userID,
		Date:          date,
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
		AmountBase:    amountBase,
		RateAssumed:   !known,
		CategoryID:    req.CategoryID,
		AccountID:     req.AccountID,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Vendor:        req.Vendor,
		Source:        sourceManual,
		AuditFields:   domain.NewAuditFields(userID, now),
	}

	delta := s.nativeDelta(ctx, table, account, amountBase.Neg())
	if err := s.expenseRepo.SaveExpense(ctx, expense, delta); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()), slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	logger.Info("Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("account_id", expense.AccountID),
		slog.String("amount_base", expense.AmountBase.String()))
	return &expense, nil
}

// RecordIncome inserts an income record and credits the receiving account.
func (s *LedgerService) RecordIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.Income, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	account, err := s.activeAccount(ctx, userID, req.AccountID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != domain.CategoryIncome {
		return nil, fmt.Errorf("%w: category %s is not an income category", apperrors.ErrValidation, req.CategoryID)
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, err
	}
	amountBase, known := fx.ToBase(req.Amount, req.CurrencyCode, table)
	if !known {
		logger.Warn("No rate for income currency, assuming base-equivalent",
			slog.String("currency", req.CurrencyCode))
	}

	now := time.Now()
	income := domain.Income{
		IncomeID:     uuid.NewString(),
		UserID:       userID,
		Date:         date,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		AmountBase:   amountBase,
		RateAssumed:  !known,
		CategoryID:   req.CategoryID,
		AccountID:    req.AccountID,
		Source:       req.Source,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(userID, now),
	}

	delta := s.nativeDelta(ctx, table, account, amountBase)
	if err := s.incomeRepo.SaveIncome(ctx, income, delta); err != nil {
		logger.Error("Failed to save income", slog.String("error", err.Error()), slog.String("income_id", income.IncomeID))
		return nil, err
	}

	logger.Info("Income recorded",
		slog.String("income_id", income.IncomeID),
		slog.String("account_id", income.AccountID),
		slog.String("amount_base", income.AmountBase.String()))
	return &income, nil
}

// RecordInvestment inserts an investment record. Balances are untouched:
// the cash movement into or out of the investment account is recorded
// separately as a transfer.
func (s *LedgerService) RecordInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	if _, err := s.activeAccount(ctx, userID, req.AccountID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID); err != nil {
		return nil, err
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, err
	}
	amountBase, known := fx.ToBase(req.Amount, req.CurrencyCode, table)
	if !known {
		logger.Warn("No rate for investment currency, assuming base-equivalent",
			slog.String("currency", req.CurrencyCode))
	}

	now := time.Now()
	investment := domain.Investment{
		InvestmentID:   uuid.NewString(),
		UserID:         userID,
		Date:           date,
		Amount:         req.Amount,
		CurrencyCode:   req.CurrencyCode,
		AmountBase:     amountBase,
		RateAssumed:    !known,
		InstrumentName: req.InstrumentName,
		InvestmentType: req.InvestmentType,
		Action:         domain.InvestmentAction(req.Action),
		AccountID:      req.AccountID,
		CategoryID:     req.CategoryID,
		Units:          req.Units,
		PricePerUnit:   req.PricePerUnit,
		Source:         sourceManual,
		AuditFields:    domain.NewAuditFields(userID, now),
	}

	if err := s.investmentRepo.SaveInvestment(ctx, investment); err != nil {
		logger.Error("Failed to save investment", slog.String("error", err.Error()), slog.String("investment_id", investment.InvestmentID))
		return nil, err
	}

	logger.Info("Investment recorded",
		slog.String("investment_id", investment.InvestmentID),
		slog.String("action", string(investment.Action)),
		slog.String("amount_base", investment.AmountBase.String()))
	return &investment, nil
}

// RecordTransfer inserts a transfer and moves money between the two
// accounts using the declared native amounts, never a base round-trip.
func (s *LedgerService) RecordTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.SourceAccountID == req.DestinationAccountID {
		return nil, fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	source, err := s.activeAccount(ctx, userID, req.SourceAccountID)
	if err != nil {
		return nil, err
	}
	destination, err := s.activeAccount(ctx, userID, req.DestinationAccountID)
	if err != nil {
		return nil, err
	}

	destinationAmount := req.DestinationAmount
	exchangeRate := req.ExchangeRate
	if source.CurrencyCode == destination.CurrencyCode {
		if destinationAmount.IsZero() {
			destinationAmount = req.Amount
		}
		if !destinationAmount.Equal(req.Amount) {
			return nil, fmt.Errorf("%w: same-currency transfer amounts must match", apperrors.ErrValidation)
		}
		exchangeRate = decimal.NewFromInt(1)
	} else {
		if !destinationAmount.IsPositive() {
			return nil, fmt.Errorf("%w: destination amount is required for cross-currency transfers", apperrors.ErrValidation)
		}
		if exchangeRate.IsZero() {
			exchangeRate = destinationAmount.Div(req.Amount)
		}
	}

	now := time.Now()
	transfer := domain.Transfer{
		TransferID:           uuid.NewString(),
		UserID:               userID,
		Date:                 date,
		Amount:               req.Amount,
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		DestinationAmount:    destinationAmount,
		ExchangeRate:         exchangeRate,
		Notes:                req.Notes,
		AuditFields:          domain.NewAuditFields(userID, now),
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		logger.Error("Failed to save transfer", slog.String("error", err.Error()), slog.String("transfer_id", transfer.TransferID))
		return nil, err
	}

	logger.Info("Transfer recorded",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("source_account_id", transfer.SourceAccountID),
		slog.String("destination_account_id", transfer.DestinationAccountID))
	return &transfer, nil
}

// ListExpenses returns one page of the user's expenses.
func (s *LedgerService) ListExpenses(ctx context.Context, userID string, params portsrepo.ListExpensesParams) (*portsrepo.ListExpensesResult, error) {
	return s.expenseRepo.ListExpenses(ctx, userID, params)
}

// ListIncome returns the user's income records, optionally for one month.
func (s *LedgerService) ListIncome(ctx context.Context, userID, month string) ([]domain.Income, error) {
	return s.incomeRepo.ListIncome(ctx, userID, month)
}

// ListInvestments returns all of the user's investments.
func (s *LedgerService) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	return s.investmentRepo.ListInvestments(ctx, userID)
}

// ListTransfers returns the user's transfers in [from, to).
func (s *LedgerService) ListTransfers(ctx context.Context, userID string, from, to time.Time) ([]domain.Transfer, error) {
	return s.transferRepo.ListTransfers(ctx, userID, from, to)
}
