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
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
)

const monthLayout = "2006-01"

// topExpenseCount is how many of the month's largest expenses the
// monthly report lists.
const topExpenseCount = 5

// ReportingService computes the aggregate views. All aggregation happens
// over stored base-currency snapshots; the display conversion is a single
// division at the edge.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	rates         portssvc.RatesSvcFacade
	budgets       portssvc.BudgetSvcFacade
}

func NewReportingService(repos portsrepo.RepositoryProvider, rates portssvc.RatesSvcFacade, budgets portssvc.BudgetSvcFacade) *ReportingService {
	return &ReportingService{
		reportingRepo: repos.ReportingRepo,
		rates:         rates,
		budgets:       budgets,
	}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// PeriodSummary aggregates income and expenses over [from, to). The
// savings rate is a ratio so it is computed on base figures; it would
// come out identical in any display currency.
func (s *ReportingService) PeriodSummary(ctx context.Context, userID string, from, to time.Time, displayCurrency string) (*domain.PeriodSummary, error) {
	incomeBase, expensesBase, err := s.reportingRepo.PeriodTotals(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	dc, err := s.rates.DisplayContext(ctx, userID, displayCurrency)
	if err != nil {
		return nil, err
	}

	netBase := incomeBase.Sub(expensesBase)
	return &domain.PeriodSummary{
		Income:      dc.ToDisplay(incomeBase),
		Expenses:    dc.ToDisplay(expensesBase),
		NetSavings:  dc.ToDisplay(netBase),
		SavingsRate: fx.SavingsRate(incomeBase, netBase),
	}, nil
}

// NetWorth values every active account at the current rate table plus
// investments at their recorded cost basis.
func (s *ReportingService) NetWorth(ctx context.Context, userID, displayCurrency string) (*domain.NetWorthReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.reportingRepo.ListActiveAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	investmentsBase, err := s.reportingRepo.SumInvestmentBase(ctx, userID)
	if err != nil {
		return nil, err
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, err
	}
	dc, err := s.rates.DisplayContext(ctx, userID, displayCurrency)
	if err != nil {
		return nil, err
	}

	report := &domain.NetWorthReport{Accounts: make([]domain.AccountWorth, 0, len(accounts))}
	for _, acc := range accounts {
		worthBase, known := fx.ToBase(acc.Balance, acc.CurrencyCode, table)
		if !known && acc.CurrencyCode != fx.BaseCurrency {
			logger.Warn("No rate for account currency in net worth, valuing at 1:1",
				slog.String("account_id", acc.AccountID), slog.String("currency", acc.CurrencyCode))
		}
		worth := dc.ToDisplay(worthBase)
		report.Accounts = append(report.Accounts, domain.AccountWorth{
			AccountID:    acc.AccountID,
			Name:         acc.Name,
			CurrencyCode: acc.CurrencyCode,
			Balance:      acc.Balance,
			Worth:        worth,
		})
		report.AccountsTotal = report.AccountsTotal.Add(worth)
	}

	report.InvestmentsTotal = dc.ToDisplay(investmentsBase)
	report.NetWorth = report.AccountsTotal.Add(report.InvestmentsTotal)
	return report, nil
}

// MonthlyReport builds the one-month dashboard: summary, budget statuses
// and the month's largest expenses.
func (s *ReportingService) MonthlyReport(ctx context.Context, userID, month, displayCurrency string) (*domain.MonthlyReport, error) {
	start, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid month %q", apperrors.ErrValidation, month)
	}
	end := start.AddDate(0, 1, 0)

	summary, err := s.PeriodSummary(ctx, userID, start, end, displayCurrency)
	if err != nil {
		return nil, err
	}
	statuses, err := s.budgets.MonthStatuses(ctx, userID, month, displayCurrency)
	if err != nil {
		return nil, err
	}
	topExpenses, err := s.reportingRepo.TopExpenses(ctx, userID, month, topExpenseCount)
	if err != nil {
		return nil, err
	}

	return &domain.MonthlyReport{
		Month:       month,
		Summary:     *summary,
		Budgets:     statuses,
		TopExpenses: topExpenses,
	}, nil
}
