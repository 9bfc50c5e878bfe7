package pgsql

import (
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool, accountRepo)
	incomeRepo := newPgxIncomeRepository(dbPool, accountRepo)
	investmentRepo := newPgxInvestmentRepository(dbPool)
	transferRepo := newPgxTransferRepository(dbPool, accountRepo)
	budgetRepo := newPgxBudgetRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		CategoryRepo:     categoryRepo,
		ExpenseRepo:      expenseRepo,
		IncomeRepo:       incomeRepo,
		InvestmentRepo:   investmentRepo,
		TransferRepo:     transferRepo,
		BudgetRepo:       budgetRepo,
		ExchangeRateRepo: exchangeRateRepo,
		UserRepo:         userRepo,
		ReportingRepo:    reportingRepo,
	}
}
