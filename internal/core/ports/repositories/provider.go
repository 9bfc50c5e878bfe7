package repositories

// RepositoryProvider bundles every repository implementation for
// injection into the service layer.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	CategoryRepo     CategoryRepository
	ExpenseRepo      ExpenseRepository
	IncomeRepo       IncomeRepository
	InvestmentRepo   InvestmentRepository
	TransferRepo     TransferRepository
	BudgetRepo       BudgetRepository
	ExchangeRateRepo ExchangeRateRepository
	UserRepo         UserRepository
	ReportingRepo    ReportingRepository
}
