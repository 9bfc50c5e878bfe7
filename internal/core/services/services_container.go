package services

import (
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/pkg/config"
)

// NewServiceContainer wires every service with its repositories and
// cross-service dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	ratesSvc := NewRatesService(repos.ExchangeRateRepo, repos.UserRepo)
	userSvc := NewUserService(repos.UserRepo)
	budgetSvc := NewBudgetService(repos, ratesSvc)

	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo),
		Category:  NewCategoryService(repos.CategoryRepo),
		Ledger:    NewLedgerService(repos, ratesSvc),
		Budget:    budgetSvc,
		Reporting: NewReportingService(repos, ratesSvc, budgetSvc),
		Rates:     ratesSvc,
		User:      userSvc,
		Token:     NewTokenService(cfg, userSvc),
		Google:    NewGoogleOAuthService(cfg),
	}
}
