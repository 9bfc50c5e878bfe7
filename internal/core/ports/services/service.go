package services

// ServiceContainer holds instances of all the application services and is
// the single dependency handed to the HTTP layer.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Category  CategorySvcFacade
	Ledger    LedgerSvcFacade
	Budget    BudgetSvcFacade
	Reporting ReportingSvcFacade
	Rates     RatesSvcFacade
	User      UserSvcFacade
	Token     TokenSvcFacade
	Google    GoogleOAuthSvcFacade
}
