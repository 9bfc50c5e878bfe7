package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account by what it physically is.
type AccountType string

const (
	AccountBank       AccountType = "bank"
	AccountCreditCard AccountType = "credit_card"
	AccountWallet     AccountType = "wallet"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
)

// Account is a container of money in a single native currency.
// Balance is a running total maintained incrementally by the ledger:
// every expense, income and transfer that references the account adjusts
// it inside the same database transaction as the insert.
type Account struct {
	AccountID    string          `json:"accountID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"` // native currency
	IsActive     bool            `json:"isActive"`
	AuditFields
}
