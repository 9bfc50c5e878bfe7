package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// OpeningBalance is optional and denominated in the account's currency.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	AccountType    string          `json:"accountType" binding:"required,oneof=bank credit_card wallet cash investment"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,currency"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	AccountType  string          `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		Name:         acc.Name,
		AccountType:  string(acc.AccountType),
		CurrencyCode: acc.CurrencyCode,
		Balance:      acc.Balance,
		IsActive:     acc.IsActive,
		CreatedAt:    acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
