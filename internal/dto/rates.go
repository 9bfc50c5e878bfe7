package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertRateRequest sets or replaces a currency's rate into the base
// currency.
type UpsertRateRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,currency"`
	RateToBase   decimal.Decimal `json:"rateToBase" binding:"required"`
}

// ExchangeRateResponse defines the data returned for one rate-table row.
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	RateToBase   decimal.Decimal `json:"rateToBase"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode: r.CurrencyCode,
		RateToBase:   r.RateToBase,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts rate rows to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		res[i] = ToExchangeRateResponse(&rates[i])
	}
	return res
}
