package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a row of the exchange_rates table.
type ExchangeRate struct {
	CurrencyCode string          `db:"currency_code"`
	RateToBase   decimal.Decimal `db:"rate_to_base"`
	UpdatedAt    time.Time       `db:"updated_at"`
	UpdatedBy    string          `db:"updated_by"`
}
