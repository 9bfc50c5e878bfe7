package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one row of the flat rate table: how many units of the
// base currency one unit of CurrencyCode is worth. The table is
// non-historical; updating a rate overwrites the previous value and does
// not touch stored base-amount snapshots.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"`
	RateToBase   decimal.Decimal `json:"rateToBase"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	UpdatedBy    string          `json:"updatedBy"`
}
