package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expenses, income records, investments and transfers are append-only:
// once persisted they are never updated or deleted. Corrections are made
// by recording a compensating entry.

// Expense is money leaving an account.
// AmountBase is the EUR snapshot taken at record time with the rate table
// in effect; it is never re-derived when rates change later. RateAssumed
// marks records whose currency was missing from the rate table and was
// treated as base-equivalent.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	UserID        string          `json:"userID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	AmountBase    decimal.Decimal `json:"amountBase"`
	RateAssumed   bool            `json:"rateAssumed"`
	CategoryID    string          `json:"categoryID"`
	AccountID     string          `json:"accountID"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Vendor        string          `json:"vendor"`
	Source        string          `json:"source"` // "manual", "import"
	AuditFields
}

// Income is money entering an account.
type Income struct {
	IncomeID     string          `json:"incomeID"`
	UserID       string          `json:"userID"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	AmountBase   decimal.Decimal `json:"amountBase"`
	RateAssumed  bool            `json:"rateAssumed"`
	CategoryID   string          `json:"categoryID"`
	AccountID    string          `json:"accountID"`
	Source       string          `json:"source"`
	Notes        string          `json:"notes"`
	AuditFields
}

// InvestmentAction distinguishes buys from sells.
type InvestmentAction string

const (
	InvestmentBuy  InvestmentAction = "buy"
	InvestmentSell InvestmentAction = "sell"
)

// Investment records a buy or sell of an instrument at cost basis.
// Investments are never revalued after purchase; net worth carries them
// at their recorded AmountBase.
type Investment struct {
	InvestmentID   string           `json:"investmentID"`
	UserID         string           `json:"userID"`
	Date           time.Time        `json:"date"`
	Amount         decimal.Decimal  `json:"amount"`
	CurrencyCode   string           `json:"currencyCode"`
	AmountBase     decimal.Decimal  `json:"amountBase"`
	RateAssumed    bool             `json:"rateAssumed"`
	InstrumentName string           `json:"instrumentName"`
	InvestmentType string           `json:"investmentType"` // "stock", "etf", "crypto", ...
	Action         InvestmentAction `json:"action"`
	AccountID      string           `json:"accountID"`
	CategoryID     string           `json:"categoryID"`
	Units          decimal.Decimal  `json:"units"`
	PricePerUnit   decimal.Decimal  `json:"pricePerUnit"`
	Source         string           `json:"source"`
	AuditFields
}

// Transfer moves money between two accounts, possibly across currencies.
// Amount is denominated in the source account's currency and
// DestinationAmount in the destination account's currency. ExchangeRate is
// the rate declared for this transfer (manually entered or implied), which
// may differ from the global rate table; balance adjustments use the two
// declared amounts directly, never a base-currency round-trip.
type Transfer struct {
	TransferID           string          `json:"transferID"`
	UserID               string          `json:"userID"`
	Date                 time.Time       `json:"date"`
	Amount               decimal.Decimal `json:"amount"`
	SourceAccountID      string          `json:"sourceAccountID"`
	DestinationAccountID string          `json:"destinationAccountID"`
	DestinationAmount    decimal.Decimal `json:"destinationAmount"`
	ExchangeRate         decimal.Decimal `json:"exchangeRate"`
	Notes                string          `json:"notes"`
	AuditFields
}
