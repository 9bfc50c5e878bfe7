package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row of the expenses table.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	UserID        string          `db:"user_id"`
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency"`
	AmountBase    decimal.Decimal `db:"amount_base"`
	RateAssumed   bool            `db:"rate_assumed"`
	CategoryID    string          `db:"category_id"`
	AccountID     string          `db:"account_id"`
	Description   string          `db:"description"`
	PaymentMethod string          `db:"payment_method"`
	Vendor        string          `db:"vendor"`
	Source        string          `db:"source"`
	AuditFields
}

// Income represents a row of the income table.
type Income struct {
	IncomeID     string          `db:"income_id"`
	UserID       string          `db:"user_id"`
	Date         time.Time       `db:"date"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency"`
	AmountBase   decimal.Decimal `db:"amount_base"`
	RateAssumed  bool            `db:"rate_assumed"`
	CategoryID   string          `db:"category_id"`
	AccountID    string          `db:"account_id"`
	Source       string          `db:"source"`
	Notes        string          `db:"notes"`
	AuditFields
}

// Investment represents a row of the investments table.
type Investment struct {
	InvestmentID   string          `db:"investment_id"`
	UserID         string          `db:"user_id"`
	Date           time.Time       `db:"date"`
	Amount         decimal.Decimal `db:"amount"`
	CurrencyCode   string          `db:"currency"`
	AmountBase     decimal.Decimal `db:"amount_base"`
	RateAssumed    bool            `db:"rate_assumed"`
	InstrumentName string          `db:"instrument_name"`
	InvestmentType string          `db:"investment_type"`
	Action         string          `db:"action"`
	AccountID      string          `db:"account_id"`
	CategoryID     string          `db:"category_id"`
	Units          decimal.Decimal `db:"units"`
	PricePerUnit   decimal.Decimal `db:"price_per_unit"`
	Source         string          `db:"source"`
	AuditFields
}

// Transfer represents a row of the transfers table.
type Transfer struct {
	TransferID           string          `db:"transfer_id"`
	UserID               string          `db:"user_id"`
	Date                 time.Time       `db:"date"`
	Amount               decimal.Decimal `db:"amount"`
	SourceAccountID      string          `db:"source_account_id"`
	DestinationAccountID string          `db:"destination_account_id"`
	DestinationAmount    decimal.Decimal `db:"destination_amount"`
	ExchangeRate         decimal.Decimal `db:"exchange_rate"`
	Notes                string          `db:"notes"`
	AuditFields
}
