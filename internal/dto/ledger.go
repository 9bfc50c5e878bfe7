package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
// Date is "YYYY-MM-DD"; the amount is in the given currency.
type CreateExpenseRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,currency"`
	CategoryID    string          `json:"categoryID" binding:"required"`
	AccountID     string          `json:"accountID" binding:"required"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Vendor        string          `json:"vendor"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	AmountBase    decimal.Decimal `json:"amountBase"`
	RateAssumed   bool            `json:"rateAssumed,omitempty"`
	CategoryID    string          `json:"categoryID"`
	AccountID     string          `json:"accountID"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Vendor        string          `json:"vendor,omitempty"`
	Source        string          `json:"source"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Date:          e.Date.Format("2006-01-02"),
		Amount:        e.Amount,
		CurrencyCode:  e.CurrencyCode,
		AmountBase:    e.AmountBase,
		RateAssumed:   e.RateAssumed,
		CategoryID:    e.CategoryID,
		AccountID:     e.AccountID,
		Description:   e.Description,
		PaymentMethod: e.PaymentMethod,
		Vendor:        e.Vendor,
		Source:        e.Source,
		CreatedAt:     e.CreatedAt,
	}
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Month      string `form:"month" binding:"omitempty,datetime=2006-01"`
	CategoryID string `form:"categoryID"`
	Limit      int    `form:"limit,default=50"`
	NextToken  string `form:"nextToken"`
}

// ListExpensesResponse wraps one page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken string            `json:"nextToken,omitempty"`
}

// CreateIncomeRequest defines the data needed to record income.
type CreateIncomeRequest struct {
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currency"`
	CategoryID   string          `json:"categoryID" binding:"required"`
	AccountID    string          `json:"accountID" binding:"required"`
	Source       string          `json:"source"`
	Notes        string          `json:"notes"`
}

// IncomeResponse defines the data returned for an income record.
type IncomeResponse struct {
	IncomeID     string          `json:"incomeID"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	AmountBase   decimal.Decimal `json:"amountBase"`
	RateAssumed  bool            `json:"rateAssumed,omitempty"`
	CategoryID   string          `json:"categoryID"`
	AccountID    string          `json:"accountID"`
	Source       string          `json:"source,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToIncomeResponse converts a domain.Income to its response DTO.
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:     in.IncomeID,
		Date:         in.Date.Format("2006-01-02"),
		Amount:       in.Amount,
		CurrencyCode: in.CurrencyCode,
		AmountBase:   in.AmountBase,
		RateAssumed:  in.RateAssumed,
		CategoryID:   in.CategoryID,
		AccountID:    in.AccountID,
		Source:       in.Source,
		Notes:        in.Notes,
		CreatedAt:    in.CreatedAt,
	}
}

// CreateInvestmentRequest defines the data needed to record an
// investment buy or sell.
type CreateInvestmentRequest struct {
	Date           string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,currency"`
	InstrumentName string          `json:"instrumentName" binding:"required"`
	InvestmentType string          `json:"investmentType" binding:"required"`
	Action         string          `json:"action" binding:"required,oneof=buy sell"`
	AccountID      string          `json:"accountID" binding:"required"`
	CategoryID     string          `json:"categoryID" binding:"required"`
	Units          decimal.Decimal `json:"units"`
	PricePerUnit   decimal.Decimal `json:"pricePerUnit"`
}

// InvestmentResponse defines the data returned for an investment.
type InvestmentResponse struct {
	InvestmentID   string          `json:"investmentID"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	AmountBase     decimal.Decimal `json:"amountBase"`
	RateAssumed    bool            `json:"rateAssumed,omitempty"`
	InstrumentName string          `json:"instrumentName"`
	InvestmentType string          `json:"investmentType"`
	Action         string          `json:"action"`
	AccountID      string          `json:"accountID"`
	CategoryID     string          `json:"categoryID"`
	Units          decimal.Decimal `json:"units"`
	PricePerUnit   decimal.Decimal `json:"pricePerUnit"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToInvestmentResponse converts a domain.Investment to its response DTO.
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:   inv.InvestmentID,
		Date:           inv.Date.Format("2006-01-02"),
		Amount:         inv.Amount,
		CurrencyCode:   inv.CurrencyCode,
		AmountBase:     inv.AmountBase,
		RateAssumed:    inv.RateAssumed,
		InstrumentName: inv.InstrumentName,
		InvestmentType: inv.InvestmentType,
		Action:         string(inv.Action),
		AccountID:      inv.AccountID,
		CategoryID:     inv.CategoryID,
		Units:          inv.Units,
		PricePerUnit:   inv.PricePerUnit,
		CreatedAt:      inv.CreatedAt,
	}
}

// CreateTransferRequest defines the data needed to record a transfer.
// Amount is in the source account's currency. DestinationAmount and
// ExchangeRate are optional for same-currency transfers; for
// cross-currency transfers the destination amount must be given (the
// rate is derived when omitted).
type CreateTransferRequest struct {
	Date                 string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	SourceAccountID      string          `json:"sourceAccountID" binding:"required"`
	DestinationAccountID string          `json:"destinationAccountID" binding:"required"`
	DestinationAmount    decimal.Decimal `json:"destinationAmount"`
	ExchangeRate         decimal.Decimal `json:"exchangeRate"`
	Notes                string          `json:"notes"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID           string          `json:"transferID"`
	Date                 string          `json:"date"`
	Amount               decimal.Decimal `json:"amount"`
	SourceAccountID      string          `json:"sourceAccountID"`
	DestinationAccountID string          `json:"destinationAccountID"`
	DestinationAmount    decimal.Decimal `json:"destinationAmount"`
	ExchangeRate         decimal.Decimal `json:"exchangeRate"`
	Notes                string          `json:"notes,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// ToTransferResponse converts a domain.Transfer to its response DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:           t.TransferID,
		Date:                 t.Date.Format("2006-01-02"),
		Amount:               t.Amount,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		DestinationAmount:    t.DestinationAmount,
		ExchangeRate:         t.ExchangeRate,
		Notes:                t.Notes,
		CreatedAt:            t.CreatedAt,
	}
}
