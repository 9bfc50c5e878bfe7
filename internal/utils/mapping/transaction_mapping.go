package mapping

import (
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/models"
)

// ToModelExpense converts a domain expense to its storage form.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		UserID:        d.UserID,
		Date:          d.Date,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		AmountBase:    d.AmountBase,
		RateAssumed:   d.RateAssumed,
		CategoryID:    d.CategoryID,
		AccountID:     d.AccountID,
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
		Vendor:        d.Vendor,
		Source:        d.Source,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a stored expense back to the domain form.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		UserID:        m.UserID,
		Date:          m.Date,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		AmountBase:    m.AmountBase,
		RateAssumed:   m.RateAssumed,
		CategoryID:    m.CategoryID,
		AccountID:     m.AccountID,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		Vendor:        m.Vendor,
		Source:        m.Source,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelIncome converts a domain income record to its storage form.
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:     d.IncomeID,
		UserID:       d.UserID,
		Date:         d.Date,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		AmountBase:   d.AmountBase,
		RateAssumed:  d.RateAssumed,
		CategoryID:   d.CategoryID,
		AccountID:    d.AccountID,
		Source:       d.Source,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a stored income record back to the domain form.
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:     m.IncomeID,
		UserID:       m.UserID,
		Date:         m.Date,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		AmountBase:   m.AmountBase,
		RateAssumed:  m.RateAssumed,
		CategoryID:   m.CategoryID,
		AccountID:    m.AccountID,
		Source:       m.Source,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvestment converts a domain investment to its storage form.
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:   d.InvestmentID,
		UserID:         d.UserID,
		Date:           d.Date,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		AmountBase:     d.AmountBase,
		RateAssumed:    d.RateAssumed,
		InstrumentName: d.InstrumentName,
		InvestmentType: d.InvestmentType,
		Action:         string(d.Action),
		AccountID:      d.AccountID,
		CategoryID:     d.CategoryID,
		Units:          d.Units,
		PricePerUnit:   d.PricePerUnit,
		Source:         d.Source,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestment converts a stored investment back to the domain form.
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:   m.InvestmentID,
		UserID:         m.UserID,
		Date:           m.Date,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		AmountBase:     m.AmountBase,
		RateAssumed:    m.RateAssumed,
		InstrumentName: m.InstrumentName,
		InvestmentType: m.InvestmentType,
		Action:         domain.InvestmentAction(m.Action),
		AccountID:      m.AccountID,
		CategoryID:     m.CategoryID,
		Units:          m.Units,
		PricePerUnit:   m.PricePerUnit,
		Source:         m.Source,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransfer converts a domain transfer to its storage form.
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:           d.TransferID,
		UserID:               d.UserID,
		Date:                 d.Date,
		Amount:               d.Amount,
		SourceAccountID:      d.SourceAccountID,
		DestinationAccountID: d.DestinationAccountID,
		DestinationAmount:    d.DestinationAmount,
		ExchangeRate:         d.ExchangeRate,
		Notes:                d.Notes,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransfer converts a stored transfer back to the domain form.
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:           m.TransferID,
		UserID:               m.UserID,
		Date:                 m.Date,
		Amount:               m.Amount,
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		DestinationAmount:    m.DestinationAmount,
		ExchangeRate:         m.ExchangeRate,
		Notes:                m.Notes,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
