package mapping

import (
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/models"
)

// ToModelCategory converts a domain category to its storage form.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		UserID:      d.UserID,
		Name:        d.Name,
		Type:        string(d.Type),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a stored category back to the domain form.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        domain.CategoryType(m.Type),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudget converts a domain budget to its storage form.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		UserID:      d.UserID,
		CategoryID:  d.CategoryID,
		Month:       d.Month,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a stored budget back to the domain form.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Month:       m.Month,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExchangeRate converts a stored rate row back to the domain form.
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		CurrencyCode: m.CurrencyCode,
		RateToBase:   m.RateToBase,
		UpdatedAt:    m.UpdatedAt,
		UpdatedBy:    m.UpdatedBy,
	}
}

// ToDomainUser converts a stored user back to the domain form.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:             m.UserID,
		Email:              m.Email,
		Name:               m.Name,
		PasswordHash:       m.PasswordHash,
		AuthProvider:       domain.AuthProvider(m.AuthProvider),
		DisplayCurrency:    m.DisplayCurrency,
		RefreshTokenHash:   m.RefreshTokenHash,
		RefreshTokenExpiry: m.RefreshTokenExpiry,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUser converts a domain user to its storage form.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:             d.UserID,
		Email:              d.Email,
		Name:               d.Name,
		PasswordHash:       d.PasswordHash,
		AuthProvider:       string(d.AuthProvider),
		DisplayCurrency:    d.DisplayCurrency,
		RefreshTokenHash:   d.RefreshTokenHash,
		RefreshTokenExpiry: d.RefreshTokenExpiry,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}
