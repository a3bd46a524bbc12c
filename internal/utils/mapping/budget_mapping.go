package mapping

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget. Allocations are stored separately.
func ToModelBudget(d domain.Budget) models.Budget {
	warning, over := d.Thresholds()
	return models.Budget{
		BudgetID:         d.BudgetID,
		UserID:           d.UserID,
		Name:             d.Name,
		Amount:           d.Amount,
		CurrencyID:       d.CurrencyID,
		Period:           string(d.Period),
		StartDate:        domain.DateOnly(d.StartDate),
		EndDate:          domain.DateOnly(d.EndDate),
		CategoryID:       d.CategoryID,
		WarningThreshold: warning,
		OverThreshold:    over,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget and its allocations to a domain Budget
func ToDomainBudget(m models.Budget, allocations []models.BudgetCategory) domain.Budget {
	return domain.Budget{
		BudgetID:         m.BudgetID,
		UserID:           m.UserID,
		Name:             m.Name,
		Amount:           m.Amount,
		CurrencyID:       m.CurrencyID,
		Period:           domain.BudgetPeriod(m.Period),
		StartDate:        domain.DateOnly(m.StartDate),
		EndDate:          domain.DateOnly(m.EndDate),
		CategoryID:       m.CategoryID,
		WarningThreshold: m.WarningThreshold,
		OverThreshold:    m.OverThreshold,
		IsActive:         m.IsActive,
		Allocations:      toDomainSlice(allocations, ToDomainBudgetCategory),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetCategory converts a model BudgetCategory to a domain BudgetCategory
func ToDomainBudgetCategory(m models.BudgetCategory) domain.BudgetCategory {
	return domain.BudgetCategory{
		BudgetCategoryID: m.BudgetCategoryID,
		BudgetID:         m.BudgetID,
		CategoryID:       m.CategoryID,
		AllocatedAmount:  m.AllocatedAmount,
	}
}
