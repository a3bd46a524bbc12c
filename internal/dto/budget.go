package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
// The end date is always derived from the start date and period.
type CreateBudgetRequest struct {
	Name             string           `json:"name" binding:"required,max=100"`
	Amount           decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode     string           `json:"currencyCode" binding:"required,len=3,uppercase"`
	Period           string           `json:"period" binding:"required,budget_period"`
	StartDate        time.Time        `json:"startDate" binding:"required"`
	CategoryID       *int64           `json:"categoryID" binding:"omitempty,gt=0"`
	WarningThreshold *decimal.Decimal `json:"warningThreshold"`
	OverThreshold    *decimal.Decimal `json:"overThreshold"`
}

// UpdateBudgetRequest carries the fields to change; nil fields are kept.
type UpdateBudgetRequest struct {
	Name             *string          `json:"name" binding:"omitempty,max=100"`
	Amount           *decimal.Decimal `json:"amount"`
	CurrencyCode     *string          `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
	Period           *string          `json:"period" binding:"omitempty,budget_period"`
	StartDate        *time.Time       `json:"startDate"`
	CategoryID       *int64           `json:"categoryID" binding:"omitempty,gte=0"` // 0 clears the scope
	WarningThreshold *decimal.Decimal `json:"warningThreshold"`
	OverThreshold    *decimal.Decimal `json:"overThreshold"`
	IsActive         *bool            `json:"isActive"`
}

// BudgetAllocationRequest allocates part of a budget to a category.
type BudgetAllocationRequest struct {
	CategoryID      int64           `json:"categoryID" binding:"required,gt=0"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" binding:"required"`
}

// SetBudgetCategoriesRequest replaces all allocations of a budget.
type SetBudgetCategoriesRequest struct {
	Allocations []BudgetAllocationRequest `json:"allocations" binding:"dive"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID         int64                   `json:"budgetID"`
	Name             string                  `json:"name"`
	Amount           decimal.Decimal         `json:"amount"`
	CurrencyID       int64                   `json:"currencyID"`
	Period           string                  `json:"period"`
	StartDate        time.Time               `json:"startDate"`
	EndDate          time.Time               `json:"endDate"`
	CategoryID       *int64                  `json:"categoryID,omitempty"`
	WarningThreshold decimal.Decimal         `json:"warningThreshold"`
	OverThreshold    decimal.Decimal         `json:"overThreshold"`
	IsActive         bool                    `json:"isActive"`
	Allocations      []domain.BudgetCategory `json:"allocations"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	allocations := b.Allocations
	if allocations == nil {
		allocations = []domain.BudgetCategory{}
	}
	return BudgetResponse{
		BudgetID:         b.BudgetID,
		Name:             b.Name,
		Amount:           b.Amount,
		CurrencyID:       b.CurrencyID,
		Period:           string(b.Period),
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		CategoryID:       b.CategoryID,
		WarningThreshold: b.WarningThreshold,
		OverThreshold:    b.OverThreshold,
		IsActive:         b.IsActive,
		Allocations:      allocations,
	}
}

// ToListBudgetResponse converts budgets to their response DTOs.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}
