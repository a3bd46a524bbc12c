package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the length of a budget window.
type BudgetPeriod string

const (
	Daily     BudgetPeriod = "DAILY"
	Weekly    BudgetPeriod = "WEEKLY"
	Monthly   BudgetPeriod = "MONTHLY"
	Quarterly BudgetPeriod = "QUARTERLY"
	Yearly    BudgetPeriod = "YEARLY"
)

// IsValid reports whether p is one of the known periods.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case Daily, Weekly, Monthly, Quarterly, Yearly:
		return true
	}
	return false
}

// Default alert thresholds, in percent of the budget amount.
var (
	DefaultWarningThreshold = decimal.NewFromInt(80)
	DefaultOverThreshold    = decimal.NewFromInt(100)
)

// Budget caps spending in one currency over a window.
// EndDate is always derived from StartDate and Period.
type Budget struct {
	BudgetID         int64            `json:"budgetID"`
	UserID           int64            `json:"userID"`
	Name             string           `json:"name"`
	Amount           decimal.Decimal  `json:"amount"`
	CurrencyID       int64            `json:"currencyID"`
	Period           BudgetPeriod     `json:"period"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          time.Time        `json:"endDate"`
	CategoryID       *int64           `json:"categoryID,omitempty"` // nil: not scoped to a single category
	WarningThreshold decimal.Decimal  `json:"warningThreshold"`
	OverThreshold    decimal.Decimal  `json:"overThreshold"`
	IsActive         bool             `json:"isActive"`
	Allocations      []BudgetCategory `json:"allocations,omitempty"`
	AuditFields
}

// Thresholds returns the warning and over-budget thresholds, falling back to
// the defaults when unset.
func (b Budget) Thresholds() (warning, over decimal.Decimal) {
	warning, over = b.WarningThreshold, b.OverThreshold
	if !warning.IsPositive() {
		warning = DefaultWarningThreshold
	}
	if !over.IsPositive() {
		over = DefaultOverThreshold
	}
	return warning, over
}

// BudgetCategory allocates part of a budget to one category. Allocations are not
// required to add up to the budget amount.
type BudgetCategory struct {
	BudgetCategoryID int64           `json:"budgetCategoryID"`
	BudgetID         int64           `json:"budgetID"`
	CategoryID       int64           `json:"categoryID"`
	AllocatedAmount  decimal.Decimal `json:"allocatedAmount"`
}
