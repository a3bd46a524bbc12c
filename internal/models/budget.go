package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a row of the budgets table.
type Budget struct {
	BudgetID         int64           `db:"budget_id"`
	UserID           int64           `db:"user_id"`
	Name             string          `db:"name"`
	Amount           decimal.Decimal `db:"amount"`
	CurrencyID       int64           `db:"currency_id"`
	Period           string          `db:"period"`
	StartDate        time.Time       `db:"start_date"`
	EndDate          time.Time       `db:"end_date"`
	CategoryID       *int64          `db:"category_id"`
	WarningThreshold decimal.Decimal `db:"warning_threshold"`
	OverThreshold    decimal.Decimal `db:"over_threshold"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}

// BudgetCategory represents a row of the budget_categories table.
type BudgetCategory struct {
	BudgetCategoryID int64           `db:"budget_category_id"`
	BudgetID         int64           `db:"budget_id"`
	CategoryID       int64           `db:"category_id"`
	AllocatedAmount  decimal.Decimal `db:"allocated_amount"`
}
