package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus is the alert tier of a budget.
type BudgetStatus string

const (
	OnTrack    BudgetStatus = "OnTrack"
	Warning    BudgetStatus = "Warning"
	OverBudget BudgetStatus = "OverBudget"
)

// BudgetSummary is the spend position of a budget. Amounts are in the budget's
// currency and rounded to two decimals.
type BudgetSummary struct {
	BudgetID         int64                   `json:"budgetID"`
	BudgetName       string                  `json:"budgetName"`
	CurrencyID       int64                   `json:"currencyID"`
	BudgetAmount     decimal.Decimal         `json:"budgetAmount"`
	SpentAmount      decimal.Decimal         `json:"spentAmount"`
	RemainingAmount  decimal.Decimal         `json:"remainingAmount"`
	PercentageSpent  decimal.Decimal         `json:"percentageSpent"`
	Status           BudgetStatus            `json:"status"`
	AlertAt80        bool                    `json:"alertAt80"`
	AlertAt100       bool                    `json:"alertAt100"`
	StartDate        time.Time               `json:"startDate"`
	EndDate          time.Time               `json:"endDate"`
	TransactionCount int                     `json:"transactionCount"`
	Categories       []BudgetCategorySummary `json:"categories,omitempty"`
}

// BudgetCategorySummary is the spend position of one allocation of a budget.
type BudgetCategorySummary struct {
	CategoryID      int64           `json:"categoryID"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	PercentageSpent decimal.Decimal `json:"percentageSpent"`
}

// CategoryTotal is one row of a per-type category breakdown.
type CategoryTotal struct {
	CategoryID int64           `json:"categoryID"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Count      int             `json:"count"`
}

// TransactionSummaryReport rolls a user's transactions up by type and category
// in the home currency.
type TransactionSummaryReport struct {
	CurrencyCode         string          `json:"currencyCode"`
	CurrencySymbol       string          `json:"currencySymbol"`
	From                 *time.Time      `json:"from"`
	To                   *time.Time      `json:"to"`
	TotalIncome          decimal.Decimal `json:"totalIncome"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses"`
	NetAmount            decimal.Decimal `json:"netAmount"`
	TransactionCount     int             `json:"transactionCount"`
	TopIncomeCategories  []CategoryTotal `json:"topIncomeCategories"`
	TopExpenseCategories []CategoryTotal `json:"topExpenseCategories"`
}

// ConversionQuote is the result of converting an amount for display.
// ConvertedAmount is unrounded.
type ConversionQuote struct {
	From            Currency
	To              Currency
	Amount          decimal.Decimal
	Rate            decimal.Decimal
	ConvertedAmount decimal.Decimal
}
