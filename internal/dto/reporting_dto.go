package dto

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// ReportRangeQuery is the optional date range of a report. Dates are YYYY-MM-DD.
type ReportRangeQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// BudgetSummaryResponse is the API form of a budget summary.
type BudgetSummaryResponse struct {
	domain.BudgetSummary
	CurrencyCode string `json:"currencyCode"`
}

// TransactionSummaryResponse is the API form of a transaction summary report.
// Dates are echoed as requested, null when absent.
type TransactionSummaryResponse struct {
	domain.TransactionSummaryReport
}

// ToBudgetSummaryResponse attaches the budget currency code to a summary.
func ToBudgetSummaryResponse(s *domain.BudgetSummary, currencyCode string) BudgetSummaryResponse {
	return BudgetSummaryResponse{BudgetSummary: *s, CurrencyCode: currencyCode}
}

// ToTransactionSummaryResponse wraps a report, normalising nil breakdowns to empty lists.
func ToTransactionSummaryResponse(r *domain.TransactionSummaryReport) TransactionSummaryResponse {
	out := *r
	if out.TopIncomeCategories == nil {
		out.TopIncomeCategories = []domain.CategoryTotal{}
	}
	if out.TopExpenseCategories == nil {
		out.TopExpenseCategories = []domain.CategoryTotal{}
	}
	return TransactionSummaryResponse{TransactionSummaryReport: out}
}
