package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BudgetAggregator computes how much of a budget has been spent. It keeps no
// state and is safe for concurrent use.
type BudgetAggregator struct {
	converter portssvc.CurrencyConverterSvc
}

// NewBudgetAggregator creates a BudgetAggregator that converts through converter.
func NewBudgetAggregator(converter portssvc.CurrencyConverterSvc) *BudgetAggregator {
	return &BudgetAggregator{converter: converter}
}

var _ portssvc.BudgetAggregatorSvc = (*BudgetAggregator)(nil)

// Summarize filters candidates down to the budget's expenses and totals them in
// the budget currency. Both window ends are inclusive. A single failed
// conversion fails the whole summary.
func (a *BudgetAggregator) Summarize(ctx context.Context, budget domain.Budget, candidates []domain.Transaction) (*domain.BudgetSummary, error) {
	allocated := make(map[int64]struct{}, len(budget.Allocations))
	for _, alloc := range budget.Allocations {
		allocated[alloc.CategoryID] = struct{}{}
	}

	start := domain.DateOnly(budget.StartDate)
	end := domain.DateOnly(budget.EndDate)

	spent := decimal.Zero
	spentByCategory := make(map[int64]decimal.Decimal, len(allocated))
	count := 0

	for _, txn := range candidates {
		if txn.UserID != budget.UserID || txn.Type != domain.Expense {
			continue
		}
		if !matchesBudgetCategory(budget, allocated, txn.CategoryID) {
			continue
		}
		day := domain.DateOnly(txn.Date)
		if day.Before(start) || day.After(end) {
			continue
		}

		contribution, err := a.contribution(ctx, txn, budget.CurrencyID)
		if err != nil {
			return nil, fmt.Errorf("failed to convert transaction %d for budget %d: %w", txn.TransactionID, budget.BudgetID, err)
		}
		spent = spent.Add(contribution)
		if _, ok := allocated[txn.CategoryID]; ok {
			spentByCategory[txn.CategoryID] = spentByCategory[txn.CategoryID].Add(contribution)
		}
		count++
	}

	warning, over := budget.Thresholds()
	// Tiers are read from the reported percentage.
	pct := percentageOf(spent, budget.Amount).Round(2)

	summary := &domain.BudgetSummary{
		BudgetID:         budget.BudgetID,
		BudgetName:       budget.Name,
		CurrencyID:       budget.CurrencyID,
		BudgetAmount:     budget.Amount.Round(2),
		SpentAmount:      spent.Round(2),
		RemainingAmount:  budget.Amount.Sub(spent).Round(2),
		PercentageSpent:  pct,
		Status:           statusFor(pct, warning, over),
		AlertAt80:        pct.GreaterThanOrEqual(warning) && pct.LessThan(over),
		AlertAt100:       pct.GreaterThanOrEqual(over),
		StartDate:        budget.StartDate,
		EndDate:          budget.EndDate,
		TransactionCount: count,
	}

	if budget.CategoryID == nil && len(budget.Allocations) > 0 {
		summary.Categories = make([]domain.BudgetCategorySummary, 0, len(budget.Allocations))
		for _, alloc := range budget.Allocations {
			catSpent := spentByCategory[alloc.CategoryID]
			summary.Categories = append(summary.Categories, domain.BudgetCategorySummary{
				CategoryID:      alloc.CategoryID,
				AllocatedAmount: alloc.AllocatedAmount.Round(2),
				SpentAmount:     catSpent.Round(2),
				RemainingAmount: alloc.AllocatedAmount.Sub(catSpent).Round(2),
				PercentageSpent: percentageOf(catSpent, alloc.AllocatedAmount).Round(2),
			})
		}
	}

	return summary, nil
}

// contribution is the transaction's value in the budget currency. Foreign
// transactions go through their stored home-currency value, never the raw amount.
func (a *BudgetAggregator) contribution(ctx context.Context, txn domain.Transaction, budgetCurrencyID int64) (decimal.Decimal, error) {
	if txn.CurrencyID == budgetCurrencyID {
		return txn.Amount, nil
	}
	return a.converter.Convert(ctx, txn.ConvertedAmount, txn.ConvertedCurrencyID, budgetCurrencyID)
}

func matchesBudgetCategory(budget domain.Budget, allocated map[int64]struct{}, categoryID int64) bool {
	if budget.CategoryID != nil {
		return *budget.CategoryID == categoryID
	}
	if len(allocated) > 0 {
		_, ok := allocated[categoryID]
		return ok
	}
	return true
}

func percentageOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

func statusFor(pct, warning, over decimal.Decimal) domain.BudgetStatus {
	switch {
	case pct.GreaterThanOrEqual(over):
		return domain.OverBudget
	case pct.GreaterThanOrEqual(warning):
		return domain.Warning
	default:
		return domain.OnTrack
	}
}
