package services

import (
	"sort"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// TopCategoryLimit caps each per-type breakdown of a transaction summary.
const TopCategoryLimit = 5

// TransactionSummaryAggregator rolls transactions up using their stored
// home-currency amounts. It performs no conversion of its own.
type TransactionSummaryAggregator struct{}

// NewTransactionSummaryAggregator creates a TransactionSummaryAggregator.
func NewTransactionSummaryAggregator() *TransactionSummaryAggregator {
	return &TransactionSummaryAggregator{}
}

var _ portssvc.TransactionSummaryAggregatorSvc = (*TransactionSummaryAggregator)(nil)

type categoryKey struct {
	id    int64
	label domain.CategoryLabel
}

type categoryBucket struct {
	key    categoryKey
	amount decimal.Decimal
	count  int
}

// Summarize totals txns by type and category. from and to are echoed as given.
func (a *TransactionSummaryAggregator) Summarize(txns []domain.Transaction, home domain.Currency, from, to *time.Time) domain.TransactionSummaryReport {
	income, expenses := decimal.Zero, decimal.Zero
	var incomeBuckets, expenseBuckets []*categoryBucket
	incomeIdx := make(map[categoryKey]*categoryBucket)
	expenseIdx := make(map[categoryKey]*categoryBucket)

	for _, txn := range txns {
		key := categoryKey{id: txn.CategoryID, label: txn.Category}
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.ConvertedAmount)
			incomeBuckets = addToBucket(incomeIdx, incomeBuckets, key, txn.ConvertedAmount)
		case domain.Expense:
			expenses = expenses.Add(txn.ConvertedAmount)
			expenseBuckets = addToBucket(expenseIdx, expenseBuckets, key, txn.ConvertedAmount)
		}
	}

	return domain.TransactionSummaryReport{
		CurrencyCode:         home.Code,
		CurrencySymbol:       home.Symbol,
		From:                 from,
		To:                   to,
		TotalIncome:          income.Round(2),
		TotalExpenses:        expenses.Round(2),
		NetAmount:            income.Sub(expenses).Round(2),
		TransactionCount:     len(txns),
		TopIncomeCategories:  topCategories(incomeBuckets, income),
		TopExpenseCategories: topCategories(expenseBuckets, expenses),
	}
}

// addToBucket keeps buckets in first-seen order so the stable sort breaks ties by input order.
func addToBucket(idx map[categoryKey]*categoryBucket, buckets []*categoryBucket, key categoryKey, amount decimal.Decimal) []*categoryBucket {
	b, ok := idx[key]
	if !ok {
		b = &categoryBucket{key: key, amount: decimal.Zero}
		idx[key] = b
		buckets = append(buckets, b)
	}
	b.amount = b.amount.Add(amount)
	b.count++
	return buckets
}

// topCategories truncates percentages to two decimals so a breakdown never sums past 100.
func topCategories(buckets []*categoryBucket, total decimal.Decimal) []domain.CategoryTotal {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].amount.GreaterThan(buckets[j].amount)
	})
	if len(buckets) > TopCategoryLimit {
		buckets = buckets[:TopCategoryLimit]
	}

	out := make([]domain.CategoryTotal, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, domain.CategoryTotal{
			CategoryID: b.key.id,
			Name:       b.key.label.Name,
			Color:      b.key.label.Color,
			Icon:       b.key.label.Icon,
			Amount:     b.amount.Round(2),
			Percentage: percentageOf(b.amount, total).Truncate(2),
			Count:      b.count,
		})
	}
	return out
}
