// Package period derives budget windows from a start date and a period unit.
package period

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// EndDate returns the exclusive end of the budget window starting at start.
// Month and year steps clamp to the last day of the target month, so
// 2024-01-31 + 1 month is 2024-02-29 rather than rolling into March.
func EndDate(start time.Time, p domain.BudgetPeriod) (time.Time, error) {
	switch p {
	case domain.Daily:
		return start.AddDate(0, 0, 1), nil
	case domain.Weekly:
		return start.AddDate(0, 0, 7), nil
	case domain.Monthly:
		return addMonths(start, 1), nil
	case domain.Quarterly:
		return addMonths(start, 3), nil
	case domain.Yearly:
		return addMonths(start, 12), nil
	default:
		return time.Time{}, fmt.Errorf("%w: '%s'", apperrors.ErrInvalidPeriod, p)
	}
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
