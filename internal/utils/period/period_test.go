package period

import (
	"testing"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEndDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		period domain.BudgetPeriod
		want   time.Time
	}{
		{"daily", date(2024, 3, 10), domain.Daily, date(2024, 3, 11)},
		{"daily across month end", date(2024, 2, 29), domain.Daily, date(2024, 3, 1)},
		{"weekly", date(2024, 12, 28), domain.Weekly, date(2025, 1, 4)},
		{"monthly", date(2024, 3, 15), domain.Monthly, date(2024, 4, 15)},
		{"monthly from Jan 31 in a leap year", date(2024, 1, 31), domain.Monthly, date(2024, 2, 29)},
		{"monthly from Jan 31 in a common year", date(2023, 1, 31), domain.Monthly, date(2023, 2, 28)},
		{"monthly from Mar 31 to Apr 30", date(2024, 3, 31), domain.Monthly, date(2024, 4, 30)},
		{"monthly across year end", date(2024, 12, 31), domain.Monthly, date(2025, 1, 31)},
		{"quarterly", date(2024, 1, 1), domain.Quarterly, date(2024, 4, 1)},
		{"quarterly from Nov 30", date(2024, 11, 30), domain.Quarterly, date(2025, 2, 28)},
		{"yearly", date(2024, 6, 1), domain.Yearly, date(2025, 6, 1)},
		{"yearly from leap day", date(2024, 2, 29), domain.Yearly, date(2025, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EndDate(tt.start, tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndDate_AlwaysAfterStart(t *testing.T) {
	periods := []domain.BudgetPeriod{domain.Daily, domain.Weekly, domain.Monthly, domain.Quarterly, domain.Yearly}
	start := date(2023, 1, 1)
	for day := 0; day < 800; day++ {
		s := start.AddDate(0, 0, day)
		for _, p := range periods {
			end, err := EndDate(s, p)
			require.NoError(t, err)
			assert.True(t, end.After(s), "%s end %s not after %s", p, end, s)
		}
	}
}

func TestEndDate_PreservesTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 31, 9, 45, 0, 0, time.UTC)
	got, err := EndDate(start, domain.Monthly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 9, 45, 0, 0, time.UTC), got)
}

func TestEndDate_InvalidPeriod(t *testing.T) {
	_, err := EndDate(date(2024, 1, 1), domain.BudgetPeriod("FORTNIGHTLY"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)

	_, err = EndDate(date(2024, 1, 1), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)
}
