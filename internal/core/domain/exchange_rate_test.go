package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeRate_IsUsableFor(t *testing.T) {
	txnDate := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	base := domain.ExchangeRate{
		ExchangeRateID: 1,
		FromCurrencyID: 2,
		ToCurrencyID:   1,
		Rate:           decimal.RequireFromString("1.0850"),
		EffectiveDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}

	tests := []struct {
		name   string
		modify func(r *domain.ExchangeRate)
		from   int64
		to     int64
		want   bool
	}{
		{name: "active rate effective before the transaction", from: 2, to: 1, want: true},
		{
			name:   "effective on the transaction day",
			modify: func(r *domain.ExchangeRate) { r.EffectiveDate = time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC) },
			from:   2, to: 1, want: true,
		},
		{
			name:   "effective after the transaction day",
			modify: func(r *domain.ExchangeRate) { r.EffectiveDate = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC) },
			from:   2, to: 1, want: false,
		},
		{
			name:   "inactive",
			modify: func(r *domain.ExchangeRate) { r.IsActive = false },
			from:   2, to: 1, want: false,
		},
		{
			name:   "non-positive rate",
			modify: func(r *domain.ExchangeRate) { r.Rate = decimal.Zero },
			from:   2, to: 1, want: false,
		},
		{name: "inverse pair never matches", from: 1, to: 2, want: false},
		{name: "different target currency", from: 2, to: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			if tt.modify != nil {
				tt.modify(&r)
			}
			assert.Equal(t, tt.want, r.IsUsableFor(tt.from, tt.to, txnDate))
		})
	}
}

func TestIdentityRate(t *testing.T) {
	at := time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC)
	r := domain.IdentityRate(7, at)

	assert.True(t, r.Rate.Equal(decimal.NewFromInt(1)))
	assert.True(t, r.IsUsableFor(7, 7, at))
	assert.Zero(t, r.ExchangeRateID)
}
