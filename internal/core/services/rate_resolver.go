package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// RateResolver picks the current rate for an ordered currency pair from storage.
// Rates are directional: a stored A->B rate is never inverted to answer B->A,
// and no intermediate currency is ever chained through.
type RateResolver struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
	now      func() time.Time
}

// RateResolverOption is a functional option for configuring the rate resolver
type RateResolverOption func(*RateResolver)

// WithResolverClock overrides the clock used to stamp identity rates.
func WithResolverClock(now func() time.Time) RateResolverOption {
	return func(r *RateResolver) {
		r.now = now
	}
}

// NewRateResolver creates a RateResolver backed by the given store.
func NewRateResolver(rateRepo portsrepo.ExchangeRateReader, options ...RateResolverOption) *RateResolver {
	r := &RateResolver{rateRepo: rateRepo, now: time.Now}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portssvc.RateResolverSvc = (*RateResolver)(nil)

// Resolve returns the rate of the current record for (from, to).
func (r *RateResolver) Resolve(ctx context.Context, fromCurrencyID, toCurrencyID int64) (decimal.Decimal, error) {
	if fromCurrencyID == toCurrencyID {
		return decimal.NewFromInt(1), nil
	}
	rate, err := r.CurrentRate(ctx, fromCurrencyID, toCurrencyID)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Rate, nil
}

// CurrentRate returns the active record with the latest effective date for the
// exact pair. Ties on the effective date go to the most recently created record.
func (r *RateResolver) CurrentRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error) {
	if fromCurrencyID == toCurrencyID {
		identity := domain.IdentityRate(fromCurrencyID, r.now())
		return &identity, nil
	}

	rates, err := r.rateRepo.FindActiveRates(ctx, fromCurrencyID, toCurrencyID)
	if err != nil {
		r.LogError(ctx, err, "Failed to load exchange rates",
			slog.Int64("from_currency_id", fromCurrencyID),
			slog.Int64("to_currency_id", toCurrencyID))
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	current := selectCurrent(rates, fromCurrencyID, toCurrencyID)
	if current == nil {
		return nil, fmt.Errorf("%w: no active rate from currency %d to %d", apperrors.ErrRateNotFound, fromCurrencyID, toCurrencyID)
	}
	return current, nil
}

// Exists reports whether Resolve would find a rate.
func (r *RateResolver) Exists(ctx context.Context, fromCurrencyID, toCurrencyID int64) (bool, error) {
	if fromCurrencyID == toCurrencyID {
		return true, nil
	}
	rates, err := r.rateRepo.FindActiveRates(ctx, fromCurrencyID, toCurrencyID)
	if err != nil {
		return false, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	return selectCurrent(rates, fromCurrencyID, toCurrencyID) != nil, nil
}

// ListReachableCurrencies returns the distinct target currencies of active
// rates leaving fromCurrencyID, ascending. fromCurrencyID itself is not listed.
func (r *RateResolver) ListReachableCurrencies(ctx context.Context, fromCurrencyID int64) ([]int64, error) {
	rates, err := r.rateRepo.FindActiveRatesFrom(ctx, fromCurrencyID)
	if err != nil {
		r.LogError(ctx, err, "Failed to load outgoing exchange rates",
			slog.Int64("from_currency_id", fromCurrencyID))
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	seen := make(map[int64]struct{}, len(rates))
	reachable := make([]int64, 0, len(rates))
	for _, rate := range rates {
		if !rate.IsActive || rate.FromCurrencyID != fromCurrencyID || rate.ToCurrencyID == fromCurrencyID {
			continue
		}
		if _, ok := seen[rate.ToCurrencyID]; ok {
			continue
		}
		seen[rate.ToCurrencyID] = struct{}{}
		reachable = append(reachable, rate.ToCurrencyID)
	}
	sort.Slice(reachable, func(i, j int) bool { return reachable[i] < reachable[j] })
	return reachable, nil
}

// selectCurrent returns a copy of the latest active record for the exact pair,
// or nil when there is none.
func selectCurrent(rates []domain.ExchangeRate, fromCurrencyID, toCurrencyID int64) *domain.ExchangeRate {
	var current *domain.ExchangeRate
	for i := range rates {
		rate := &rates[i]
		if !rate.IsActive || !rate.Rate.IsPositive() {
			continue
		}
		if rate.FromCurrencyID != fromCurrencyID || rate.ToCurrencyID != toCurrencyID {
			continue
		}
		if current == nil ||
			rate.EffectiveDate.After(current.EffectiveDate) ||
			(rate.EffectiveDate.Equal(current.EffectiveDate) && rate.ExchangeRateID > current.ExchangeRateID) {
			current = rate
		}
	}
	if current == nil {
		return nil
	}
	found := *current
	return &found
}
