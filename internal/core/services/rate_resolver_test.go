package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const (
	usdID int64 = 1
	eurID int64 = 2
	gbpID int64 = 3
	jpyID int64 = 4
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rate(id, from, to int64, r string, effective time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: id,
		FromCurrencyID: from,
		ToCurrencyID:   to,
		Rate:           decimal.RequireFromString(r),
		EffectiveDate:  effective,
		IsActive:       true,
	}
}

type RateResolverTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	resolver     *services.RateResolver
	converter    *services.CurrencyConverter
	now          time.Time
}

func (suite *RateResolverTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.resolver = services.NewRateResolver(suite.mockRateRepo, services.WithResolverClock(func() time.Time { return suite.now }))
	suite.converter = services.NewCurrencyConverter(suite.resolver)
}

func (suite *RateResolverTestSuite) TestIdentityNeverTouchesStorage() {
	ctx := context.Background()

	r, err := suite.resolver.Resolve(ctx, usdID, usdID)
	suite.Require().NoError(err)
	suite.True(r.Equal(decimal.NewFromInt(1)))

	ok, err := suite.resolver.Exists(ctx, usdID, usdID)
	suite.Require().NoError(err)
	suite.True(ok)

	current, err := suite.resolver.CurrentRate(ctx, usdID, usdID)
	suite.Require().NoError(err)
	suite.True(current.Rate.Equal(decimal.NewFromInt(1)))
	suite.Zero(current.ExchangeRateID)
	suite.Equal(day(2024, 6, 1), current.EffectiveDate)

	amount := decimal.RequireFromString("123.456")
	converted, err := suite.converter.Convert(ctx, amount, usdID, usdID)
	suite.Require().NoError(err)
	suite.True(converted.Equal(amount))

	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindActiveRates", 0)
}

func (suite *RateResolverTestSuite) TestResolve_PicksLatestEffectiveDate() {
	ctx := context.Background()
	rates := []domain.ExchangeRate{
		rate(1, eurID, usdID, "1.05", day(2024, 1, 1)),
		rate(2, eurID, usdID, "1.09", day(2024, 3, 1)),
		rate(3, eurID, usdID, "1.07", day(2024, 2, 1)),
	}
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return(rates, nil).Once()

	r, err := suite.resolver.Resolve(ctx, eurID, usdID)

	suite.Require().NoError(err)
	suite.True(r.Equal(decimal.RequireFromString("1.09")))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestResolve_TieGoesToNewestRecord() {
	ctx := context.Background()
	rates := []domain.ExchangeRate{
		rate(8, eurID, usdID, "1.10", day(2024, 3, 1)),
		rate(5, eurID, usdID, "1.01", day(2024, 3, 1)),
	}
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return(rates, nil).Once()

	current, err := suite.resolver.CurrentRate(ctx, eurID, usdID)

	suite.Require().NoError(err)
	suite.Equal(int64(8), current.ExchangeRateID)
}

func (suite *RateResolverTestSuite) TestResolve_IgnoresInactiveAndForeignRecords() {
	ctx := context.Background()
	inactive := rate(9, eurID, usdID, "2.00", day(2024, 5, 1))
	inactive.IsActive = false
	inverse := rate(10, usdID, eurID, "0.90", day(2024, 5, 2))
	rates := []domain.ExchangeRate{
		rate(1, eurID, usdID, "1.05", day(2024, 1, 1)),
		inactive,
		inverse,
	}
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return(rates, nil).Once()

	r, err := suite.resolver.Resolve(ctx, eurID, usdID)

	suite.Require().NoError(err)
	suite.True(r.Equal(decimal.RequireFromString("1.05")))
}

func (suite *RateResolverTestSuite) TestResolve_NoInversion() {
	ctx := context.Background()
	// Only EUR->USD exists; USD->EUR must not be derived from it.
	suite.mockRateRepo.On("FindActiveRates", ctx, usdID, eurID).Return([]domain.ExchangeRate{}, nil)

	_, err := suite.resolver.Resolve(ctx, usdID, eurID)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.ErrorIs(err, apperrors.ErrValidation)

	ok, err := suite.resolver.Exists(ctx, usdID, eurID)
	suite.Require().NoError(err)
	suite.False(ok)

	_, err = suite.converter.Convert(ctx, decimal.NewFromInt(10), usdID, eurID)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
}

func (suite *RateResolverTestSuite) TestResolve_OlderInsertDoesNotChangeResult() {
	ctx := context.Background()
	current := rate(1, gbpID, usdID, "1.27", day(2024, 4, 1))
	older := rate(2, gbpID, usdID, "1.20", day(2024, 1, 1))

	suite.mockRateRepo.On("FindActiveRates", ctx, gbpID, usdID).Return([]domain.ExchangeRate{current}, nil).Once()
	before, err := suite.resolver.Resolve(ctx, gbpID, usdID)
	suite.Require().NoError(err)

	suite.mockRateRepo.On("FindActiveRates", ctx, gbpID, usdID).Return([]domain.ExchangeRate{current, older}, nil).Once()
	after, err := suite.resolver.Resolve(ctx, gbpID, usdID)
	suite.Require().NoError(err)

	suite.True(before.Equal(after))
}

func (suite *RateResolverTestSuite) TestConvert_MultipliesWithoutRounding() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).
		Return([]domain.ExchangeRate{rate(1, eurID, usdID, "1.0853", day(2024, 1, 1))}, nil).Once()

	converted, err := suite.converter.Convert(ctx, decimal.RequireFromString("99.99"), eurID, usdID)

	suite.Require().NoError(err)
	suite.Equal("108.519147", converted.String())
}

func (suite *RateResolverTestSuite) TestResolve_StoreError() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return(nil, assert.AnError).Once()

	_, err := suite.resolver.Resolve(ctx, eurID, usdID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrRateNotFound)
}

func (suite *RateResolverTestSuite) TestListReachableCurrencies() {
	ctx := context.Background()
	inactive := rate(4, usdID, gbpID, "0.79", day(2024, 1, 1))
	inactive.IsActive = false
	rates := []domain.ExchangeRate{
		rate(1, usdID, jpyID, "151.2", day(2024, 1, 1)),
		rate(2, usdID, eurID, "0.92", day(2024, 1, 1)),
		rate(3, usdID, eurID, "0.93", day(2024, 2, 1)),
		inactive,
		rate(5, usdID, usdID, "1", day(2024, 1, 1)),
	}
	suite.mockRateRepo.On("FindActiveRatesFrom", ctx, usdID).Return(rates, nil).Once()

	reachable, err := suite.resolver.ListReachableCurrencies(ctx, usdID)

	suite.Require().NoError(err)
	suite.Equal([]int64{eurID, jpyID}, reachable)
}

func (suite *RateResolverTestSuite) TestListReachableCurrencies_None() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindActiveRatesFrom", ctx, gbpID).Return([]domain.ExchangeRate{}, nil).Once()

	reachable, err := suite.resolver.ListReachableCurrencies(ctx, gbpID)

	suite.Require().NoError(err)
	suite.NotNil(reachable)
	suite.Empty(reachable)
}

func TestRateResolver(t *testing.T) {
	suite.Run(t, new(RateResolverTestSuite))
}
