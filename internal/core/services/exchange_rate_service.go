package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// exchangeRateService provides business logic for exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
	resolver        portssvc.RateResolverSvc
}

// NewExchangeRateService creates the exchange rate service.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	currencyService portssvc.CurrencyReaderSvc,
	resolver portssvc.RateResolverSvc,
) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
		resolver:        resolver,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate stores a rate. A second rate for the same pair and
// effective date replaces the first.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID int64) (*domain.ExchangeRate, error) {
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	from, err := requireActiveCurrency(ctx, s.currencyService, req.FromCurrencyCode, "'from'")
	if err != nil {
		return nil, err
	}
	to, err := requireActiveCurrency(ctx, s.currencyService, req.ToCurrencyCode, "'to'")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	creator := auditUser(creatorUserID)
	rate := domain.ExchangeRate{
		FromCurrencyID: from.CurrencyID,
		ToCurrencyID:   to.CurrencyID,
		Rate:           req.Rate,
		EffectiveDate:  req.EffectiveDate.UTC(),
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	saved, err := s.rateRepo.SaveExchangeRate(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("from", from.Code), slog.String("to", to.Code))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate stored",
		slog.Int64("exchange_rate_id", saved.ExchangeRateID),
		slog.String("from", from.Code),
		slog.String("to", to.Code),
		slog.String("rate", saved.Rate.String()))
	return saved, nil
}

// GetCurrentRate retrieves the rate currently used for fromCode -> toCode.
func (s *exchangeRateService) GetCurrentRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	from, to, err := s.lookupPair(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}
	rate, err := s.resolver.CurrentRate(ctx, from.CurrencyID, to.CurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

func (s *exchangeRateService) ListReachableCurrencies(ctx context.Context, fromCode string) ([]domain.Currency, error) {
	from, err := s.currencyService.GetCurrencyByCode(ctx, fromCode)
	if err != nil {
		return nil, err
	}
	ids, err := s.resolver.ListReachableCurrencies(ctx, from.CurrencyID)
	if err != nil {
		return nil, err
	}

	currencies := make([]domain.Currency, 0, len(ids))
	for _, id := range ids {
		currency, err := s.currencyService.GetCurrencyByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load reachable currency %d: %w", id, err)
		}
		currencies = append(currencies, *currency)
	}
	return currencies, nil
}

// ConvertAmount converts amount at the current rate; the quote carries the rate used.
func (s *exchangeRateService) ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionQuote, error) {
	from, to, err := s.lookupPair(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}
	rate, err := s.resolver.Resolve(ctx, from.CurrencyID, to.CurrencyID)
	if err != nil {
		return nil, err
	}
	return &domain.ConversionQuote{
		From:            *from,
		To:              *to,
		Amount:          amount,
		Rate:            rate,
		ConvertedAmount: amount.Mul(rate),
	}, nil
}

func (s *exchangeRateService) DeactivateExchangeRate(ctx context.Context, rateID int64, userID int64) error {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, rateID)
	if err != nil {
		return fmt.Errorf("failed to find exchange rate %d: %w", rateID, err)
	}
	if !rate.IsActive {
		return nil
	}
	if err := s.rateRepo.DeactivateExchangeRate(ctx, rateID, auditUser(userID)); err != nil {
		s.LogError(ctx, err, "Failed to deactivate exchange rate", slog.Int64("exchange_rate_id", rateID))
		return fmt.Errorf("failed to deactivate exchange rate in service: %w", err)
	}
	s.LogInfo(ctx, "Exchange rate deactivated", slog.Int64("exchange_rate_id", rateID))
	return nil
}

func (s *exchangeRateService) lookupPair(ctx context.Context, fromCode, toCode string) (*domain.Currency, *domain.Currency, error) {
	from, err := s.currencyService.GetCurrencyByCode(ctx, fromCode)
	if err != nil {
		return nil, nil, err
	}
	to, err := s.currencyService.GetCurrencyByCode(ctx, toCode)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
