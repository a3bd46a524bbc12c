package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID int64) (*domain.Currency, error) {
	now := time.Now()
	creator := auditUser(creatorUserID)

	currency := domain.Currency{
		Code:     strings.ToUpper(req.Code),
		Symbol:   req.Symbol,
		Name:     req.Name,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	saved, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", currency.Code))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.String("currency_code", saved.Code), slog.Int64("currency_id", saved.CurrencyID))
	return saved, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by id in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) SetCurrencyActive(ctx context.Context, currencyCode string, active bool, userID int64) (*domain.Currency, error) {
	currency, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}
	if err := s.currencyRepo.SetCurrencyActive(ctx, currency.CurrencyID, active, auditUser(userID)); err != nil {
		s.LogError(ctx, err, "Failed to update currency active flag",
			slog.String("currency_code", currency.Code), slog.Bool("active", active))
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}
	currency.IsActive = active
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = auditUser(userID)
	return currency, nil
}

// requireActiveCurrency resolves a code for a new write; inactive currencies are rejected.
func requireActiveCurrency(ctx context.Context, currencies portssvc.CurrencyReaderSvc, code, role string) (*domain.Currency, error) {
	currency, err := currencies.GetCurrencyByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s currency code '%s' not found", apperrors.ErrValidation, role, code)
		}
		return nil, fmt.Errorf("failed to validate %s currency '%s': %w", role, code, err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: %s currency '%s' is inactive", apperrors.ErrValidation, role, code)
	}
	return currency, nil
}
