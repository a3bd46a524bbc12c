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

const (
	defaultTransactionPageSize = 50
	maxTransactionPageSize     = 200
)

type transactionService struct {
	BaseService
	txnRepo         portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryReader
	userRepo        portsrepo.UserReader
	currencyService portssvc.CurrencyReaderSvc
	resolver        portssvc.RateResolverSvc
	converter       portssvc.TransactionConverterSvc
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for audit timestamps.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates the transaction service. Every write resolves the
// current rate into the user's home currency before it reaches storage.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	userRepo portsrepo.UserReader,
	currencyService portssvc.CurrencyReaderSvc,
	resolver portssvc.RateResolverSvc,
	converter portssvc.TransactionConverterSvc,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:         txnRepo,
		categoryRepo:    categoryRepo,
		userRepo:        userRepo,
		currencyService: currencyService,
		resolver:        resolver,
		converter:       converter,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, userID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	category, err := ownedCategory(ctx, s.categoryRepo, userID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	currency, err := requireActiveCurrency(ctx, s.currencyService, req.CurrencyCode, "transaction")
	if err != nil {
		return nil, err
	}

	now := s.now()
	actor := auditUser(userID)
	txn := domain.Transaction{
		UserID:      userID,
		CategoryID:  category.CategoryID,
		Category:    category.Label(),
		Type:        category.Type,
		Amount:      req.Amount,
		CurrencyID:  currency.CurrencyID,
		Date:        req.Date.UTC(),
		Description: strings.TrimSpace(req.Description),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.convert(ctx, &txn); err != nil {
		return nil, err
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}
	saved.Category = txn.Category

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.Int64("user_id", userID),
		slog.String("type", string(saved.Type)))
	return saved, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction in service: %w", err)
	}
	if txn.UserID != userID {
		return nil, fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, transactionID)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultTransactionPageSize
	}
	if filter.Limit > maxTransactionPageSize {
		filter.Limit = maxTransactionPageSize
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: 'from' must not be after 'to'", apperrors.ErrValidation)
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction type '%s'", apperrors.ErrValidation, *filter.Type)
	}

	txns, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// UpdateTransaction replaces the editable fields and converts again from scratch,
// whatever changed. The transaction type cannot change.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	category, err := ownedCategory(ctx, s.categoryRepo, userID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != existing.Type {
		return nil, fmt.Errorf("%w: category %d is %s but transaction %d is %s",
			apperrors.ErrValidation, category.CategoryID, category.Type, transactionID, existing.Type)
	}
	currency, err := requireActiveCurrency(ctx, s.currencyService, req.CurrencyCode, "transaction")
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.CategoryID = category.CategoryID
	updated.Category = category.Label()
	updated.Amount = req.Amount
	updated.CurrencyID = currency.CurrencyID
	updated.Date = req.Date.UTC()
	updated.Description = strings.TrimSpace(req.Description)
	updated.LastUpdatedAt = s.now()
	updated.LastUpdatedBy = auditUser(userID)

	if err := s.convert(ctx, &updated); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", transactionID), slog.Int64("user_id", userID))
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID int64) error {
	if _, err := s.GetTransaction(ctx, userID, transactionID); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction in service: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", transactionID), slog.Int64("user_id", userID))
	return nil
}

// convert validates txn and fills its home-currency fields. A missing or
// not-yet-effective rate is a validation failure the user can fix by adding a rate.
func (s *transactionService) convert(ctx context.Context, txn *domain.Transaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	user, err := s.userRepo.FindUserByID(ctx, txn.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user %d: %w", txn.UserID, err)
	}
	home := user.HomeCurrencyID

	var rate *domain.ExchangeRate
	if txn.CurrencyID != home {
		ok, err := s.resolver.Exists(ctx, txn.CurrencyID, home)
		if err != nil {
			return fmt.Errorf("failed to check exchange rate: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: add a rate from currency %d to home currency %d first",
				apperrors.ErrRateNotFound, txn.CurrencyID, home)
		}
		rate, err = s.resolver.CurrentRate(ctx, txn.CurrencyID, home)
		if err != nil {
			return err
		}
		if !rate.IsUsableFor(txn.CurrencyID, home, txn.Date) {
			return fmt.Errorf("%w: the current rate from currency %d to %d (effective %s) is newer than the transaction date %s; older rates are not used",
				apperrors.ErrRateNotFound, txn.CurrencyID, home,
				rate.EffectiveDate.Format(time.DateOnly), txn.Date.Format(time.DateOnly))
		}
	}

	if err := s.converter.ApplyConversion(txn, home, rate); err != nil {
		s.LogError(ctx, err, "Failed to apply conversion",
			slog.Int64("currency_id", txn.CurrencyID), slog.Int64("home_currency_id", home))
		return fmt.Errorf("failed to convert transaction: %w", err)
	}
	s.LogDebug(ctx, "Transaction converted",
		slog.String("amount", txn.Amount.String()),
		slog.String("converted_amount", txn.ConvertedAmount.String()),
		slog.String("rate", txn.ExchangeRateUsed.String()))
	return nil
}
