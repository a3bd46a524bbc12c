package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// TransactionConverter stamps a transaction with its home-currency value using a
// rate the caller already fetched. It never looks rates up itself.
type TransactionConverter struct {
	now func() time.Time
}

// NewTransactionConverter creates a TransactionConverter. A nil clock means time.Now.
func NewTransactionConverter(now func() time.Time) *TransactionConverter {
	if now == nil {
		now = time.Now
	}
	return &TransactionConverter{now: now}
}

var _ portssvc.TransactionConverterSvc = (*TransactionConverter)(nil)

// ApplyConversion sets ConvertedAmount, ConvertedCurrencyID, ExchangeRateUsed and
// RateAppliedAt. No other field of txn is touched.
func (c *TransactionConverter) ApplyConversion(txn *domain.Transaction, homeCurrencyID int64, rate *domain.ExchangeRate) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction is required", apperrors.ErrValidation)
	}

	if txn.CurrencyID == homeCurrencyID {
		txn.ConvertedAmount = txn.Amount
		txn.ConvertedCurrencyID = homeCurrencyID
		txn.ExchangeRateUsed = decimal.NewFromInt(1)
		txn.RateAppliedAt = c.now()
		return nil
	}

	if rate == nil {
		return fmt.Errorf("%w: currency %d to %d", apperrors.ErrMissingExchangeRate, txn.CurrencyID, homeCurrencyID)
	}
	if !rate.IsUsableFor(txn.CurrencyID, homeCurrencyID, txn.Date) {
		return fmt.Errorf("%w: rate %d for currency %d to %d on %s",
			apperrors.ErrStaleExchangeRate, rate.ExchangeRateID, txn.CurrencyID, homeCurrencyID, txn.Date.Format(time.DateOnly))
	}

	txn.ConvertedAmount = txn.Amount.Mul(rate.Rate)
	txn.ConvertedCurrencyID = homeCurrencyID
	txn.ExchangeRateUsed = rate.Rate
	txn.RateAppliedAt = c.now()
	return nil
}
