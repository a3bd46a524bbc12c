package mapping

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// The category label is read-only and is not carried.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		UserID:              d.UserID,
		CategoryID:          d.CategoryID,
		Type:                string(d.Type),
		Amount:              d.Amount,
		CurrencyID:          d.CurrencyID,
		ConvertedAmount:     d.ConvertedAmount,
		ConvertedCurrencyID: d.ConvertedCurrencyID,
		ExchangeRateUsed:    d.ExchangeRateUsed,
		RateAppliedAt:       d.RateAppliedAt,
		TransactionDate:     d.Date,
		Description:         d.Description,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		CategoryID:    m.CategoryID,
		Category: domain.CategoryLabel{
			Name:  m.CategoryName,
			Color: m.CategoryColor,
			Icon:  m.CategoryIcon,
		},
		Type:                domain.TransactionType(m.Type),
		Amount:              m.Amount,
		CurrencyID:          m.CurrencyID,
		ConvertedAmount:     m.ConvertedAmount,
		ConvertedCurrencyID: m.ConvertedCurrencyID,
		ExchangeRateUsed:    m.ExchangeRateUsed,
		RateAppliedAt:       m.RateAppliedAt.UTC(),
		Date:                m.TransactionDate.UTC(),
		Description:         m.Description,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return toDomainSlice(ms, ToDomainTransaction)
}
