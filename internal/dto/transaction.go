package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// The type is not accepted: it is taken from the category.
type CreateTransactionRequest struct {
	CategoryID   int64           `json:"categoryID" binding:"required,gt=0"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Date         time.Time       `json:"date" binding:"required"`
	Description  string          `json:"description" binding:"max=255"`
}

// UpdateTransactionRequest replaces the editable fields of a transaction.
type UpdateTransactionRequest struct {
	CategoryID   int64           `json:"categoryID" binding:"required,gt=0"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Date         time.Time       `json:"date" binding:"required"`
	Description  string          `json:"description" binding:"max=255"`
}

// ListTransactionsQuery holds the query parameters of a transaction listing.
type ListTransactionsQuery struct {
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Type       string `form:"type" binding:"omitempty,transaction_type"`
	CategoryID int64  `form:"categoryID" binding:"omitempty,gt=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken  string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       int64                `json:"transactionID"`
	CategoryID          int64                `json:"categoryID"`
	Category            domain.CategoryLabel `json:"category"`
	Type                string               `json:"type"`
	Amount              decimal.Decimal      `json:"amount"`
	CurrencyID          int64                `json:"currencyID"`
	ConvertedAmount     decimal.Decimal      `json:"convertedAmount"`
	ConvertedCurrencyID int64                `json:"convertedCurrencyID"`
	ExchangeRateUsed    decimal.Decimal      `json:"exchangeRateUsed"`
	RateAppliedAt       time.Time            `json:"rateAppliedAt"`
	Date                time.Time            `json:"date"`
	Description         string               `json:"description"`
	CreatedAt           time.Time            `json:"createdAt"`
	LastUpdatedAt       time.Time            `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
// ConvertedAmount is rounded for display only.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:       t.TransactionID,
		CategoryID:          t.CategoryID,
		Category:            t.Category,
		Type:                string(t.Type),
		Amount:              t.Amount,
		CurrencyID:          t.CurrencyID,
		ConvertedAmount:     t.ConvertedAmount.Round(2),
		ConvertedCurrencyID: t.ConvertedCurrencyID,
		ExchangeRateUsed:    t.ExchangeRateUsed,
		RateAppliedAt:       t.RateAppliedAt,
		Date:                t.Date,
		Description:         t.Description,
		CreatedAt:           t.CreatedAt,
		LastUpdatedAt:       t.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts transactions to their response DTOs.
func ToListTransactionResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}

// TransactionCSVRow is one line of the transaction export.
type TransactionCSVRow struct {
	TransactionID    int64  `csv:"transaction_id"`
	Date             string `csv:"date"`
	Type             string `csv:"type"`
	Category         string `csv:"category"`
	Description      string `csv:"description"`
	Amount           string `csv:"amount"`
	Currency         string `csv:"currency"`
	ExchangeRateUsed string `csv:"exchange_rate"`
	ConvertedAmount  string `csv:"converted_amount"`
	HomeCurrency     string `csv:"home_currency"`
}
