package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransaction retrieves one of the user's transactions.
	GetTransaction(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves a page of the user's transactions.
	ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction records a transaction converted into the user's home currency.
	CreateTransaction(ctx context.Context, userID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction edits a transaction and always re-runs conversion.
	UpdateTransaction(ctx context.Context, userID, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one of the user's transactions.
	DeleteTransaction(ctx context.Context, userID, transactionID int64) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
