package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its category label.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions returns a user's transactions ordered by date then ID, descending.
	ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// FindTransactionsInRange returns every transaction of the user dated within
	// [from, to], both ends inclusive, in insertion order.
	FindTransactionsInRange(ctx context.Context, userID int64, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction inserts a transaction and returns it with its assigned ID.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// UpdateTransaction overwrites a transaction. The last write wins.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
