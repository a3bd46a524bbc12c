package services

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TransactionSummary rolls the user's transactions in [from, to] up by type and category.
	TransactionSummary(ctx context.Context, userID int64, from, to *time.Time) (*domain.TransactionSummaryReport, error)

	// ExportTransactions writes the user's transactions in [from, to] as CSV.
	ExportTransactions(ctx context.Context, userID int64, from, to *time.Time, w io.Writer) error

	// ExportTransactionsXLSX writes the same rows as ExportTransactions as a spreadsheet.
	ExportTransactionsXLSX(ctx context.Context, userID int64, from, to *time.Time, w io.Writer) error
}
