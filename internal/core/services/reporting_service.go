package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Open report bounds fall back to these limits.
var (
	earliestReportDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	latestReportDate   = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

const exportSheetName = "Transactions"

// exportHeaders matches the csv tags of dto.TransactionCSVRow.
var exportHeaders = []any{
	"transaction_id", "date", "type", "category", "description",
	"amount", "currency", "exchange_rate", "converted_amount", "home_currency",
}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	txnRepo         portsrepo.TransactionReader
	userRepo        portsrepo.UserReader
	currencyService portssvc.CurrencyReaderSvc
	aggregator      portssvc.TransactionSummaryAggregatorSvc
}

// NewReportingService creates the reporting service.
func NewReportingService(
	txnRepo portsrepo.TransactionReader,
	userRepo portsrepo.UserReader,
	currencyService portssvc.CurrencyReaderSvc,
	aggregator portssvc.TransactionSummaryAggregatorSvc,
) portssvc.ReportingService {
	return &reportingService{
		txnRepo:         txnRepo,
		userRepo:        userRepo,
		currencyService: currencyService,
		aggregator:      aggregator,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TransactionSummary reports totals and top categories in the user's home currency.
func (s *reportingService) TransactionSummary(ctx context.Context, userID int64, from, to *time.Time) (*domain.TransactionSummaryReport, error) {
	home, err := s.homeCurrency(ctx, userID)
	if err != nil {
		return nil, err
	}
	txns, err := s.loadRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	report := s.aggregator.Summarize(txns, *home, from, to)
	s.LogDebug(ctx, "Transaction summary generated",
		slog.Int64("user_id", userID),
		slog.Int("transaction_count", report.TransactionCount))
	return &report, nil
}

// ExportTransactions writes one CSV row per transaction, oldest first.
func (s *reportingService) ExportTransactions(ctx context.Context, userID int64, from, to *time.Time, w io.Writer) error {
	rows, err := s.exportRows(ctx, userID, from, to)
	if err != nil {
		return err
	}

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csv.NewWriter(w))); err != nil {
		s.LogError(ctx, err, "Failed to write transaction export", slog.Int64("user_id", userID))
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	s.LogInfo(ctx, "Transactions exported", slog.Int64("user_id", userID), slog.Int("count", len(rows)))
	return nil
}

// ExportTransactionsXLSX writes the export rows to a single-sheet workbook.
func (s *reportingService) ExportTransactionsXLSX(ctx context.Context, userID int64, from, to *time.Time, w io.Writer) error {
	rows, err := s.exportRows(ctx, userID, from, to)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("failed to name export sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheetName, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			r.TransactionID, r.Date, r.Type, r.Category, r.Description,
			r.Amount, r.Currency, r.ExchangeRateUsed, r.ConvertedAmount, r.HomeCurrency,
		}
		if err := f.SetSheetRow(exportSheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write export row %d: %w", r.TransactionID, err)
		}
	}
	if err := f.SetColWidth(exportSheetName, "D", "E", 24); err != nil {
		return fmt.Errorf("failed to size export columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		s.LogError(ctx, err, "Failed to write transaction workbook", slog.Int64("user_id", userID))
		return fmt.Errorf("error writing XLSX data: %w", err)
	}
	s.LogInfo(ctx, "Transactions exported", slog.Int64("user_id", userID), slog.Int("count", len(rows)), slog.String("format", "xlsx"))
	return nil
}

// exportRows loads the range and flattens it into display rows. Converted
// amounts are fixed to two decimals; original amounts and rates are exact.
func (s *reportingService) exportRows(ctx context.Context, userID int64, from, to *time.Time) ([]dto.TransactionCSVRow, error) {
	home, err := s.homeCurrency(ctx, userID)
	if err != nil {
		return nil, err
	}
	txns, err := s.loadRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	currencies, err := s.currencyService.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	codes := make(map[int64]string, len(currencies))
	for _, c := range currencies {
		codes[c.CurrencyID] = c.Code
	}

	rows := make([]dto.TransactionCSVRow, 0, len(txns))
	for _, txn := range txns {
		convertedCode := codes[txn.ConvertedCurrencyID]
		if convertedCode == "" {
			convertedCode = home.Code
		}
		rows = append(rows, dto.TransactionCSVRow{
			TransactionID:    txn.TransactionID,
			Date:             txn.Date.Format(time.DateOnly),
			Type:             string(txn.Type),
			Category:         txn.Category.Name,
			Description:      txn.Description,
			Amount:           txn.Amount.String(),
			Currency:         codes[txn.CurrencyID],
			ExchangeRateUsed: txn.ExchangeRateUsed.String(),
			ConvertedAmount:  txn.ConvertedAmount.StringFixed(2),
			HomeCurrency:     convertedCode,
		})
	}
	return rows, nil
}

func (s *reportingService) homeCurrency(ctx context.Context, userID int64) (*domain.Currency, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	home, err := s.currencyService.GetCurrencyByID(ctx, user.HomeCurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load home currency of user %d: %w", userID, err)
	}
	return home, nil
}

func (s *reportingService) loadRange(ctx context.Context, userID int64, from, to *time.Time) ([]domain.Transaction, error) {
	start, end := earliestReportDate, latestReportDate
	if from != nil {
		start = domain.DateOnly(*from)
	}
	if to != nil {
		end = domain.DateOnly(*to)
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: 'from' must not be after 'to'", apperrors.ErrValidation)
	}
	txns, err := s.txnRepo.FindTransactionsInRange(ctx, userID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for report", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}
