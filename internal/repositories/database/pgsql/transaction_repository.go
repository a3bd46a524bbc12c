package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionSelect = `
	SELECT t.transaction_id, t.user_id, t.category_id,
		c.name AS category_name, c.color AS category_color, c.icon AS category_icon,
		t.type, t.amount, t.currency_id, t.converted_amount, t.converted_currency_id,
		t.exchange_rate_used, t.rate_applied_at, t.transaction_date, t.description,
		t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
	FROM transactions t
	JOIN categories c ON c.category_id = t.category_id`

// utcDay is the calendar day of a transaction independent of the session time zone.
const utcDay = `(t.transaction_date AT TIME ZONE 'UTC')::date`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a transaction with its captured conversion.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO transactions (
			user_id, category_id, type, amount, currency_id, converted_amount, converted_currency_id,
			exchange_rate_used, rate_applied_at, transaction_date, description,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING transaction_id;
	`,
		m.UserID, m.CategoryID, m.Type, m.Amount, m.CurrencyID, m.ConvertedAmount, m.ConvertedCurrencyID,
		m.ExchangeRateUsed, m.RateAppliedAt, m.TransactionDate, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return r.FindTransactionByID(ctx, m.TransactionID)
}

// UpdateTransaction overwrites every mutable column of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions SET
			category_id = $1, amount = $2, currency_id = $3, converted_amount = $4,
			converted_currency_id = $5, exchange_rate_used = $6, rate_applied_at = $7,
			transaction_date = $8, description = $9, last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $12;
	`,
		m.CategoryID, m.Amount, m.CurrencyID, m.ConvertedAmount,
		m.ConvertedCurrencyID, m.ExchangeRateUsed, m.RateAppliedAt,
		m.TransactionDate, m.Description, m.LastUpdatedAt, m.LastUpdatedBy,
		m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", m.TransactionID, err)
	}
	return expectOneRow(tag)
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	return expectOneRow(tag)
}

// FindTransactionByID retrieves a transaction with its category label.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, transactionSelect+` WHERE t.transaction_id = $1;`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %d: %w", transactionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("failed to find transaction %d: %w", transactionID, err))
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns one page of a user's transactions, newest first.
// Paging is keyset based on (transaction_date, transaction_id).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.user_id = $1`
	args := []any{userID}
	argNum := 2

	if filter.From != nil {
		query += fmt.Sprintf(" AND %s >= $%d::date", utcDay, argNum)
		args = append(args, domain.DateOnly(*filter.From))
		argNum++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND %s <= $%d::date", utcDay, argNum)
		args = append(args, domain.DateOnly(*filter.To))
		argNum++
	}
	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argNum)
		args = append(args, string(*filter.Type))
		argNum++
	}
	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND t.category_id = $%d", argNum)
		args = append(args, *filter.CategoryID)
		argNum++
	}
	if filter.AfterDate != nil {
		query += fmt.Sprintf(" AND (t.transaction_date, t.transaction_id) < ($%d, $%d)", argNum, argNum+1)
		args = append(args, *filter.AfterDate, filter.AfterID)
		argNum += 2
	}

	query += " ORDER BY t.transaction_date DESC, t.transaction_id DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	return r.list(ctx, query, args...)
}

// FindTransactionsInRange returns a user's transactions dated within [from, to] by calendar day.
func (r *PgxTransactionRepository) FindTransactionsInRange(ctx context.Context, userID int64, from, to time.Time) ([]domain.Transaction, error) {
	query := transactionSelect + `
		WHERE t.user_id = $1 AND ` + utcDay + ` BETWEEN $2::date AND $3::date
		ORDER BY t.transaction_id;`
	return r.list(ctx, query, userID, domain.DateOnly(from), domain.DateOnly(to))
}

func (r *PgxTransactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}
