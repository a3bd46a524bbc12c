package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_id, to_currency_id, rate, effective_date, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements the exchange rate repository ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate, or updates the rate already stored for the
// same pair and effective date. The stored record is re-activated.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	modelRate := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (
			from_currency_id, to_currency_id, rate, effective_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, TRUE, $5, $6, $7, $8)
		ON CONFLICT (from_currency_id, to_currency_id, effective_date) DO UPDATE SET
			rate = EXCLUDED.rate,
			is_active = TRUE,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + exchangeRateColumns + `;`

	rows, err := r.Pool.Query(ctx, query,
		modelRate.FromCurrencyID, modelRate.ToCurrencyID, modelRate.Rate, modelRate.EffectiveDate,
		modelRate.CreatedAt, modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	domainRate := mapping.ToDomainExchangeRate(stored)
	return &domainRate, nil
}

// FindActiveRates returns every active rate for the exact ordered pair.
func (r *PgxExchangeRateRepository) FindActiveRates(ctx context.Context, fromCurrencyID, toCurrencyID int64) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_id = $1 AND to_currency_id = $2 AND is_active
		ORDER BY effective_date DESC, exchange_rate_id DESC;`
	return r.list(ctx, query, fromCurrencyID, toCurrencyID)
}

// FindActiveRatesFrom returns every active rate whose source is fromCurrencyID.
func (r *PgxExchangeRateRepository) FindActiveRatesFrom(ctx context.Context, fromCurrencyID int64) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_id = $1 AND is_active
		ORDER BY to_currency_id, effective_date DESC;`
	return r.list(ctx, query, fromCurrencyID)
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID int64) (*domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+exchangeRateColumns+` FROM exchange_rates WHERE exchange_rate_id = $1;`, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate %d: %w", rateID, err)
	}
	modelRate, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("failed to get exchange rate %d: %w", rateID, err))
	}
	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// DeactivateExchangeRate clears the active flag of a rate.
func (r *PgxExchangeRateRepository) DeactivateExchangeRate(ctx context.Context, rateID int64, userID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE exchange_rates SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $1
		WHERE exchange_rate_id = $2;
	`, userID, rateID)
	if err != nil {
		return fmt.Errorf("failed to deactivate exchange rate %d: %w", rateID, err)
	}
	return expectOneRow(tag)
}

func (r *PgxExchangeRateRepository) list(ctx context.Context, query string, args ...any) ([]domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	modelRates, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
