package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `currency_id, code, symbol, name, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (code, symbol, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING currency_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelCurr.Code,
		modelCurr.Symbol,
		modelCurr.Name,
		modelCurr.IsActive,
		modelCurr.CreatedAt,
		modelCurr.CreatedBy,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	).Scan(&modelCurr.CurrencyID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, modelCurr.Code)
		}
		return nil, fmt.Errorf("failed to save currency %s: %w", modelCurr.Code, err)
	}

	saved := mapping.ToDomainCurrency(modelCurr)
	return &saved, nil
}

// SetCurrencyActive toggles the active flag of a currency.
func (r *PgxCurrencyRepository) SetCurrencyActive(ctx context.Context, currencyID int64, active bool, userID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE currencies SET is_active = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE currency_id = $3;
	`, active, userID, currencyID)
	if err != nil {
		return fmt.Errorf("failed to update currency %d: %w", currencyID, err)
	}
	return expectOneRow(tag)
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	return r.findOne(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE currency_id = $1;`, currencyID)
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	return r.findOne(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE code = $1;`, currencyCode)
}

func (r *PgxCurrencyRepository) findOne(ctx context.Context, query string, arg any) (*domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency %v: %w", arg, err)
	}
	modelCurr, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("failed to find currency %v: %w", arg, err))
	}
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+currencyColumns+` FROM currencies ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}

	modelCurrencies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
