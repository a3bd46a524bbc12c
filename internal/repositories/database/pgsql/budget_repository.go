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

const budgetColumns = `budget_id, user_id, name, amount, currency_id, period, start_date, end_date, category_id,
	warning_threshold, over_threshold, is_active, created_at, created_by, last_updated_at, last_updated_by`

const budgetCategoryColumns = `budget_category_id, budget_id, category_id, allocated_amount`

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// SaveBudget inserts a budget together with its allocations.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	m := mapping.ToModelBudget(budget)

	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO budgets (
				user_id, name, amount, currency_id, period, start_date, end_date, category_id,
				warning_threshold, over_threshold, is_active, created_at, created_by, last_updated_at, last_updated_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING budget_id;
		`,
			m.UserID, m.Name, m.Amount, m.CurrencyID, m.Period, m.StartDate, m.EndDate, m.CategoryID,
			m.WarningThreshold, m.OverThreshold, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).Scan(&m.BudgetID)
		if err != nil {
			return fmt.Errorf("failed to save budget %s: %w", m.Name, err)
		}
		return insertAllocations(ctx, tx, m.BudgetID, budget.Allocations)
	})
	if err != nil {
		return nil, err
	}
	return r.FindBudgetByID(ctx, m.BudgetID)
}

// UpdateBudget overwrites a budget's own columns.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE budgets SET
			name = $1, amount = $2, currency_id = $3, period = $4, start_date = $5, end_date = $6,
			category_id = $7, warning_threshold = $8, over_threshold = $9, is_active = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE budget_id = $13;
	`,
		m.Name, m.Amount, m.CurrencyID, m.Period, m.StartDate, m.EndDate,
		m.CategoryID, m.WarningThreshold, m.OverThreshold, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy, m.BudgetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %d: %w", m.BudgetID, err)
	}
	return expectOneRow(tag)
}

// DeleteBudget removes a budget; allocations cascade.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", budgetID, err)
	}
	return expectOneRow(tag)
}

// ReplaceBudgetCategories swaps all allocations of a budget in one transaction.
func (r *PgxBudgetRepository) ReplaceBudgetCategories(ctx context.Context, budgetID int64, allocations []domain.BudgetCategory) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM budget_categories WHERE budget_id = $1;`, budgetID); err != nil {
			return fmt.Errorf("failed to clear allocations of budget %d: %w", budgetID, err)
		}
		return insertAllocations(ctx, tx, budgetID, allocations)
	})
}

func insertAllocations(ctx context.Context, tx pgx.Tx, budgetID int64, allocations []domain.BudgetCategory) error {
	if len(allocations) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range allocations {
		batch.Queue(`INSERT INTO budget_categories (budget_id, category_id, allocated_amount) VALUES ($1, $2, $3);`,
			budgetID, a.CategoryID, a.AllocatedAmount)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save allocations of budget %d: %w", budgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget with its allocations.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget %d: %w", budgetID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("failed to find budget %d: %w", budgetID, err))
	}

	allocations, err := r.allocationsFor(ctx, []int64{budgetID})
	if err != nil {
		return nil, err
	}
	budget := mapping.ToDomainBudget(m, allocations[budgetID])
	return &budget, nil
}

// ListBudgetsByUser lists a user's budgets with their allocations.
func (r *PgxBudgetRepository) ListBudgetsByUser(ctx context.Context, userID int64, activeOnly bool) ([]domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+budgetColumns+`
		FROM budgets
		WHERE user_id = $1 AND (NOT $2 OR is_active)
		ORDER BY start_date DESC, budget_id;`, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets: %w", err)
	}

	ids := make([]int64, len(ms))
	for i, m := range ms {
		ids[i] = m.BudgetID
	}
	allocations, err := r.allocationsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	budgets := make([]domain.Budget, len(ms))
	for i, m := range ms {
		budgets[i] = mapping.ToDomainBudget(m, allocations[m.BudgetID])
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) allocationsFor(ctx context.Context, budgetIDs []int64) (map[int64][]models.BudgetCategory, error) {
	out := make(map[int64][]models.BudgetCategory, len(budgetIDs))
	if len(budgetIDs) == 0 {
		return out, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+budgetCategoryColumns+`
		FROM budget_categories
		WHERE budget_id = ANY($1)
		ORDER BY budget_id, budget_category_id;`, budgetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget allocations: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BudgetCategory])
	if err != nil {
		return nil, fmt.Errorf("failed to scan budget allocations: %w", err)
	}
	for _, m := range ms {
		out[m.BudgetID] = append(out[m.BudgetID], m)
	}
	return out, nil
}
