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

const categoryColumns = `category_id, user_id, name, type, color, icon, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	m := mapping.ToModelCategory(category)
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO categories (user_id, name, type, color, icon, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING category_id;
	`, m.UserID, m.Name, m.Type, m.Color, m.Icon, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.CategoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrDuplicate, m.Name)
		}
		return nil, fmt.Errorf("failed to save category %s: %w", m.Name, err)
	}
	saved := mapping.ToDomainCategory(m)
	return &saved, nil
}

// FindCategoryByID retrieves a category by ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category %d: %w", categoryID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("failed to find category %d: %w", categoryID, err))
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

// ListCategoriesByUser lists a user's categories, optionally of one type.
func (r *PgxCategoryRepository) ListCategoriesByUser(ctx context.Context, userID int64, txnType *domain.TransactionType) ([]domain.Category, error) {
	var typeFilter *string
	if txnType != nil {
		t := string(*txnType)
		typeFilter = &t
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+`
		FROM categories
		WHERE user_id = $1 AND ($2::text IS NULL OR type = $2)
		ORDER BY type, name, category_id;`, userID, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}
