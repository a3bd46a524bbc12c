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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserReader {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserReader = (*PgxUserRepository)(nil)

// FindUserByID retrieves a user with the home currency.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id, name, home_currency_id FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user %d: %w", userID, err)
	}
	modelUser, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, notFoundOr(err, fmt.Errorf("failed to find user %d: %w", userID, err))
	}
	user := mapping.ToDomainUser(modelUser)
	return &user, nil
}
