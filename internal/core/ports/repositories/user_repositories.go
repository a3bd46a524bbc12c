package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user, including the home currency.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
}
