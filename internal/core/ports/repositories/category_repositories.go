package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a category by ID.
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// ListCategoriesByUser retrieves a user's categories, optionally of one type.
	ListCategoriesByUser(ctx context.Context, userID int64, txnType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category and returns it with its assigned ID.
	SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
