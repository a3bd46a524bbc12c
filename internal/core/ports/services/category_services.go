package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// CategorySvcFacade defines operations on a user's categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID int64, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, userID int64, txnType *domain.TransactionType) ([]domain.Category, error)
}
