package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID int64, req dto.CreateCategoryRequest) (*domain.Category, error) {
	txnType := domain.TransactionType(strings.ToUpper(req.Type))
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: invalid category type '%s'", apperrors.ErrValidation, req.Type)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	actor := auditUser(userID)
	category := domain.Category{
		UserID:   userID,
		Name:     name,
		Type:     txnType,
		Color:    req.Color,
		Icon:     req.Icon,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	saved, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.Int64("user_id", userID), slog.String("name", name))
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}
	return saved, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID int64, txnType *domain.TransactionType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByUser(ctx, userID, txnType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// ownedCategory loads a category for a write on behalf of userID. Categories of
// other users are reported as missing.
func ownedCategory(ctx context.Context, repo portsrepo.CategoryReader, userID, categoryID int64) (*domain.Category, error) {
	category, err := repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: category %d not found", apperrors.ErrValidation, categoryID)
		}
		return nil, fmt.Errorf("failed to load category %d: %w", categoryID, err)
	}
	if category.UserID != userID {
		return nil, fmt.Errorf("%w: category %d not found", apperrors.ErrValidation, categoryID)
	}
	if !category.IsActive {
		return nil, fmt.Errorf("%w: category %d is inactive", apperrors.ErrValidation, categoryID)
	}
	return category, nil
}
