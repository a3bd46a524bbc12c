package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	GetBudget(ctx context.Context, userID, budgetID int64) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID int64, activeOnly bool) ([]domain.Budget, error)

	// GetBudgetSummary computes the spend position of one budget.
	GetBudgetSummary(ctx context.Context, userID, budgetID int64) (*domain.BudgetSummary, error)

	// ListBudgetSummaries computes the spend position of every active budget of the user.
	ListBudgetSummaries(ctx context.Context, userID int64) ([]domain.BudgetSummary, error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	CreateBudget(ctx context.Context, userID int64, req dto.CreateBudgetRequest) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID int64, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID int64) error

	// SetBudgetCategories replaces the category allocations of a budget.
	SetBudgetCategories(ctx context.Context, userID, budgetID int64, req dto.SetBudgetCategoriesRequest) (*domain.Budget, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
