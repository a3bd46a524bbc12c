package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a budget with its category allocations.
	FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)

	// ListBudgetsByUser retrieves a user's budgets with their allocations.
	ListBudgetsByUser(ctx context.Context, userID int64, activeOnly bool) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget inserts a budget and returns it with its assigned ID.
	SaveBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)

	// UpdateBudget overwrites a budget's own fields; allocations are untouched.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget and its allocations.
	DeleteBudget(ctx context.Context, budgetID int64) error

	// ReplaceBudgetCategories swaps the allocations of a budget atomically.
	ReplaceBudgetCategories(ctx context.Context, budgetID int64, allocations []domain.BudgetCategory) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
