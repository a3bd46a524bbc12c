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
	"github.com/SscSPs/money_tracker/internal/utils/period"
	"golang.org/x/sync/errgroup"
)

const defaultSummaryConcurrency = 4

type budgetService struct {
	BaseService
	budgetRepo         portsrepo.BudgetRepositoryFacade
	txnRepo            portsrepo.TransactionReader
	categoryRepo       portsrepo.CategoryReader
	currencyService    portssvc.CurrencyReaderSvc
	aggregator         portssvc.BudgetAggregatorSvc
	summaryConcurrency int
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithSummaryConcurrency bounds how many budgets ListBudgetSummaries loads at once.
func WithSummaryConcurrency(n int) BudgetServiceOption {
	return func(s *budgetService) {
		if n > 0 {
			s.summaryConcurrency = n
		}
	}
}

// NewBudgetService creates the budget service.
func NewBudgetService(
	budgetRepo portsrepo.BudgetRepositoryFacade,
	txnRepo portsrepo.TransactionReader,
	categoryRepo portsrepo.CategoryReader,
	currencyService portssvc.CurrencyReaderSvc,
	aggregator portssvc.BudgetAggregatorSvc,
	options ...BudgetServiceOption,
) portssvc.BudgetSvcFacade {
	svc := &budgetService{
		budgetRepo:         budgetRepo,
		txnRepo:            txnRepo,
		categoryRepo:       categoryRepo,
		currencyService:    currencyService,
		aggregator:         aggregator,
		summaryConcurrency: defaultSummaryConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, userID int64, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	currency, err := requireActiveCurrency(ctx, s.currencyService, req.CurrencyCode, "budget")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	actor := auditUser(userID)
	budget := domain.Budget{
		UserID:           userID,
		Name:             strings.TrimSpace(req.Name),
		Amount:           req.Amount,
		CurrencyID:       currency.CurrencyID,
		Period:           domain.BudgetPeriod(strings.ToUpper(req.Period)),
		StartDate:        domain.DateOnly(req.StartDate),
		CategoryID:       req.CategoryID,
		WarningThreshold: domain.DefaultWarningThreshold,
		OverThreshold:    domain.DefaultOverThreshold,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if req.WarningThreshold != nil {
		budget.WarningThreshold = *req.WarningThreshold
	}
	if req.OverThreshold != nil {
		budget.OverThreshold = *req.OverThreshold
	}

	if err := s.prepare(ctx, &budget); err != nil {
		return nil, err
	}

	saved, err := s.budgetRepo.SaveBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to create budget in service: %w", err)
	}
	s.LogInfo(ctx, "Budget created",
		slog.Int64("budget_id", saved.BudgetID),
		slog.String("period", string(saved.Period)),
		slog.Time("end_date", saved.EndDate))
	return saved, nil
}

func (s *budgetService) GetBudget(ctx context.Context, userID, budgetID int64) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget in service: %w", err)
	}
	if budget.UserID != userID {
		return nil, fmt.Errorf("%w: budget %d", apperrors.ErrNotFound, budgetID)
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, userID int64, activeOnly bool) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets in service: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

// UpdateBudget applies the non-nil fields of req. The end date is derived again
// on every update.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID int64, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.GetBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		budget.Name = strings.TrimSpace(*req.Name)
	}
	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	if req.CurrencyCode != nil {
		currency, err := requireActiveCurrency(ctx, s.currencyService, *req.CurrencyCode, "budget")
		if err != nil {
			return nil, err
		}
		budget.CurrencyID = currency.CurrencyID
	}
	if req.Period != nil {
		budget.Period = domain.BudgetPeriod(strings.ToUpper(*req.Period))
	}
	if req.StartDate != nil {
		budget.StartDate = domain.DateOnly(*req.StartDate)
	}
	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			budget.CategoryID = nil
		} else {
			id := *req.CategoryID
			budget.CategoryID = &id
		}
	}
	if req.WarningThreshold != nil {
		budget.WarningThreshold = *req.WarningThreshold
	}
	if req.OverThreshold != nil {
		budget.OverThreshold = *req.OverThreshold
	}
	if req.IsActive != nil {
		budget.IsActive = *req.IsActive
	}
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = auditUser(userID)

	if err := s.prepare(ctx, budget); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.Int64("budget_id", budgetID))
		return nil, fmt.Errorf("failed to update budget in service: %w", err)
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID int64) error {
	if _, err := s.GetBudget(ctx, userID, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.Int64("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget in service: %w", err)
	}
	s.LogInfo(ctx, "Budget deleted", slog.Int64("budget_id", budgetID))
	return nil
}

// SetBudgetCategories replaces all allocations. Allocations need not add up to
// the budget amount.
func (s *budgetService) SetBudgetCategories(ctx context.Context, userID, budgetID int64, req dto.SetBudgetCategoriesRequest) (*domain.Budget, error) {
	budget, err := s.GetBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(req.Allocations))
	allocations := make([]domain.BudgetCategory, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		if _, dup := seen[a.CategoryID]; dup {
			return nil, fmt.Errorf("%w: category %d allocated twice", apperrors.ErrValidation, a.CategoryID)
		}
		seen[a.CategoryID] = struct{}{}
		if a.AllocatedAmount.IsNegative() {
			return nil, fmt.Errorf("%w: allocation for category %d must not be negative", apperrors.ErrValidation, a.CategoryID)
		}
		if _, err := s.expenseCategory(ctx, userID, a.CategoryID); err != nil {
			return nil, err
		}
		allocations = append(allocations, domain.BudgetCategory{
			BudgetID:        budgetID,
			CategoryID:      a.CategoryID,
			AllocatedAmount: a.AllocatedAmount,
		})
	}

	if err := s.budgetRepo.ReplaceBudgetCategories(ctx, budgetID, allocations); err != nil {
		s.LogError(ctx, err, "Failed to replace budget categories", slog.Int64("budget_id", budgetID))
		return nil, fmt.Errorf("failed to set budget categories in service: %w", err)
	}

	budget, err = s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload budget in service: %w", err)
	}
	return budget, nil
}

func (s *budgetService) GetBudgetSummary(ctx context.Context, userID, budgetID int64) (*domain.BudgetSummary, error) {
	budget, err := s.GetBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, *budget)
}

// ListBudgetSummaries summarises each active budget independently. Loads run
// concurrently; the first failure cancels the rest and fails the call.
func (s *budgetService) ListBudgetSummaries(ctx context.Context, userID int64) ([]domain.BudgetSummary, error) {
	budgets, err := s.ListBudgets(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.BudgetSummary, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.summaryConcurrency)
	for i := range budgets {
		g.Go(func() error {
			summary, err := s.summarize(gctx, budgets[i])
			if err != nil {
				return err
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to summarise budgets", slog.Int64("user_id", userID))
		return nil, err
	}
	return summaries, nil
}

func (s *budgetService) summarize(ctx context.Context, budget domain.Budget) (*domain.BudgetSummary, error) {
	txns, err := s.txnRepo.FindTransactionsInRange(ctx, budget.UserID, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for budget %d: %w", budget.BudgetID, err)
	}
	summary, err := s.aggregator.Summarize(ctx, budget, txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarise budget", slog.Int64("budget_id", budget.BudgetID))
		return nil, err
	}
	return summary, nil
}

// prepare validates a budget and derives its end date.
func (s *budgetService) prepare(ctx context.Context, budget *domain.Budget) error {
	if budget.Name == "" {
		return fmt.Errorf("%w: budget name is required", apperrors.ErrValidation)
	}
	if !budget.Amount.IsPositive() {
		return fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if !budget.Period.IsValid() {
		return fmt.Errorf("%w: invalid budget period '%s'", apperrors.ErrValidation, budget.Period)
	}
	if !budget.WarningThreshold.IsPositive() || !budget.OverThreshold.IsPositive() {
		return fmt.Errorf("%w: thresholds must be positive", apperrors.ErrValidation)
	}
	if budget.WarningThreshold.GreaterThan(budget.OverThreshold) {
		return fmt.Errorf("%w: warning threshold must not exceed over threshold", apperrors.ErrValidation)
	}
	if budget.CategoryID != nil {
		if _, err := s.expenseCategory(ctx, budget.UserID, *budget.CategoryID); err != nil {
			return err
		}
	}

	end, err := period.EndDate(budget.StartDate, budget.Period)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	budget.EndDate = end
	return nil
}

func (s *budgetService) expenseCategory(ctx context.Context, userID, categoryID int64) (*domain.Category, error) {
	category, err := ownedCategory(ctx, s.categoryRepo, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != domain.Expense {
		return nil, fmt.Errorf("%w: category %d is not an expense category", apperrors.ErrValidation, categoryID)
	}
	return category, nil
}
