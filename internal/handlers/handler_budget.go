package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService   portssvc.BudgetSvcFacade
	currencyService portssvc.CurrencyReaderSvc
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, currencyService portssvc.CurrencyReaderSvc) {
	h := &budgetHandler{budgetService: budgetService, currencyService: currencyService}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/summaries", h.listBudgetSummaries)
		budgets.GET("/:id", h.getBudget)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
		budgets.PUT("/:id/categories", h.setBudgetCategories)
		budgets.GET("/:id/summary", h.getBudgetSummary)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Description The end date is derived from the start date and period.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create budget")
		return
	}
	logger.Info("Budget created", slog.Int64("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List the caller's budgets
// @Tags budgets
// @Produce  json
// @Param   activeOnly query bool false "Only active budgets"
// @Success 200 {array} dto.BudgetResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activeOnly must be a boolean"})
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID, activeOnly)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// getBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Produce  json
// @Param   id path int true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), userID, budgetID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// updateBudget godoc
// @Summary Update a budget
// @Description Omitted fields are kept. The end date is recomputed. categoryID 0 removes the category scope.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path int true "Budget ID"
// @Param   budget body dto.UpdateBudgetRequest true "Fields to change"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), userID, budgetID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param   id path int true "Budget ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}

// setBudgetCategories godoc
// @Summary Replace the category allocations of a budget
// @Description Allocations need not add up to the budget amount.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path int true "Budget ID"
// @Param   allocations body dto.SetBudgetCategoriesRequest true "Allocations"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /budgets/{id}/categories [put]
func (h *budgetHandler) setBudgetCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SetBudgetCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.SetBudgetCategories(c.Request.Context(), userID, budgetID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to set budget categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// getBudgetSummary godoc
// @Summary Get the spend position of a budget
// @Description Spent amounts are converted into the budget currency and rounded to two decimals.
// @Tags budgets
// @Produce  json
// @Param   id path int true "Budget ID"
// @Success 200 {object} dto.BudgetSummaryResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id}/summary [get]
func (h *budgetHandler) getBudgetSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summary, err := h.budgetService.GetBudgetSummary(c.Request.Context(), userID, budgetID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to summarize budget")
		return
	}
	codes := currencyCodes{}
	code, err := codes.lookup(c.Request.Context(), h.currencyService, summary.CurrencyID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to summarize budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(summary, code))
}

// listBudgetSummaries godoc
// @Summary Get the spend position of every active budget
// @Tags budgets
// @Produce  json
// @Success 200 {array} dto.BudgetSummaryResponse
// @Security BearerAuth
// @Router /budgets/summaries [get]
func (h *budgetHandler) listBudgetSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summaries, err := h.budgetService.ListBudgetSummaries(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to summarize budgets")
		return
	}

	codes := currencyCodes{}
	res := make([]dto.BudgetSummaryResponse, len(summaries))
	for i := range summaries {
		code, err := codes.lookup(c.Request.Context(), h.currencyService, summaries[i].CurrencyID)
		if err != nil {
			writeServiceError(c, logger, err, "Failed to summarize budgets")
			return
		}
		res[i] = dto.ToBudgetSummaryResponse(&summaries[i], code)
	}
	c.JSON(http.StatusOK, res)
}

// currencyCodes memoises currency code lookups within one request.
type currencyCodes map[int64]string

func (cc currencyCodes) lookup(ctx context.Context, svc portssvc.CurrencyReaderSvc, currencyID int64) (string, error) {
	if code, ok := cc[currencyID]; ok {
		return code, nil
	}
	currency, err := svc.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return "", err
	}
	cc[currencyID] = currency.Code
	return currency.Code, nil
}
