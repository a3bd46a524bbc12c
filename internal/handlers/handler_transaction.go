package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

const defaultTransactionLimit = 50

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description The amount is converted into the caller's home currency with the rate current at write time. Fails when no usable rate exists.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or no exchange rate"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create transaction")
		return
	}
	logger.Info("Transaction created", slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List the caller's transactions
// @Description Newest first. Pass nextToken from the previous page to continue.
// @Tags transactions
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD), inclusive"
// @Param   to query string false "End date (YYYY-MM-DD), inclusive"
// @Param   type query string false "INCOME or EXPENSE"
// @Param   categoryID query int false "Category ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var q dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	filter := domain.TransactionFilter{Limit: q.Limit}
	if filter.Limit == 0 {
		filter.Limit = defaultTransactionLimit
	}
	var err error
	if filter.From, err = optionalDate(q.From); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
		return
	}
	if filter.To, err = optionalDate(q.To); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
		return
	}
	if q.Type != "" {
		t := domain.TransactionType(q.Type)
		filter.Type = &t
	}
	if q.CategoryID > 0 {
		filter.CategoryID = &q.CategoryID
	}
	if q.NextToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(q.NextToken)
		if err != nil {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
			return
		}
		filter.AfterDate, filter.AfterID = &afterDate, afterID
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	var nextToken string
	if n := len(txns); n > 0 && n == filter.Limit {
		last := txns[n-1]
		nextToken = pagination.EncodeToken(last.Date, last.TransactionID)
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns, nextToken))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	txnID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), userID, txnID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Every update is re-validated and re-converted with the rate current at write time.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or no exchange rate"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	txnID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, txnID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param   id path int true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	txnID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, txnID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
