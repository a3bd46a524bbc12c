package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("/convert", h.convertAmount)
		rates.GET("/:from/reachable", h.listReachableCurrencies)
		rates.GET("/:from/:to", h.getExchangeRate)
		rates.DELETE("/:id", h.deactivateExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create or replace an exchange rate
// @Description Stores a directional rate for a currency pair from an effective date. A second rate for the same pair and date replaces the first.
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("from_currency", req.FromCurrencyCode),
		slog.String("to_currency", req.ToCurrencyCode),
	)

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate stored", slog.Int64("exchange_rate_id", rate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// getExchangeRate godoc
// @Summary Get the current exchange rate of a pair
// @Description Returns the latest active rate stored for the exact pair. Rates are never inverted.
// @Tags exchange-rates
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "No rate for the pair"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	from, to := strings.ToUpper(c.Param("from")), strings.ToUpper(c.Param("to"))

	rate, err := h.exchangeRateService.GetCurrentRate(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		writeServiceError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listReachableCurrencies godoc
// @Summary List currencies reachable by a direct rate
// @Tags exchange-rates
// @Produce  json
// @Param   from path string true "Source currency code"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Unknown currency"
// @Security BearerAuth
// @Router /exchange-rates/{from}/reachable [get]
func (h *exchangeRateHandler) listReachableCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	currencies, err := h.exchangeRateService.ListReachableCurrencies(c.Request.Context(), strings.ToUpper(c.Param("from")))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list reachable currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// convertAmount godoc
// @Summary Convert an amount for display
// @Description Converts with the current rate; the converted amount is rounded to two decimals.
// @Tags exchange-rates
// @Produce  json
// @Param   amount query string true "Amount"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input or no rate"
// @Security BearerAuth
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}
	from, to := strings.ToUpper(c.Query("from")), strings.ToUpper(c.Query("to"))
	if len(from) != 3 || len(to) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be 3-letter currency codes"})
		return
	}

	quote, err := h.exchangeRateService.ConvertAmount(c.Request.Context(), amount, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionResponse(quote))
}

// deactivateExchangeRate godoc
// @Summary Deactivate an exchange rate
// @Description Inactive rates are ignored by every lookup. Transactions keep the rate they captured.
// @Tags exchange-rates
// @Param   id path int true "Exchange rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Rate not found"
// @Security BearerAuth
// @Router /exchange-rates/{id} [delete]
func (h *exchangeRateHandler) deactivateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	rateID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.exchangeRateService.DeactivateExchangeRate(c.Request.Context(), rateID, userID); err != nil {
		writeServiceError(c, logger, err, "Failed to deactivate exchange rate")
		return
	}
	logger.Info("Exchange rate deactivated", slog.Int64("exchange_rate_id", rateID))
	c.Status(http.StatusNoContent)
}
