package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportingHandler handles HTTP requests related to reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports/transactions")
	{
		reports.GET("/summary", h.getTransactionSummary)
		reports.GET("/export", h.exportTransactions)
	}
}

// getTransactionSummary godoc
// @Summary Summarize transactions by type and category
// @Description Totals are in the caller's home currency using the amounts converted at write time.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD), inclusive"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.TransactionSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/transactions/summary [get]
func (h *reportingHandler) getTransactionSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	from, to, ok := bindReportRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.TransactionSummary(c.Request.Context(), userID, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionSummaryResponse(report))
}

// exportTransactions godoc
// @Summary Export transactions as CSV or XLSX
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "Start date (YYYY-MM-DD), inclusive"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {string} string "Export file"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/transactions/export [get]
func (h *reportingHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	from, to, ok := bindReportRange(c)
	if !ok {
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	export, contentType := h.reportingService.ExportTransactions, "text/csv; charset=utf-8"
	switch format {
	case "csv":
	case "xlsx":
		export, contentType = h.reportingService.ExportTransactionsXLSX, xlsxContentType
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}

	var buf bytes.Buffer
	if err := export(c.Request.Context(), userID, from, to, &buf); err != nil {
		writeServiceError(c, logger, err, "Failed to export transactions")
		return
	}

	filename := fmt.Sprintf("transactions-%s.%s", time.Now().UTC().Format("20060102"), format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func bindReportRange(c *gin.Context) (from, to *time.Time, ok bool) {
	var q dto.ReportRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range: " + err.Error()})
		return nil, nil, false
	}
	// The binding tag has already validated the layout.
	from, _ = optionalDate(q.From)
	to, _ = optionalDate(q.To)
	return from, to, true
}
