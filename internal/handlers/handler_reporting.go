package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.periodSummary)
		reports.GET("/networth", h.netWorth)
		reports.GET("/monthly/:month", h.monthlyReport)
	}
}

// periodSummary godoc
// @Summary Period summary
// @Description Aggregates income, expenses, net savings and savings rate over [from, to) in the display currency
// @Tags reports
// @Produce  json
// @Param   from query string true "Start date inclusive (YYYY-MM-DD)"
// @Param   to query string true "End date exclusive (YYYY-MM-DD)"
// @Param   currency query string false "Display currency override"
// @Success 200 {object} dto.PeriodSummaryResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) periodSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PeriodSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, _ := time.Parse("2006-01-02", params.From)
	to, _ := time.Parse("2006-01-02", params.To)
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be after from"})
		return
	}

	summary, err := h.reportingService.PeriodSummary(c.Request.Context(), userID, from, to, params.Currency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute period summary")
		return
	}

	c.JSON(http.StatusOK, dto.PeriodSummaryResponse{
		From:            params.From,
		To:              params.To,
		DisplayCurrency: params.Currency,
		Income:          summary.Income,
		Expenses:        summary.Expenses,
		NetSavings:      summary.NetSavings,
		SavingsRate:     summary.SavingsRate,
	})
}

// netWorth godoc
// @Summary Net worth
// @Description Values active accounts at current rates plus investments at cost basis, in the display currency
// @Tags reports
// @Produce  json
// @Param   currency query string false "Display currency override"
// @Success 200 {object} dto.NetWorthResponse
// @Security BearerAuth
// @Router /reports/networth [get]
func (h *reportingHandler) netWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	currency := c.Query("currency")
	report, err := h.reportingService.NetWorth(c.Request.Context(), userID, currency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute net worth")
		return
	}
	c.JSON(http.StatusOK, dto.ToNetWorthResponse(report, currency))
}

// monthlyReport godoc
// @Summary Monthly report
// @Description The one-month dashboard: summary, per-category budget variance and largest expenses
// @Tags reports
// @Produce  json
// @Param   month path string true "Month (YYYY-MM)"
// @Param   currency query string false "Display currency override"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Security BearerAuth
// @Router /reports/monthly/{month} [get]
func (h *reportingHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := c.Param("month")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	currency := c.Query("currency")
	report, err := h.reportingService.MonthlyReport(c.Request.Context(), userID, month, currency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute monthly report")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report, currency))
}
