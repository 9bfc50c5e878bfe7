package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.PUT("", h.upsertBudget)
		budgets.GET("/:month/status", h.monthStatuses)
	}
}

// upsertBudget godoc
// @Summary Set a monthly budget
// @Description Sets or replaces the base-currency budget for a category and month
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.UpsertBudgetRequest true "Budget details"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /budgets [put]
func (h *budgetHandler) upsertBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.UpsertBudget(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to upsert budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// monthStatuses godoc
// @Summary Budget statuses for a month
// @Description Compares spend against budget per category, in the display currency
// @Tags budgets
// @Produce  json
// @Param   month path string true "Month (YYYY-MM)"
// @Param   currency query string false "Display currency override"
// @Success 200 {object} dto.BudgetStatusListResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Security BearerAuth
// @Router /budgets/{month}/status [get]
func (h *budgetHandler) monthStatuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := c.Param("month")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	displayCurrency := c.Query("currency")
	statuses, err := h.budgetService.MonthStatuses(c.Request.Context(), userID, month, displayCurrency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute budget statuses")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetStatusListResponse(month, displayCurrency, statuses))
}
