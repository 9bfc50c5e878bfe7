package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exchangeRateHandler struct {
	ratesService portssvc.RatesSvcFacade
}

func registerExchangeRateRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesSvcFacade) {
	h := &exchangeRateHandler{ratesService: ratesService}

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.PUT("", h.upsertRate)
	}
}

// listRates godoc
// @Summary List exchange rates
// @Description Lists the flat rate table (rate into the base currency per code)
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /rates [get]
func (h *exchangeRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.ratesService.ListRates(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// upsertRate godoc
// @Summary Set an exchange rate
// @Description Sets or replaces one currency's rate into the base currency; stored base snapshots are never recomputed
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpsertRateRequest true "Rate details"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /rates [put]
func (h *exchangeRateHandler) upsertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.ratesService.UpsertRate(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to upsert rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
