package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles the four transaction kinds. All record routes
// are append-only; there are no update or delete routes by design of the
// ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
	}
	income := rg.Group("/income")
	{
		income.POST("", h.createIncome)
		income.GET("", h.listIncome)
	}
	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
	}
	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an expense; the paying account's balance is debited atomically with the insert
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account or category not found"
// @Security BearerAuth
// @Router /expenses [post]
func (h *ledgerHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.ledgerService.RecordExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses with keyset pagination, optionally filtered by month and category
// @Tags ledger
// @Produce  json
// @Param   month query string false "Month filter (YYYY-MM)"
// @Param   categoryID query string false "Category filter"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *ledgerHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.ledgerService.ListExpenses(c.Request.Context(), userID, portsrepo.ListExpensesParams{
		Month:      params.Month,
		CategoryID: params.CategoryID,
		Limit:      params.Limit,
		NextToken:  params.NextToken,
	})
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list expenses")
		return
	}

	resp := dto.ListExpensesResponse{
		Expenses:  make([]dto.ExpenseResponse, len(result.Expenses)),
		NextToken: result.NextToken,
	}
	for i := range result.Expenses {
		resp.Expenses[i] = dto.ToExpenseResponse(&result.Expenses[i])
	}
	c.JSON(http.StatusOK, resp)
}

// createIncome godoc
// @Summary Record income
// @Description Records income; the receiving account's balance is credited atomically with the insert
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /income [post]
func (h *ledgerHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	income, err := h.ledgerService.RecordIncome(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record income")
		return
	}
	c.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

// listIncome godoc
// @Summary List income
// @Description Lists income records, optionally filtered to one month
// @Tags ledger
// @Produce  json
// @Param   month query string false "Month filter (YYYY-MM)"
// @Success 200 {array} dto.IncomeResponse
// @Security BearerAuth
// @Router /income [get]
func (h *ledgerHandler) listIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	incomes, err := h.ledgerService.ListIncome(c.Request.Context(), userID, c.Query("month"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list income")
		return
	}

	resp := make([]dto.IncomeResponse, len(incomes))
	for i := range incomes {
		resp[i] = dto.ToIncomeResponse(&incomes[i])
	}
	c.JSON(http.StatusOK, resp)
}

// createInvestment godoc
// @Summary Record an investment
// @Description Records an investment buy or sell at cost basis; account balances are not touched
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /investments [post]
func (h *ledgerHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investment, err := h.ledgerService.RecordInvestment(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record investment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// listInvestments godoc
// @Summary List investments
// @Description Lists all of the user's investments
// @Tags ledger
// @Produce  json
// @Success 200 {array} dto.InvestmentResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *ledgerHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investments, err := h.ledgerService.ListInvestments(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list investments")
		return
	}

	resp := make([]dto.InvestmentResponse, len(investments))
	for i := range investments {
		resp[i] = dto.ToInvestmentResponse(&investments[i])
	}
	c.JSON(http.StatusOK, resp)
}

// createTransfer godoc
// @Summary Record a transfer
// @Description Moves money between two accounts, both balances adjusted in one transaction
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /transfers [post]
func (h *ledgerHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.ledgerService.RecordTransfer(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record transfer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List transfers
// @Description Lists transfers, optionally bounded by from/to dates (YYYY-MM-DD)
// @Tags ledger
// @Produce  json
// @Param   from query string false "Start date inclusive (YYYY-MM-DD)"
// @Param   to query string false "End date exclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.TransferResponse
// @Security BearerAuth
// @Router /transfers [get]
func (h *ledgerHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var from, to time.Time
	var err error
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}
	}

	transfers, err := h.ledgerService.ListTransfers(c.Request.Context(), userID, from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transfers")
		return
	}

	resp := make([]dto.TransferResponse, len(transfers))
	for i := range transfers {
		resp[i] = dto.ToTransferResponse(&transfers[i])
	}
	c.JSON(http.StatusOK, resp)
}
