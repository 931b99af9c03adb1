package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dailyCashHandler handles HTTP requests for the daily cash ledger.
type dailyCashHandler struct {
	ledgerService     portssvc.DailyLedgerSvc
	reconcilerService portssvc.SalesReconcilerSvc
}

// newDailyCashHandler creates a new dailyCashHandler.
func newDailyCashHandler(ls portssvc.DailyLedgerSvc, rs portssvc.SalesReconcilerSvc) *dailyCashHandler {
	return &dailyCashHandler{
		ledgerService:     ls,
		reconcilerService: rs,
	}
}

// registerDailyCashRoutes registers routes related to the daily cash ledger.
func registerDailyCashRoutes(rg *gin.RouterGroup, ledgerService portssvc.DailyLedgerSvc, reconcilerService portssvc.SalesReconcilerSvc) {
	h := newDailyCashHandler(ledgerService, reconcilerService)

	dailyCash := rg.Group("/daily-cash")
	{
		dailyCash.POST("/opening-balance", h.setOpeningBalance)
		dailyCash.POST("/expense", h.addExpense)
		dailyCash.GET("", h.getDailyCash)
	}
}

// setOpeningBalance godoc
// @Summary Set the opening balance for a day
// @Description Creates or overwrites the opening balance of the caller's outlet for the given date. Last write wins.
// @Tags daily-cash
// @Accept json
// @Produce json
// @Param request body dto.OpeningBalanceRequest true "Opening balance"
// @Success 200 {object} dto.Response{data=dto.LedgerEntryResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to set opening balance"
// @Router /daily-cash/opening-balance [post]
func (h *dailyCashHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetOpeningBalance", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}
	outletID, ok := middleware.GetOutletIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}

	entry, err := h.ledgerService.SetOpeningBalance(c.Request.Context(), outletID, date, *req.OpeningBalance, userID)
	if err != nil {
		respondError(c, "Failed to set opening balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToLedgerEntryResponse(entry)))
}

// addExpense godoc
// @Summary Record an expense for a day
// @Description Adds an expense to the caller's outlet ledger, creating the day entry with a zero opening balance if needed. Expenses accumulate; each call appends one note line.
// @Tags daily-cash
// @Accept json
// @Produce json
// @Param request body dto.ExpenseRequest true "Expense"
// @Success 200 {object} dto.Response{data=dto.LedgerEntryResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to record expense"
// @Router /daily-cash/expense [post]
func (h *dailyCashHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddExpense", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}
	outletID, ok := middleware.GetOutletIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}

	entry, err := h.ledgerService.AddExpense(c.Request.Context(), outletID, date, *req.Amount, req.Note, userID)
	if err != nil {
		respondError(c, "Failed to record expense", err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToLedgerEntryResponse(entry)))
}

// getDailyCash godoc
// @Summary Get the daily cash summary
// @Description Returns the caller's outlet ledger for one date, combined with that day's cash sales and the computed closing balance. Days without a ledger entry answer with zero values, never 404.
// @Tags daily-cash
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=dto.DailyCashResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 422 {object} dto.Response "Invalid date"
// @Failure 500 {object} dto.Response "Failed to get daily cash"
// @Router /daily-cash [get]
func (h *dailyCashHandler) getDailyCash(c *gin.Context) {
	outletID, ok := middleware.GetOutletIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	date, ok := parseDate(c, c.Query("date"))
	if !ok {
		return
	}

	summary, err := h.reconcilerService.GetDailySummary(c.Request.Context(), outletID, date)
	if err != nil {
		respondError(c, "Failed to get daily cash", err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToDailyCashResponse(summary)))
}
