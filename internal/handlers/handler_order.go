package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests for orders and sales summaries.
type orderHandler struct {
	orderService      portssvc.OrderSvc
	reconcilerService portssvc.SalesReconcilerSvc
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(os portssvc.OrderSvc, rs portssvc.SalesReconcilerSvc) *orderHandler {
	return &orderHandler{
		orderService:      os,
		reconcilerService: rs,
	}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvc, reconcilerService portssvc.SalesReconcilerSvc) {
	h := newOrderHandler(orderService, reconcilerService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/summary", h.getSummary)
		orders.GET("/:id", h.getOrder)
	}
}

// createOrder godoc
// @Summary Capture a new order
// @Description Prices the requested items from the product registry, applies the optional discount, tax and service charge, and persists the order atomically. The QRIS fee is computed once here and never recalculated.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.Response{data=dto.OrderResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 404 {object} dto.Response "Unknown product, member or discount"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to create order"
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
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
	req.OutletID = outletID

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, "Failed to create order", err)
		return
	}

	logger.Info("Order created", slog.String("order_id", order.OrderID), slog.Int64("total", order.Total))
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.ToOrderResponse(order)))
}

// getOrder godoc
// @Summary Get an order by ID
// @Description Retrieves one order together with its line items.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.Response{data=dto.OrderResponse}
// @Failure 404 {object} dto.Response "Order not found"
// @Failure 500 {object} dto.Response "Failed to get order"
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get order", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToOrderResponse(order)))
}

// listOrders godoc
// @Summary List orders
// @Description Returns order headers matching the filter, newest first.
// @Tags orders
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param outlet_id query string false "Outlet filter"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param next_token query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.Response{data=dto.ListOrdersResponse}
// @Failure 422 {object} dto.Response "Invalid parameters"
// @Failure 500 {object} dto.Response "Failed to list orders"
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		respondError(c, "Failed to list orders", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(page))
}

// getSummary godoc
// @Summary Get the sales summary over a date range
// @Description Computes the reconciliation report over [start_date, end_date]: sales totals, cash/QRIS split, QRIS fees, beverage sales, ledger totals, per-payment-method breakdown and the closing balance. Pass daily_breakdown=true to attach one entry per calendar day.
// @Tags orders
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param outlet_id query string false "Outlet filter (empty means all outlets)"
// @Param daily_breakdown query bool false "Include the per-day breakdown"
// @Success 200 {object} dto.Response{data=dto.SummaryResponse}
// @Failure 422 {object} dto.Response "Invalid parameters"
// @Failure 500 {object} dto.Response "Failed to compute summary"
// @Router /orders/summary [get]
func (h *orderHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetSummary", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	start, ok := parseDate(c, params.StartDate)
	if !ok {
		return
	}
	end, ok := parseDate(c, params.EndDate)
	if !ok {
		return
	}

	summary, err := h.reconcilerService.GetRangeSummary(c.Request.Context(), start, end, params.OutletID, params.DailyBreakdown)
	if err != nil {
		respondError(c, "Failed to compute summary", err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToSummaryResponse(summary)))
}
