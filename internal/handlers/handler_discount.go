package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// discountHandler handles HTTP requests related to discounts.
type discountHandler struct {
	discountService portssvc.DiscountSvc
}

// newDiscountHandler creates a new discountHandler.
func newDiscountHandler(ds portssvc.DiscountSvc) *discountHandler {
	return &discountHandler{discountService: ds}
}

// registerDiscountRoutes registers routes related to discounts.
func registerDiscountRoutes(rg *gin.RouterGroup, discountService portssvc.DiscountSvc) {
	h := newDiscountHandler(discountService)

	discounts := rg.Group("/discounts")
	{
		discounts.POST("", h.createDiscount)
		discounts.GET("", h.listDiscounts)
		discounts.GET("/:id", h.getDiscount)
		discounts.PUT("/:id", h.updateDiscount)
		discounts.DELETE("/:id", h.deleteDiscount)
	}
}

// createDiscount godoc
// @Summary Create a discount
// @Description Adds a percentage or fixed-amount discount to the catalogue.
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body dto.CreateDiscountRequest true "Discount details"
// @Success 201 {object} dto.Response{data=dto.DiscountResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to create discount"
// @Router /discounts [post]
func (h *discountHandler) createDiscount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDiscount", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	discount, err := h.discountService.CreateDiscount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, "Failed to create discount", err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.ToDiscountResponse(discount)))
}

// getDiscount godoc
// @Summary Get a discount by ID
// @Tags discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 200 {object} dto.Response{data=dto.DiscountResponse}
// @Failure 404 {object} dto.Response "Discount not found"
// @Failure 500 {object} dto.Response "Failed to get discount"
// @Router /discounts/{id} [get]
func (h *discountHandler) getDiscount(c *gin.Context) {
	discount, err := h.discountService.GetDiscount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get discount", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToDiscountResponse(discount)))
}

// listDiscounts godoc
// @Summary List discounts
// @Tags discounts
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} dto.Response{data=[]dto.DiscountResponse}
// @Failure 500 {object} dto.Response "Failed to list discounts"
// @Router /discounts [get]
func (h *discountHandler) listDiscounts(c *gin.Context) {
	limit, offset := pageParams(c)
	discounts, err := h.discountService.ListDiscounts(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, "Failed to list discounts", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToListDiscountResponse(discounts)))
}

// updateDiscount godoc
// @Summary Update a discount
// @Tags discounts
// @Accept json
// @Produce json
// @Param id path string true "Discount ID"
// @Param request body dto.UpdateDiscountRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.DiscountResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 404 {object} dto.Response "Discount not found"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to update discount"
// @Router /discounts/{id} [put]
func (h *discountHandler) updateDiscount(c *gin.Context) {
	var req dto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	discount, err := h.discountService.UpdateDiscount(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, "Failed to update discount", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToDiscountResponse(discount)))
}

// deleteDiscount godoc
// @Summary Delete a discount
// @Tags discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Discount not found"
// @Failure 500 {object} dto.Response "Failed to delete discount"
// @Router /discounts/{id} [delete]
func (h *discountHandler) deleteDiscount(c *gin.Context) {
	if err := h.discountService.DeleteDiscount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to delete discount", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(nil))
}
