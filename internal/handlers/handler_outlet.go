package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// outletHandler handles HTTP requests related to outlets.
type outletHandler struct {
	outletService portssvc.OutletSvc
}

// newOutletHandler creates a new outletHandler.
func newOutletHandler(os portssvc.OutletSvc) *outletHandler {
	return &outletHandler{outletService: os}
}

// registerOutletRoutes registers routes related to outlets.
func registerOutletRoutes(rg *gin.RouterGroup, outletService portssvc.OutletSvc) {
	h := newOutletHandler(outletService)

	outlets := rg.Group("/outlets")
	{
		outlets.POST("", h.createOutlet)
		outlets.GET("", h.listOutlets)
		outlets.GET("/:id", h.getOutlet)
		outlets.PUT("/:id", h.updateOutlet)
	}
}

// createOutlet godoc
// @Summary Register an outlet
// @Tags outlets
// @Accept json
// @Produce json
// @Param request body dto.CreateOutletRequest true "Outlet details"
// @Success 201 {object} dto.Response{data=dto.OutletResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to create outlet"
// @Router /outlets [post]
func (h *outletHandler) createOutlet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOutlet", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	outlet, err := h.outletService.CreateOutlet(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, "Failed to create outlet", err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.ToOutletResponse(outlet)))
}

// getOutlet godoc
// @Summary Get an outlet by ID
// @Tags outlets
// @Produce json
// @Param id path string true "Outlet ID"
// @Success 200 {object} dto.Response{data=dto.OutletResponse}
// @Failure 404 {object} dto.Response "Outlet not found"
// @Failure 500 {object} dto.Response "Failed to get outlet"
// @Router /outlets/{id} [get]
func (h *outletHandler) getOutlet(c *gin.Context) {
	outlet, err := h.outletService.GetOutlet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get outlet", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToOutletResponse(outlet)))
}

// listOutlets godoc
// @Summary List outlets
// @Tags outlets
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} dto.Response{data=[]dto.OutletResponse}
// @Failure 500 {object} dto.Response "Failed to list outlets"
// @Router /outlets [get]
func (h *outletHandler) listOutlets(c *gin.Context) {
	limit, offset := pageParams(c)
	outlets, err := h.outletService.ListOutlets(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, "Failed to list outlets", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToListOutletResponse(outlets)))
}

// updateOutlet godoc
// @Summary Update an outlet
// @Tags outlets
// @Accept json
// @Produce json
// @Param id path string true "Outlet ID"
// @Param request body dto.UpdateOutletRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.OutletResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 404 {object} dto.Response "Outlet not found"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to update outlet"
// @Router /outlets/{id} [put]
func (h *outletHandler) updateOutlet(c *gin.Context) {
	var req dto.UpdateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	outlet, err := h.outletService.UpdateOutlet(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, "Failed to update outlet", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToOutletResponse(outlet)))
}
