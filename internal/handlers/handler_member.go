package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests related to loyalty members.
type memberHandler struct {
	memberService portssvc.MemberSvc
}

// newMemberHandler creates a new memberHandler.
func newMemberHandler(ms portssvc.MemberSvc) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers routes related to members.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvc) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMember)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
	}
}

// createMember godoc
// @Summary Register a loyalty member
// @Description Registers a new member. The phone number is the unique lookup key used at the register.
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.Response{data=dto.MemberResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 409 {object} dto.Response "Phone number already registered"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to create member"
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMember", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, "Failed to create member", err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.ToMemberResponse(member)))
}

// getMember godoc
// @Summary Get a member by ID or phone
// @Description Retrieves one member. Pass phone=true to treat the path value as a phone number instead of an ID.
// @Tags members
// @Produce json
// @Param id path string true "Member ID (or phone number with phone=true)"
// @Param phone query bool false "Look up by phone number"
// @Success 200 {object} dto.Response{data=dto.MemberResponse}
// @Failure 404 {object} dto.Response "Member not found"
// @Failure 500 {object} dto.Response "Failed to get member"
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	find := h.memberService.GetMember
	if c.Query("phone") == "true" {
		find = h.memberService.GetMemberByPhone
	}
	member, err := find(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get member", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToMemberResponse(member)))
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} dto.Response{data=[]dto.MemberResponse}
// @Failure 500 {object} dto.Response "Failed to list members"
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	limit, offset := pageParams(c)
	members, err := h.memberService.ListMembers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, "Failed to list members", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToListMemberResponse(members)))
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.MemberResponse}
// @Failure 401 {object} dto.Response "Missing identity headers"
// @Failure 404 {object} dto.Response "Member not found"
// @Failure 409 {object} dto.Response "Phone number already registered"
// @Failure 422 {object} dto.Response "Invalid input"
// @Failure 500 {object} dto.Response "Failed to update member"
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondScopeError(c)
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, "Failed to update member", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToMemberResponse(member)))
}

// deleteMember godoc
// @Summary Delete a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Member not found"
// @Failure 500 {object} dto.Response "Failed to delete member"
// @Router /members/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to delete member", err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(nil))
}
