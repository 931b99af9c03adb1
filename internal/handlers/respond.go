package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the failure envelope. Validation
// failures answer 422 to distinguish them from malformed JSON.
func respondError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	}
	c.JSON(status, dto.ErrorResponse(message, err))
}

// respondBindError answers 422 for request payloads that fail binding or
// validation tags.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse("Invalid request format", err))
}

// respondScopeError answers 401 when the gateway identity headers are
// missing on an endpoint that requires them.
func respondScopeError(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Missing request identity", nil))
}

// parseDate parses a YYYY-MM-DD value and answers 422 itself on failure,
// so handlers do not rely solely on binding tags for date validity.
func parseDate(c *gin.Context, value string) (time.Time, bool) {
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		respondBindError(c, err)
		return time.Time{}, false
	}
	return date, true
}

// pageParams reads limit/offset query parameters with sane defaults.
func pageParams(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
