package middleware

import (
	"github.com/gin-gonic/gin"
)

// The acting user and outlet scope are established by the upstream
// gateway, which authenticates the session and forwards the identifiers
// as headers. Nothing in this service reads ambient session state; every
// write carries the explicit actor and outlet taken from these keys.
const (
	userIDKey   = contextKey("userID")
	outletIDKey = contextKey("outletID")

	// HeaderUserID carries the authenticated user's ID.
	HeaderUserID = "X-User-ID"
	// HeaderOutletID carries the outlet the caller is operating.
	HeaderOutletID = "X-Outlet-ID"
)

// RequestScope copies the gateway-provided user and outlet identifiers
// from headers into the Gin context. Presence is enforced per-handler:
// reads may run unscoped, writes require both.
func RequestScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader(HeaderUserID); userID != "" {
			c.Set(string(userIDKey), userID)
		}
		if outletID := c.GetHeader(HeaderOutletID); outletID != "" {
			c.Set(string(outletIDKey), outletID)
		}
		c.Next()
	}
}

// GetUserIDFromContext retrieves the acting user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetOutletIDFromContext retrieves the caller's outlet ID from the Gin
// context. It returns the outlet ID and a boolean indicating if it was found.
func GetOutletIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(outletIDKey))
	if !exists {
		return "", false
	}
	outletID, ok := val.(string)
	if !ok || outletID == "" {
		return "", false
	}
	return outletID, true
}
