package domain

import "time"

// AuditFields holds standard audit information embedded in every mutable
// entity. The IDs reference the staff member forwarded by the gateway.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
