package domain

import "time"

// Member represents a registered loyalty customer. Members may be attached
// to an order so discounts can be attributed to them.
type Member struct {
	MemberID    string    `json:"memberID"` // Primary Key (UUID)
	Name        string    `json:"name"`
	Phone       string    `json:"phone"` // Unique, used as the lookup key at the register
	Email       string    `json:"email"`
	JoinedAt    time.Time `json:"joinedAt"`
	AuditFields           // Embed common audit fields
}
