package domain

// DiscountType defines how a discount value is applied to an order subtotal.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage" // Value is a percent of the subtotal (0-100)
	DiscountFixed      DiscountType = "fixed"      // Value is a flat rupiah amount
)

// Discount is a promotion that can be applied at order time.
type Discount struct {
	DiscountID  string       `json:"discountID"` // Primary Key (UUID)
	Name        string       `json:"name"`
	Type        DiscountType `json:"type"`
	Value       int64        `json:"value"` // Percent for percentage type, rupiah for fixed type
	Description string       `json:"description"`
	IsActive    bool         `json:"isActive"`
	AuditFields              // Embed common audit fields
}

// Apply computes the rupiah discount amount for a given subtotal. The
// result is clamped to the subtotal so an order total never goes negative.
func (d Discount) Apply(subTotal int64) int64 {
	var amount int64
	switch d.Type {
	case DiscountPercentage:
		amount = subTotal * d.Value / 100
	case DiscountFixed:
		amount = d.Value
	}
	if amount > subTotal {
		amount = subTotal
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}
