package dto

import (
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// CreateDiscountRequest defines the data needed to create a discount.
type CreateDiscountRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=percentage fixed"`
	Value       int64  `json:"value" binding:"required,gt=0"`
	Description string `json:"description"`
}

// UpdateDiscountRequest defines the data allowed for updating a discount.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateDiscountRequest struct {
	Name        *string `json:"name"`
	Value       *int64  `json:"value" binding:"omitempty,gt=0"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// DiscountResponse is the API shape of a discount.
type DiscountResponse struct {
	DiscountID  string `json:"discount_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       int64  `json:"value"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// ToDiscountResponse converts a domain.Discount to its API shape.
func ToDiscountResponse(d *domain.Discount) DiscountResponse {
	return DiscountResponse{
		DiscountID:  d.DiscountID,
		Name:        d.Name,
		Type:        string(d.Type),
		Value:       d.Value,
		Description: d.Description,
		IsActive:    d.IsActive,
	}
}

// ToListDiscountResponse converts a slice of discounts.
func ToListDiscountResponse(discounts []domain.Discount) []DiscountResponse {
	res := make([]DiscountResponse, len(discounts))
	for i, d := range discounts {
		res[i] = ToDiscountResponse(&d)
	}
	return res
}
