package dto

import (
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// CreateOutletRequest defines the data needed to register an outlet.
type CreateOutletRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
}

// UpdateOutletRequest defines the data allowed for updating an outlet.
type UpdateOutletRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

// OutletResponse is the API shape of an outlet.
type OutletResponse struct {
	OutletID string `json:"outlet_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

// ToOutletResponse converts a domain.Outlet to its API shape.
func ToOutletResponse(o *domain.Outlet) OutletResponse {
	return OutletResponse{
		OutletID: o.OutletID,
		Name:     o.Name,
		Address:  o.Address,
		Phone:    o.Phone,
		IsActive: o.IsActive,
	}
}

// ToListOutletResponse converts a slice of outlets.
func ToListOutletResponse(outlets []domain.Outlet) []OutletResponse {
	res := make([]OutletResponse, len(outlets))
	for i, o := range outlets {
		res[i] = ToOutletResponse(&o)
	}
	return res
}
