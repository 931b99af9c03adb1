package repositories

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// OutletRepository defines persistence operations for outlets.
type OutletRepository interface {
	SaveOutlet(ctx context.Context, outlet domain.Outlet) error
	FindOutletByID(ctx context.Context, outletID string) (*domain.Outlet, error)
	ListOutlets(ctx context.Context, limit, offset int) ([]domain.Outlet, error)
	UpdateOutlet(ctx context.Context, outlet domain.Outlet) error
}
