package services

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
)

// OutletSvc manages the outlet registry.
type OutletSvc interface {
	CreateOutlet(ctx context.Context, req dto.CreateOutletRequest, actor string) (*domain.Outlet, error)
	GetOutlet(ctx context.Context, outletID string) (*domain.Outlet, error)
	ListOutlets(ctx context.Context, limit, offset int) ([]domain.Outlet, error)
	UpdateOutlet(ctx context.Context, outletID string, req dto.UpdateOutletRequest, actor string) (*domain.Outlet, error)
}
