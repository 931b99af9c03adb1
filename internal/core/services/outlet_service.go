package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/google/uuid"
)

// outletService implements the OutletSvc interface
type outletService struct {
	BaseService
	outletRepo portsrepo.OutletRepository
}

// NewOutletService creates a new outlet service
func NewOutletService(repo portsrepo.OutletRepository) portssvc.OutletSvc {
	return &outletService{outletRepo: repo}
}

var _ portssvc.OutletSvc = (*outletService)(nil)

func (s *outletService) CreateOutlet(ctx context.Context, req dto.CreateOutletRequest, actor string) (*domain.Outlet, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	outlet := domain.Outlet{
		OutletID: uuid.NewString(),
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.outletRepo.SaveOutlet(ctx, outlet); err != nil {
		s.LogError(ctx, err, "Failed to save outlet", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save outlet: %w", err)
	}

	s.LogInfo(ctx, "Outlet registered", slog.String("outlet_id", outlet.OutletID))
	return &outlet, nil
}

func (s *outletService) GetOutlet(ctx context.Context, outletID string) (*domain.Outlet, error) {
	outlet, err := s.outletRepo.FindOutletByID(ctx, outletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch outlet", slog.String("outlet_id", outletID))
		return nil, fmt.Errorf("failed to fetch outlet: %w", err)
	}
	return outlet, nil
}

func (s *outletService) ListOutlets(ctx context.Context, limit, offset int) ([]domain.Outlet, error) {
	outlets, err := s.outletRepo.ListOutlets(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list outlets")
		return nil, fmt.Errorf("failed to list outlets: %w", err)
	}
	return outlets, nil
}

func (s *outletService) UpdateOutlet(ctx context.Context, outletID string, req dto.UpdateOutletRequest, actor string) (*domain.Outlet, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	outlet, err := s.outletRepo.FindOutletByID(ctx, outletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch outlet: %w", err)
	}

	if req.Name != nil {
		outlet.Name = *req.Name
	}
	if req.Address != nil {
		outlet.Address = *req.Address
	}
	if req.Phone != nil {
		outlet.Phone = *req.Phone
	}
	if req.IsActive != nil {
		outlet.IsActive = *req.IsActive
	}
	outlet.LastUpdatedAt = time.Now()
	outlet.LastUpdatedBy = actor

	if err := s.outletRepo.UpdateOutlet(ctx, *outlet); err != nil {
		s.LogError(ctx, err, "Failed to update outlet", slog.String("outlet_id", outletID))
		return nil, fmt.Errorf("failed to update outlet: %w", err)
	}
	return outlet, nil
}
