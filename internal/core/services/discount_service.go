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

// discountService implements the DiscountSvc interface
type discountService struct {
	BaseService
	discountRepo portsrepo.DiscountRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(repo portsrepo.DiscountRepository) portssvc.DiscountSvc {
	return &discountService{discountRepo: repo}
}

var _ portssvc.DiscountSvc = (*discountService)(nil)

func (s *discountService) CreateDiscount(ctx context.Context, req dto.CreateDiscountRequest, actor string) (*domain.Discount, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}
	discountType := domain.DiscountType(req.Type)
	if discountType == domain.DiscountPercentage && req.Value > 100 {
		return nil, fmt.Errorf("%w: percentage discount cannot exceed 100", apperrors.ErrValidation)
	}

	now := time.Now()
	discount := domain.Discount{
		DiscountID:  uuid.NewString(),
		Name:        req.Name,
		Type:        discountType,
		Value:       req.Value,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.discountRepo.SaveDiscount(ctx, discount); err != nil {
		s.LogError(ctx, err, "Failed to save discount", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save discount: %w", err)
	}

	s.LogInfo(ctx, "Discount created", slog.String("discount_id", discount.DiscountID))
	return &discount, nil
}

func (s *discountService) GetDiscount(ctx context.Context, discountID string) (*domain.Discount, error) {
	discount, err := s.discountRepo.FindDiscountByID(ctx, discountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch discount", slog.String("discount_id", discountID))
		return nil, fmt.Errorf("failed to fetch discount: %w", err)
	}
	return discount, nil
}

func (s *discountService) ListDiscounts(ctx context.Context, limit, offset int) ([]domain.Discount, error) {
	discounts, err := s.discountRepo.ListDiscounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list discounts")
		return nil, fmt.Errorf("failed to list discounts: %w", err)
	}
	return discounts, nil
}

func (s *discountService) UpdateDiscount(ctx context.Context, discountID string, req dto.UpdateDiscountRequest, actor string) (*domain.Discount, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	discount, err := s.discountRepo.FindDiscountByID(ctx, discountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch discount: %w", err)
	}

	if req.Name != nil {
		discount.Name = *req.Name
	}
	if req.Value != nil {
		if discount.Type == domain.DiscountPercentage && *req.Value > 100 {
			return nil, fmt.Errorf("%w: percentage discount cannot exceed 100", apperrors.ErrValidation)
		}
		discount.Value = *req.Value
	}
	if req.Description != nil {
		discount.Description = *req.Description
	}
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}
	discount.LastUpdatedAt = time.Now()
	discount.LastUpdatedBy = actor

	if err := s.discountRepo.UpdateDiscount(ctx, *discount); err != nil {
		s.LogError(ctx, err, "Failed to update discount", slog.String("discount_id", discountID))
		return nil, fmt.Errorf("failed to update discount: %w", err)
	}
	return discount, nil
}

func (s *discountService) DeleteDiscount(ctx context.Context, discountID string) error {
	if err := s.discountRepo.DeleteDiscount(ctx, discountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete discount", slog.String("discount_id", discountID))
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	s.LogInfo(ctx, "Discount deleted", slog.String("discount_id", discountID))
	return nil
}
