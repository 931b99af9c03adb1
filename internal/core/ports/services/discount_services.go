package services

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
)

// DiscountSvc manages the discount catalogue.
type DiscountSvc interface {
	CreateDiscount(ctx context.Context, req dto.CreateDiscountRequest, actor string) (*domain.Discount, error)
	GetDiscount(ctx context.Context, discountID string) (*domain.Discount, error)
	ListDiscounts(ctx context.Context, limit, offset int) ([]domain.Discount, error)
	UpdateDiscount(ctx context.Context, discountID string, req dto.UpdateDiscountRequest, actor string) (*domain.Discount, error)
	DeleteDiscount(ctx context.Context, discountID string) error
}
