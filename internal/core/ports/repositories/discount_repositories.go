package repositories

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// DiscountRepository defines persistence operations for discounts.
type DiscountRepository interface {
	SaveDiscount(ctx context.Context, discount domain.Discount) error
	FindDiscountByID(ctx context.Context, discountID string) (*domain.Discount, error)
	ListDiscounts(ctx context.Context, limit, offset int) ([]domain.Discount, error)
	UpdateDiscount(ctx context.Context, discount domain.Discount) error
	DeleteDiscount(ctx context.Context, discountID string) error
}
