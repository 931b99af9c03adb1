package repositories

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// CategoryRepository defines persistence operations for menu categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// ProductRepository defines persistence operations for menu products.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	// FindProductsByIDs returns the matching products keyed by ID; absent
	// IDs are simply missing from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
}
