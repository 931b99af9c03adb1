package services

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
)

// CategorySvc manages menu categories.
type CategorySvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, actor string) (*domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, actor string) (*domain.Category, error)
}

// ProductSvc manages menu products.
type ProductSvc interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, actor string) (*domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, actor string) (*domain.Product, error)
}
