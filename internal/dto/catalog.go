package dto

import (
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=food beverage other"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type" binding:"omitempty,oneof=food beverage other"`
}

// CategoryResponse is the API shape of a category.
type CategoryResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
}

// ToCategoryResponse converts a domain.Category to its API shape.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
	}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return res
}

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Price      int64  `json:"price" binding:"required,gt=0"`
}

// UpdateProductRequest defines the data allowed for updating a product.
type UpdateProductRequest struct {
	CategoryID *string `json:"category_id"`
	Name       *string `json:"name"`
	Price      *int64  `json:"price" binding:"omitempty,gt=0"`
	IsActive   *bool   `json:"is_active"`
}

// ProductResponse is the API shape of a product.
type ProductResponse struct {
	ProductID  string `json:"product_id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	IsActive   bool   `json:"is_active"`
}

// ToProductResponse converts a domain.Product to its API shape.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:  p.ProductID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Price:      p.Price,
		IsActive:   p.IsActive,
	}
}

// ToListProductResponse converts a slice of products.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
