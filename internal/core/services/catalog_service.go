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

// categoryService implements the CategorySvc interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepository) portssvc.CategorySvc {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, actor string) (*domain.Category, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Type:       domain.CategoryType(req.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, actor string) (*domain.Category, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Type != nil {
		category.Type = domain.CategoryType(*req.Type)
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = actor

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// productService implements the ProductSvc interface
type productService struct {
	BaseService
	productRepo  portsrepo.ProductRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo portsrepo.ProductRepository, categoryRepo portsrepo.CategoryRepository) portssvc.ProductSvc {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo}
}

var _ portssvc.ProductSvc = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, actor string) (*domain.Product, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	// The category must exist before a product can reference it.
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:  uuid.NewString(),
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, actor string) (*domain.Product, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, *req.CategoryID)
			}
			return nil, fmt.Errorf("failed to look up category: %w", err)
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = actor

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}
