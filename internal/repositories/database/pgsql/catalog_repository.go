package pgsql

import (
	"context"
	"fmt"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for menu category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const fullCategorySelectQuery = `
	SELECT c.category_id, c.name, c.type,
		c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
	FROM categories c
`

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, fullCategorySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to collect category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (
			category_id, name, type,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Type,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	categories, err := r.getCategories(ctx, `WHERE c.category_id = $1`, categoryID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	return r.getCategories(ctx, `ORDER BY c.name LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories SET
			name = $2, type = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Type,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for menu product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const fullProductSelectQuery = `
	SELECT p.product_id, p.category_id, p.name, p.price, p.is_active,
		p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
	FROM products p
`

func (r *PgxProductRepository) getProducts(ctx context.Context, filterQuery string, args ...any) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, fullProductSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (
			product_id, category_id, name, price, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.CategoryID,
		product.Name,
		product.Price,
		product.IsActive,
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	products, err := r.getProducts(ctx, `WHERE p.product_id = $1`, productID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &products[0], nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	products, err := r.getProducts(ctx, `WHERE p.product_id = ANY($1)`, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	return byID, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	return r.getProducts(ctx, `ORDER BY p.name LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products SET
			category_id = $2, name = $3, price = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.CategoryID,
		product.Name,
		product.Price,
		product.IsActive,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
