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

type PgxDiscountRepository struct {
	BaseRepository
}

// newPgxDiscountRepository creates a new repository for discount data.
func newPgxDiscountRepository(pool *pgxpool.Pool) portsrepo.DiscountRepository {
	return &PgxDiscountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DiscountRepository = (*PgxDiscountRepository)(nil)

const fullDiscountSelectQuery = `
	SELECT d.discount_id, d.name, d.type, d.value, d.description, d.is_active,
		d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
	FROM discounts d
`

func (r *PgxDiscountRepository) getDiscounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Discount, error) {
	rows, err := r.Pool.Query(ctx, fullDiscountSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	defer rows.Close()

	discounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Discount])
	if err != nil {
		return nil, fmt.Errorf("failed to collect discount rows: %w", err)
	}
	return discounts, nil
}

func (r *PgxDiscountRepository) SaveDiscount(ctx context.Context, discount domain.Discount) error {
	query := `
		INSERT INTO discounts (
			discount_id, name, type, value, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		discount.DiscountID,
		discount.Name,
		discount.Type,
		discount.Value,
		discount.Description,
		discount.IsActive,
		discount.CreatedAt,
		discount.CreatedBy,
		discount.LastUpdatedAt,
		discount.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save discount %s: %w", discount.DiscountID, err)
	}
	return nil
}

func (r *PgxDiscountRepository) FindDiscountByID(ctx context.Context, discountID string) (*domain.Discount, error) {
	discounts, err := r.getDiscounts(ctx, `WHERE d.discount_id = $1`, discountID)
	if err != nil {
		return nil, err
	}
	if len(discounts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &discounts[0], nil
}

func (r *PgxDiscountRepository) ListDiscounts(ctx context.Context, limit, offset int) ([]domain.Discount, error) {
	return r.getDiscounts(ctx, `ORDER BY d.name LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PgxDiscountRepository) UpdateDiscount(ctx context.Context, discount domain.Discount) error {
	query := `
		UPDATE discounts SET
			name = $2, type = $3, value = $4, description = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE discount_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		discount.DiscountID,
		discount.Name,
		discount.Type,
		discount.Value,
		discount.Description,
		discount.IsActive,
		discount.LastUpdatedAt,
		discount.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update discount %s: %w", discount.DiscountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDiscountRepository) DeleteDiscount(ctx context.Context, discountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM discounts WHERE discount_id = $1;`, discountID)
	if err != nil {
		return fmt.Errorf("failed to delete discount %s: %w", discountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
