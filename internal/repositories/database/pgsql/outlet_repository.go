package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOutletRepository struct {
	BaseRepository
}

// newPgxOutletRepository creates a new repository for outlet data.
func newPgxOutletRepository(pool *pgxpool.Pool) portsrepo.OutletRepository {
	return &PgxOutletRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OutletRepository = (*PgxOutletRepository)(nil)

const fullOutletSelectQuery = `
	SELECT o.outlet_id, o.name, o.address, o.phone, o.is_active,
		o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
	FROM outlets o
`

func (r *PgxOutletRepository) getOutlets(ctx context.Context, filterQuery string, args ...any) ([]domain.Outlet, error) {
	rows, err := r.Pool.Query(ctx, fullOutletSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query outlets: %w", err)
	}
	defer rows.Close()

	outlets, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Outlet])
	if err != nil {
		return nil, fmt.Errorf("failed to collect outlet rows: %w", err)
	}
	return outlets, nil
}

func (r *PgxOutletRepository) SaveOutlet(ctx context.Context, outlet domain.Outlet) error {
	query := `
		INSERT INTO outlets (
			outlet_id, name, address, phone, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		outlet.OutletID,
		outlet.Name,
		outlet.Address,
		outlet.Phone,
		outlet.IsActive,
		outlet.CreatedAt,
		outlet.CreatedBy,
		outlet.LastUpdatedAt,
		outlet.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: outlet %s already exists", apperrors.ErrDuplicate, outlet.OutletID)
		}
		return fmt.Errorf("failed to save outlet %s: %w", outlet.OutletID, err)
	}
	return nil
}

func (r *PgxOutletRepository) FindOutletByID(ctx context.Context, outletID string) (*domain.Outlet, error) {
	outlets, err := r.getOutlets(ctx, `WHERE o.outlet_id = $1`, outletID)
	if err != nil {
		return nil, err
	}
	if len(outlets) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &outlets[0], nil
}

func (r *PgxOutletRepository) ListOutlets(ctx context.Context, limit, offset int) ([]domain.Outlet, error) {
	return r.getOutlets(ctx, `ORDER BY o.name LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PgxOutletRepository) UpdateOutlet(ctx context.Context, outlet domain.Outlet) error {
	query := `
		UPDATE outlets SET
			name = $2, address = $3, phone = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE outlet_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		outlet.OutletID,
		outlet.Name,
		outlet.Address,
		outlet.Phone,
		outlet.IsActive,
		outlet.LastUpdatedAt,
		outlet.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update outlet %s: %w", outlet.OutletID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
