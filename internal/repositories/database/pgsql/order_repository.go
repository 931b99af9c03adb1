package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for order data.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrderRepository = (*PgxOrderRepository)(nil)

const fullOrderSelectQuery = `
	SELECT o.order_id, o.outlet_id, o.member_id, o.payment_method, o.sub_total,
		o.tax, o.discount_amount, o.service_charge, o.total, o.qris_fee,
		o.transaction_time, o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
	FROM orders o
`

// SaveOrder writes the order row and its line items in one transaction.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	orderQuery := `
		INSERT INTO orders (
			order_id, outlet_id, member_id, payment_method, sub_total,
			tax, discount_amount, service_charge, total, qris_fee,
			transaction_time, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, orderQuery,
		order.OrderID,
		order.OutletID,
		order.MemberID,
		order.PaymentMethod,
		order.SubTotal,
		order.Tax,
		order.DiscountAmount,
		order.ServiceCharge,
		order.Total,
		order.QRISFee,
		order.TransactionTime,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: order %s already exists", apperrors.ErrDuplicate, order.OrderID)
		}
		return fmt.Errorf("failed to insert order %s: %w", order.OrderID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO order_items (order_item_id, order_id, product_id, quantity, price, sub_total)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range order.Items {
		batch.Queue(itemQuery,
			item.OrderItemID,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			item.Price,
			item.SubTotal,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range order.Items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert order items for order %s: %w", order.OrderID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close order item batch for order %s: %w", order.OrderID, err)
	}

	return r.Commit(ctx, tx)
}

// FindOrderByID retrieves an order together with its line items.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := fullOrderSelectQuery + `WHERE o.order_id = $1;`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order %s: %w", orderID, err)
	}
	defer rows.Close()

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[domain.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect order %s: %w", orderID, err)
	}

	items, err := r.findOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PgxOrderRepository) findOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT order_item_id, order_id, product_id, quantity, price, sub_total
		FROM order_items
		WHERE order_id = $1
		ORDER BY order_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for order %s: %w", orderID, err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.OrderItem])
	if err != nil {
		return nil, fmt.Errorf("failed to collect items for order %s: %w", orderID, err)
	}
	return items, nil
}

// ListOrders returns header rows only, newest first. Items are loaded on
// the single-order read path, not here. One extra row is fetched to decide
// whether a next page exists; the cursor is built from the last row kept.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, outletID string, start, end time.Time, limit int, nextToken *string) ([]domain.Order, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := fullOrderSelectQuery + `WHERE 1=1`
	args := []any{}
	argPos := 1
	if outletID != "" {
		query += fmt.Sprintf(` AND o.outlet_id = $%d`, argPos)
		args = append(args, outletID)
		argPos++
	}
	if !start.IsZero() {
		query += fmt.Sprintf(` AND o.transaction_time >= $%d`, argPos)
		args = append(args, start)
		argPos++
	}
	if !end.IsZero() {
		query += fmt.Sprintf(` AND o.transaction_time < $%d`, argPos)
		args = append(args, end)
		argPos++
	}
	if nextToken != nil && *nextToken != "" {
		lastTime, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		// Tuple comparison matches the descending sort order below.
		query += fmt.Sprintf(` AND (o.transaction_time, o.order_id) < ($%d, $%d)`, argPos, argPos+1)
		args = append(args, lastTime, lastID)
		argPos += 2
	}
	query += fmt.Sprintf(` ORDER BY o.transaction_time DESC, o.order_id DESC LIMIT $%d;`, argPos)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[domain.Order])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to collect orders: %w", err)
	}

	var newToken *string
	if len(orders) > limit {
		orders = orders[:limit]
		last := orders[limit-1]
		token := pagination.EncodeToken(last.TransactionTime, last.OrderID)
		newToken = &token
	}
	return orders, newToken, nil
}
