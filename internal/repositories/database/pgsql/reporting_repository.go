package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository serves the read-only order aggregates consumed by
// the sales reconciler. Day bounds arrive as inclusive calendar dates and
// are applied as half-open timestamp ranges.
type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for sales aggregation queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.OrderAggregateRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrderAggregateRepository = (*PgxReportingRepository)(nil)

// dayBounds converts inclusive calendar-day bounds to a half-open
// timestamp range covering whole days.
func dayBounds(start, end time.Time) (time.Time, time.Time) {
	return start, end.AddDate(0, 0, 1)
}

// GetCashSales sums cash order totals for one outlet and day.
func (r *PgxReportingRepository) GetCashSales(ctx context.Context, outletID string, date time.Time) (int64, error) {
	from, to := dayBounds(date, date)
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE outlet_id = $1 AND payment_method = 'cash'
			AND transaction_time >= $2 AND transaction_time < $3;
	`
	var total int64
	err := r.Pool.QueryRow(ctx, query, outletID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum cash sales for outlet %s on %s: %w", outletID, date.Format(domain.DateFormat), err)
	}
	return total, nil
}

// GetSalesTotals computes the straight sums over the filtered order set.
func (r *PgxReportingRepository) GetSalesTotals(ctx context.Context, start, end time.Time, outletID string) (domain.SalesTotals, error) {
	from, to := dayBounds(start, end)
	query := `
		SELECT
			COALESCE(SUM(total), 0) AS total_revenue,
			COALESCE(SUM(discount_amount), 0) AS total_discount,
			COALESCE(SUM(tax), 0) AS total_tax,
			COALESCE(SUM(service_charge), 0) AS total_service_charge,
			COALESCE(SUM(sub_total), 0) AS total_sub_total,
			COALESCE(SUM(total) FILTER (WHERE payment_method = 'cash'), 0) AS cash_sales,
			COALESCE(SUM(total) FILTER (WHERE payment_method = 'qris'), 0) AS qris_sales,
			COALESCE(SUM(qris_fee) FILTER (WHERE payment_method = 'qris'), 0) AS qris_fee
		FROM orders
		WHERE transaction_time >= $1 AND transaction_time < $2
	`
	args := []any{from, to}
	if outletID != "" {
		query += ` AND outlet_id = $3`
		args = append(args, outletID)
	}

	rows, err := r.Pool.Query(ctx, query+`;`, args...)
	if err != nil {
		return domain.SalesTotals{}, fmt.Errorf("failed to query sales totals: %w", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.SalesTotals])
	if err != nil {
		return domain.SalesTotals{}, fmt.Errorf("failed to collect sales totals: %w", err)
	}
	return totals, nil
}

// GetPaymentMethodBreakdown groups the filtered order set by payment method.
func (r *PgxReportingRepository) GetPaymentMethodBreakdown(ctx context.Context, start, end time.Time, outletID string) ([]domain.PaymentMethodTotals, error) {
	from, to := dayBounds(start, end)
	query := `
		SELECT
			payment_method,
			COUNT(*) AS count,
			COALESCE(SUM(total), 0) AS total,
			COALESCE(SUM(qris_fee) FILTER (WHERE payment_method = 'qris'), 0) AS qris_fees
		FROM orders
		WHERE transaction_time >= $1 AND transaction_time < $2
	`
	args := []any{from, to}
	if outletID != "" {
		query += ` AND outlet_id = $3`
		args = append(args, outletID)
	}
	query += ` GROUP BY payment_method ORDER BY payment_method;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment method breakdown: %w", err)
	}
	defer rows.Close()

	breakdown, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.PaymentMethodTotals])
	if err != nil {
		return nil, fmt.Errorf("failed to collect payment method breakdown: %w", err)
	}
	return breakdown, nil
}

// GetBeverageSales sums line-item revenue for products in beverage categories.
func (r *PgxReportingRepository) GetBeverageSales(ctx context.Context, start, end time.Time, outletID string) (int64, error) {
	from, to := dayBounds(start, end)
	query := `
		SELECT COALESCE(SUM(oi.quantity * oi.price), 0)
		FROM order_items oi
		JOIN orders o ON o.order_id = oi.order_id
		JOIN products p ON p.product_id = oi.product_id
		JOIN categories c ON c.category_id = p.category_id
		WHERE c.type = 'beverage'
			AND o.transaction_time >= $1 AND o.transaction_time < $2
	`
	args := []any{from, to}
	if outletID != "" {
		query += ` AND o.outlet_id = $3`
		args = append(args, outletID)
	}

	var total int64
	err := r.Pool.QueryRow(ctx, query+`;`, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum beverage sales: %w", err)
	}
	return total, nil
}

// GetDailySalesTotals computes the cash/QRIS split and QRIS fees per
// calendar day. Days without orders produce no row.
func (r *PgxReportingRepository) GetDailySalesTotals(ctx context.Context, start, end time.Time, outletID string) ([]domain.DaySales, error) {
	from, to := dayBounds(start, end)
	query := `
		SELECT
			date_trunc('day', transaction_time)::date AS date,
			COALESCE(SUM(total) FILTER (WHERE payment_method = 'cash'), 0) AS cash_sales,
			COALESCE(SUM(total) FILTER (WHERE payment_method = 'qris'), 0) AS qris_sales,
			COALESCE(SUM(qris_fee) FILTER (WHERE payment_method = 'qris'), 0) AS qris_fee
		FROM orders
		WHERE transaction_time >= $1 AND transaction_time < $2
	`
	args := []any{from, to}
	if outletID != "" {
		query += ` AND outlet_id = $3`
		args = append(args, outletID)
	}
	query += ` GROUP BY 1 ORDER BY 1;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily sales totals: %w", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.DaySales])
	if err != nil {
		return nil, fmt.Errorf("failed to collect daily sales totals: %w", err)
	}
	return totals, nil
}
