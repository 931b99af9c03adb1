package repositories

import (
	"context"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// OrderRepository defines persistence operations for captured orders.
type OrderRepository interface {
	// SaveOrder persists an order and its items in one transaction.
	SaveOrder(ctx context.Context, order domain.Order) error

	// FindOrderByID returns an order with its items, or
	// apperrors.ErrNotFound.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders returns orders filtered by outlet and transaction-time
	// range, newest first, with keyset pagination on (transaction_time,
	// order_id). Empty outletID means no outlet filter; zero times mean
	// no bound; end is exclusive. A non-nil nextToken resumes after the
	// last row of the previous page. The returned token is nil on the
	// last page.
	ListOrders(ctx context.Context, outletID string, start, end time.Time, limit int, nextToken *string) ([]domain.Order, *string, error)
}

// OrderAggregateRepository is the read-only order aggregation interface
// consumed by the sales reconciler. All methods treat an empty outletID as
// "all outlets", and [start, end] as inclusive calendar-day bounds.
type OrderAggregateRepository interface {
	// GetCashSales sums order totals paid in cash for one outlet and day.
	GetCashSales(ctx context.Context, outletID string, date time.Time) (int64, error)

	// GetSalesTotals computes the straight sums over the filtered order
	// set, including the cash/QRIS split and the QRIS fee sum.
	GetSalesTotals(ctx context.Context, start, end time.Time, outletID string) (domain.SalesTotals, error)

	// GetPaymentMethodBreakdown groups the filtered order set by payment
	// method with count, total and QRIS fees (qris group only).
	GetPaymentMethodBreakdown(ctx context.Context, start, end time.Time, outletID string) ([]domain.PaymentMethodTotals, error)

	// GetBeverageSales sums quantity x unit price over order line items
	// whose product belongs to a beverage category.
	GetBeverageSales(ctx context.Context, start, end time.Time, outletID string) (int64, error)

	// GetDailySalesTotals computes cash sales, QRIS sales and QRIS fees
	// per calendar day. Days without orders are absent from the result.
	GetDailySalesTotals(ctx context.Context, start, end time.Time, outletID string) ([]domain.DaySales, error)
}
