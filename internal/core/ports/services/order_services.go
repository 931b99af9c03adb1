package services

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
)

// OrderSvc captures point-of-sale orders and reads them back. The QRIS
// fee is computed once at creation time and is immutable afterwards.
type OrderSvc interface {
	// CreateOrder prices the requested items from the product registry,
	// applies the optional discount, tax and service charge, computes the
	// order total and QRIS fee, and persists the order with its items
	// atomically.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actor string) (*domain.Order, error)

	// GetOrder returns one order with its line items.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders returns one page of orders matching the filter, newest
	// first, with the cursor for the next page. Both filter dates are
	// inclusive.
	ListOrders(ctx context.Context, params dto.ListOrdersParams) (*dto.ListOrdersResponse, error)
}
