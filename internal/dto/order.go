package dto

import (
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// OrderItemRequest is one requested line of a new order. Pricing comes
// from the product registry, never from the client.
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest captures a new point-of-sale order. The outlet is
// taken from the request scope, not the body.
type CreateOrderRequest struct {
	PaymentMethod   string             `json:"payment_method" binding:"required,oneof=cash qris other"`
	MemberID        *string            `json:"member_id"`
	DiscountID      *string            `json:"discount_id"`
	Tax             int64              `json:"tax" binding:"gte=0"`
	ServiceCharge   int64              `json:"service_charge" binding:"gte=0"`
	TransactionTime *time.Time         `json:"transaction_time"` // Defaults to now
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`

	// OutletID is populated from the request scope by the handler.
	OutletID string `json:"-"`
}

// ListOrdersParams filters the order listing. Both dates are inclusive.
// NextToken is the opaque cursor returned by the previous page.
type ListOrdersParams struct {
	StartDate string  `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string  `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	OutletID  string  `form:"outlet_id"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	NextToken *string `form:"next_token"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	OrderItemID string `json:"order_item_id"`
	ProductID   string `json:"product_id"`
	Quantity    int64  `json:"quantity"`
	Price       int64  `json:"price"`
	SubTotal    int64  `json:"subtotal"`
}

// OrderResponse is the API shape of a captured order.
type OrderResponse struct {
	OrderID         string              `json:"order_id"`
	OutletID        string              `json:"outlet_id"`
	MemberID        *string             `json:"member_id"`
	PaymentMethod   string              `json:"payment_method"`
	SubTotal        int64               `json:"sub_total"`
	Tax             int64               `json:"tax"`
	DiscountAmount  int64               `json:"discount_amount"`
	ServiceCharge   int64               `json:"service_charge"`
	Total           int64               `json:"total"`
	QRISFee         int64               `json:"qris_fee"`
	TransactionTime time.Time           `json:"transaction_time"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// ToOrderResponse converts a domain.Order to its API shape.
func ToOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			OrderItemID: item.OrderItemID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			SubTotal:    item.SubTotal,
		}
	}
	return OrderResponse{
		OrderID:         order.OrderID,
		OutletID:        order.OutletID,
		MemberID:        order.MemberID,
		PaymentMethod:   string(order.PaymentMethod),
		SubTotal:        order.SubTotal,
		Tax:             order.Tax,
		DiscountAmount:  order.DiscountAmount,
		ServiceCharge:   order.ServiceCharge,
		Total:           order.Total,
		QRISFee:         order.QRISFee,
		TransactionTime: order.TransactionTime,
		Items:           items,
	}
}

// ListOrdersResponse is one page of the order listing. NextToken is nil
// on the last page.
type ListOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	NextToken *string         `json:"next_token,omitempty"`
}

// ToListOrderResponse converts a slice of orders, omitting line items.
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i, order := range orders {
		o := order
		o.Items = nil
		res[i] = ToOrderResponse(&o)
	}
	return res
}
