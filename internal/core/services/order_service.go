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

// orderService implements the OrderSvc interface
type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepository
	productRepo  portsrepo.ProductRepository
	discountRepo portsrepo.DiscountRepository
	memberRepo   portsrepo.MemberRepository
	now          func() time.Time
}

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

// WithOrderClock overrides the clock used for transaction times. Tests use
// this to pin time.
func WithOrderClock(now func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.now = now
	}
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo portsrepo.OrderRepository,
	productRepo portsrepo.ProductRepository,
	discountRepo portsrepo.DiscountRepository,
	memberRepo portsrepo.MemberRepository,
	options ...OrderServiceOption,
) portssvc.OrderSvc {
	svc := &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		discountRepo: discountRepo,
		memberRepo:   memberRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure orderService implements the OrderSvc interface
var _ portssvc.OrderSvc = (*orderService)(nil)

// CreateOrder prices the requested items, applies the optional discount,
// tax and service charge, computes the total and the QRIS fee, and
// persists the order with its items in one transaction. The fee is fixed
// here at capture and never recomputed.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actor string) (*domain.Order, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}
	if req.OutletID == "" {
		return nil, fmt.Errorf("%w: outlet ID is required", apperrors.ErrValidation)
	}

	products, err := s.resolveProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	if req.MemberID != nil {
		if _, err := s.memberRepo.FindMemberByID(ctx, *req.MemberID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: member %s", apperrors.ErrNotFound, *req.MemberID)
			}
			return nil, fmt.Errorf("failed to look up member: %w", err)
		}
	}

	now := s.now()
	transactionTime := now
	if req.TransactionTime != nil {
		transactionTime = *req.TransactionTime
	}

	orderID := uuid.NewString()
	var subTotal int64
	items := make([]domain.OrderItem, len(req.Items))
	for i, line := range req.Items {
		product := products[line.ProductID]
		lineSubTotal := line.Quantity * product.Price
		subTotal += lineSubTotal
		items[i] = domain.OrderItem{
			OrderItemID: uuid.NewString(),
			OrderID:     orderID,
			ProductID:   product.ProductID,
			Quantity:    line.Quantity,
			Price:       product.Price,
			SubTotal:    lineSubTotal,
		}
	}

	discountAmount, err := s.resolveDiscount(ctx, req.DiscountID, subTotal)
	if err != nil {
		return nil, err
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	total := subTotal - discountAmount + req.Tax + req.ServiceCharge

	order := domain.Order{
		OrderID:         orderID,
		OutletID:        req.OutletID,
		MemberID:        req.MemberID,
		PaymentMethod:   method,
		SubTotal:        subTotal,
		Tax:             req.Tax,
		DiscountAmount:  discountAmount,
		ServiceCharge:   req.ServiceCharge,
		Total:           total,
		QRISFee:         domain.QRISFee(method, total),
		TransactionTime: transactionTime,
		Items:           items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order",
			slog.String("order_id", orderID),
			slog.String("outlet_id", req.OutletID))
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.LogInfo(ctx, "Order captured",
		slog.String("order_id", orderID),
		slog.String("outlet_id", req.OutletID),
		slog.String("payment_method", req.PaymentMethod),
		slog.Int64("total", total))
	return &order, nil
}

// GetOrder returns one order with its line items.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order ID is required", apperrors.ErrValidation)
	}
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch order", slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return order, nil
}

// ListOrders returns one page of orders matching the filter, newest first.
func (s *orderService) ListOrders(ctx context.Context, params dto.ListOrdersParams) (*dto.ListOrdersResponse, error) {
	var start, end time.Time
	var err error
	if params.StartDate != "" {
		if start, err = time.Parse(domain.DateFormat, params.StartDate); err != nil {
			return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
		}
	}
	if params.EndDate != "" {
		if end, err = time.Parse(domain.DateFormat, params.EndDate); err != nil {
			return nil, fmt.Errorf("%w: invalid end date", apperrors.ErrValidation)
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return nil, fmt.Errorf("%w: start date must not be after end date", apperrors.ErrValidation)
	}
	// The end date is an inclusive calendar day; the repository applies an
	// exclusive timestamp bound.
	if !end.IsZero() {
		end = end.AddDate(0, 0, 1)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	orders, nextToken, err := s.orderRepo.ListOrders(ctx, params.OutletID, start, end, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return &dto.ListOrdersResponse{
		Orders:    dto.ToListOrderResponse(orders),
		NextToken: nextToken,
	}, nil
}

// resolveProducts loads and validates every product referenced by the
// requested lines. Inactive or unknown products reject the whole order.
func (s *orderService) resolveProducts(ctx context.Context, lines []dto.OrderItemRequest) (map[string]domain.Product, error) {
	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}

	products, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to look up products: %w", err)
	}
	for _, id := range ids {
		product, ok := products[id]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, id)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: product %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return products, nil
}

// resolveDiscount computes the discount amount for the subtotal, if a
// discount was requested.
func (s *orderService) resolveDiscount(ctx context.Context, discountID *string, subTotal int64) (int64, error) {
	if discountID == nil {
		return 0, nil
	}
	discount, err := s.discountRepo.FindDiscountByID(ctx, *discountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: discount %s", apperrors.ErrNotFound, *discountID)
		}
		return 0, fmt.Errorf("failed to look up discount: %w", err)
	}
	if !discount.IsActive {
		return 0, fmt.Errorf("%w: discount %s is inactive", apperrors.ErrValidation, *discountID)
	}
	return discount.Apply(subTotal), nil
}
