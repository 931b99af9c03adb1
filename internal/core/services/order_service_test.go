package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, outletID string, start, end time.Time, limit int, nextToken *string) ([]domain.Order, *string, error) {
	args := m.Called(ctx, outletID, start, end, limit, nextToken)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return orders, token, args.Error(2)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// --- Mock DiscountRepository ---
type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) SaveDiscount(ctx context.Context, discount domain.Discount) error {
	args := m.Called(ctx, discount)
	return args.Error(0)
}

func (m *MockDiscountRepository) FindDiscountByID(ctx context.Context, discountID string) (*domain.Discount, error) {
	args := m.Called(ctx, discountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discount), args.Error(1)
}

func (m *MockDiscountRepository) ListDiscounts(ctx context.Context, limit, offset int) ([]domain.Discount, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Discount), args.Error(1)
}

func (m *MockDiscountRepository) UpdateDiscount(ctx context.Context, discount domain.Discount) error {
	args := m.Called(ctx, discount)
	return args.Error(0)
}

func (m *MockDiscountRepository) DeleteDiscount(ctx context.Context, discountID string) error {
	args := m.Called(ctx, discountID)
	return args.Error(0)
}

// --- Mock MemberRepository ---
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMemberByPhone(ctx context.Context, phone string) (*domain.Member, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo    *MockOrderRepository
	mockProductRepo  *MockProductRepository
	mockDiscountRepo *MockDiscountRepository
	mockMemberRepo   *MockMemberRepository
	service          portssvc.OrderSvc
	fixedNow         time.Time
	outletID         string
	actor            string
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockDiscountRepo = new(MockDiscountRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.fixedNow = time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
	suite.outletID = uuid.NewString()
	suite.actor = uuid.NewString()
	suite.service = services.NewOrderService(
		suite.mockOrderRepo,
		suite.mockProductRepo,
		suite.mockDiscountRepo,
		suite.mockMemberRepo,
		services.WithOrderClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *OrderServiceTestSuite) activeProduct(price int64) domain.Product {
	return domain.Product{
		ProductID:  uuid.NewString(),
		CategoryID: uuid.NewString(),
		Name:       "Seblak Original",
		Price:      price,
		IsActive:   true,
	}
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrder_PricesFromProductRegistry() {
	ctx := context.Background()
	seblak := suite.activeProduct(15000)
	esTeh := suite.activeProduct(5000)

	req := dto.CreateOrderRequest{
		OutletID:      suite.outletID,
		PaymentMethod: "cash",
		Tax:           2000,
		ServiceCharge: 1000,
		Items: []dto.OrderItemRequest{
			{ProductID: seblak.ProductID, Quantity: 2},
			{ProductID: esTeh.ProductID, Quantity: 3},
		},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{seblak.ProductID, esTeh.ProductID}).
		Return(map[string]domain.Product{seblak.ProductID: seblak, esTeh.ProductID: esTeh}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		// 2*15000 + 3*5000 = 45000; total = 45000 + 2000 + 1000
		return o.SubTotal == 45000 && o.Total == 48000 && o.QRISFee == 0 && len(o.Items) == 2
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(int64(45000), order.SubTotal)
	suite.Equal(int64(48000), order.Total)
	suite.Equal(int64(30000), order.Items[0].SubTotal)
	suite.Equal(int64(5000), order.Items[1].Price)
	suite.Equal(suite.fixedNow, order.TransactionTime)
	suite.Equal(suite.actor, order.CreatedBy)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_QRISFeeOnQRISOnly() {
	ctx := context.Background()
	product := suite.activeProduct(100000)

	req := dto.CreateOrderRequest{
		OutletID:      suite.outletID,
		PaymentMethod: "qris",
		Items:         []dto.OrderItemRequest{{ProductID: product.ProductID, Quantity: 1}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{product.ProductID}).
		Return(map[string]domain.Product{product.ProductID: product}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		// 0.3% of 100000
		return o.QRISFee == 300
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(int64(300), order.QRISFee)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_AppliesPercentageDiscount() {
	ctx := context.Background()
	product := suite.activeProduct(50000)
	discountID := uuid.NewString()

	req := dto.CreateOrderRequest{
		OutletID:      suite.outletID,
		PaymentMethod: "cash",
		DiscountID:    &discountID,
		Items:         []dto.OrderItemRequest{{ProductID: product.ProductID, Quantity: 2}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{product.ProductID}).
		Return(map[string]domain.Product{product.ProductID: product}, nil).Once()
	suite.mockDiscountRepo.On("FindDiscountByID", ctx, discountID).
		Return(&domain.Discount{DiscountID: discountID, Type: domain.DiscountPercentage, Value: 10, IsActive: true}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		// 10% of 100000
		return o.DiscountAmount == 10000 && o.Total == 90000
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(int64(10000), order.DiscountAmount)
	suite.Equal(int64(90000), order.Total)
	suite.mockDiscountRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_InactiveDiscount() {
	ctx := context.Background()
	product := suite.activeProduct(50000)
	discountID := uuid.NewString()

	req := dto.CreateOrderRequest{
		OutletID:      suite.outletID,
		PaymentMethod: "cash",
		DiscountID:    &discountID,
		Items:         []dto.OrderItemRequest{{ProductID: product.ProductID, Quantity: 1}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{product.ProductID}).
		Return(map[string]domain.Product{product.ProductID: product}, nil).Once()
	suite.mockDiscountRepo.On("FindDiscountByID", ctx, discountID).
		Return(&domain.Discount{DiscountID: discountID, Type: domain.DiscountFixed, Value: 5000, IsActive: false}, nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder")
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownProduct() {
	ctx := context.Background()
	missingID := uuid.NewString()

	req := dto.CreateOrderRequest{
		OutletID:      suite.outletID,
		PaymentMethod: "cash",
		Items:         []dto.OrderItemRequest{{ProductID: missingID, Quantity: 1}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{missingID}).
		Return(map[string]domain.Product{}, nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder")
}

func (suite *OrderServiceTestSuite) TestCreateOrder_InactiveProduct() {
	ctx := context.Background()
	product := suite.activeProduct(15000)
	product.IsActive = false

	req := dto.CreateOrderRequest{
		OutletID:      suite.outletID,
		PaymentMethod: "cash",
		Items:         []dto.OrderItemRequest{{ProductID: product.ProductID, Quantity: 1}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{product.ProductID}).
		Return(map[string]domain.Product{product.ProductID: product}, nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownMember() {
	ctx := context.Background()
	product := suite.activeProduct(15000)
	memberID := uuid.NewString()

	req := dto.CreateOrderRequest{
		OutletID:      suite.outletID,
		PaymentMethod: "cash",
		MemberID:      &memberID,
		Items:         []dto.OrderItemRequest{{ProductID: product.ProductID, Quantity: 1}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{product.ProductID}).
		Return(map[string]domain.Product{product.ProductID: product}, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder")
}

func (suite *OrderServiceTestSuite) TestCreateOrder_MissingActor() {
	ctx := context.Background()

	order, err := suite.service.CreateOrder(ctx, dto.CreateOrderRequest{OutletID: suite.outletID}, "")

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_SaveError() {
	ctx := context.Background()
	product := suite.activeProduct(15000)
	expectedErr := assert.AnError

	req := dto.CreateOrderRequest{
		OutletID:      suite.outletID,
		PaymentMethod: "cash",
		Items:         []dto.OrderItemRequest{{ProductID: product.ProductID, Quantity: 1}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{product.ProductID}).
		Return(map[string]domain.Product{product.ProductID: product}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.Order")).Return(expectedErr).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, expectedErr)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrder_NotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.GetOrder(ctx, orderID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestListOrders_DefaultsLimit() {
	ctx := context.Background()

	suite.mockOrderRepo.On("ListOrders", ctx, "", time.Time{}, time.Time{}, 20, (*string)(nil)).
		Return([]domain.Order{}, nil, nil).Once()

	page, err := suite.service.ListOrders(ctx, dto.ListOrdersParams{})

	suite.Require().NoError(err)
	suite.Empty(page.Orders)
	suite.Nil(page.NextToken)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListOrders_EndDateIncludesWholeDay() {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	// Orders placed any time on Jan 10 must be listed, so the repository
	// receives the exclusive bound of Jan 11 00:00.
	endBound := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	suite.mockOrderRepo.On("ListOrders", ctx, "", start, endBound, 20, (*string)(nil)).
		Return([]domain.Order{}, nil, nil).Once()

	_, err := suite.service.ListOrders(ctx, dto.ListOrdersParams{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-10",
	})

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListOrders_PagesWithNextToken() {
	ctx := context.Background()
	requested := "cursor-from-previous-page"
	returned := "cursor-for-next-page"
	orders := []domain.Order{{OrderID: uuid.NewString(), OutletID: suite.outletID, PaymentMethod: domain.PaymentCash, Total: 15000}}

	suite.mockOrderRepo.On("ListOrders", ctx, "", time.Time{}, time.Time{}, 20, &requested).
		Return(orders, &returned, nil).Once()

	page, err := suite.service.ListOrders(ctx, dto.ListOrdersParams{NextToken: &requested})

	suite.Require().NoError(err)
	suite.Require().Len(page.Orders, 1)
	suite.Equal(orders[0].OrderID, page.Orders[0].OrderID)
	suite.Require().NotNil(page.NextToken)
	suite.Equal(returned, *page.NextToken)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListOrders_InvertedRange() {
	ctx := context.Background()

	page, err := suite.service.ListOrders(ctx, dto.ListOrdersParams{StartDate: "2025-03-10", EndDate: "2025-03-01"})

	suite.Require().Error(err)
	suite.Nil(page)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ListOrders")
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
