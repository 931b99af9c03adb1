package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderAggregateRepository ---
type MockOrderAggregateRepository struct {
	mock.Mock
}

func (m *MockOrderAggregateRepository) GetCashSales(ctx context.Context, outletID string, date time.Time) (int64, error) {
	args := m.Called(ctx, outletID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderAggregateRepository) GetSalesTotals(ctx context.Context, start, end time.Time, outletID string) (domain.SalesTotals, error) {
	args := m.Called(ctx, start, end, outletID)
	return args.Get(0).(domain.SalesTotals), args.Error(1)
}

func (m *MockOrderAggregateRepository) GetPaymentMethodBreakdown(ctx context.Context, start, end time.Time, outletID string) ([]domain.PaymentMethodTotals, error) {
	args := m.Called(ctx, start, end, outletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethodTotals), args.Error(1)
}

func (m *MockOrderAggregateRepository) GetBeverageSales(ctx context.Context, start, end time.Time, outletID string) (int64, error) {
	args := m.Called(ctx, start, end, outletID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderAggregateRepository) GetDailySalesTotals(ctx context.Context, start, end time.Time, outletID string) ([]domain.DaySales, error) {
	args := m.Called(ctx, start, end, outletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DaySales), args.Error(1)
}

// --- Test Suite ---
type SalesReconcilerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockAggRepo    *MockOrderAggregateRepository
	service        portssvc.SalesReconcilerSvc
}

func (suite *SalesReconcilerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAggRepo = new(MockOrderAggregateRepository)
	ledgerSvc := services.NewDailyLedgerService(suite.mockLedgerRepo)
	suite.service = services.NewSalesReconcilerService(ledgerSvc, suite.mockLedgerRepo, suite.mockAggRepo)
}

// --- Test Cases ---

func (suite *SalesReconcilerServiceTestSuite) TestGetDailySummary_ClosingBalanceTracksCashOnly() {
	ctx := context.Background()
	outletID := uuid.NewString()
	date := mustDate("2025-03-10")

	entry := &domain.DailyLedger{
		OutletID:       outletID,
		Date:           date,
		OpeningBalance: 200000,
		Expenses:       50000,
		ExpensesNote:   []domain.ExpenseNoteEntry{{Time: "09:12", Line: "[09:12] Rp 50.000 - gas"}},
	}
	suite.mockLedgerRepo.On("FindEntry", ctx, outletID, date).Return(entry, nil).Once()
	suite.mockAggRepo.On("GetCashSales", ctx, outletID, date).Return(int64(300000), nil).Once()

	summary, err := suite.service.GetDailySummary(ctx, outletID, date)

	suite.Require().NoError(err)
	suite.Equal(int64(300000), summary.CashSales)
	suite.Equal(int64(450000), summary.ClosingBalance)
	suite.Equal(entry.ExpensesNote, summary.ExpensesNote)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockAggRepo.AssertExpectations(suite.T())
}

func (suite *SalesReconcilerServiceTestSuite) TestGetDailySummary_MissingLedgerDefaultsToZero() {
	ctx := context.Background()
	outletID := uuid.NewString()
	date := mustDate("2025-03-10")

	suite.mockLedgerRepo.On("FindEntry", ctx, outletID, date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAggRepo.On("GetCashSales", ctx, outletID, date).Return(int64(0), nil).Once()

	summary, err := suite.service.GetDailySummary(ctx, outletID, date)

	suite.Require().NoError(err)
	suite.Zero(summary.OpeningBalance)
	suite.Zero(summary.Expenses)
	suite.Zero(summary.CashSales)
	suite.Zero(summary.ClosingBalance)
	suite.Empty(summary.ExpensesNote)
}

func (suite *SalesReconcilerServiceTestSuite) TestGetDailySummary_MissingOutlet() {
	ctx := context.Background()

	summary, err := suite.service.GetDailySummary(ctx, "", mustDate("2025-03-10"))

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SalesReconcilerServiceTestSuite) TestGetRangeSummary_ClosingBalanceFoldsInQRIS() {
	ctx := context.Background()
	outletID := uuid.NewString()
	start := mustDate("2025-03-01")
	end := mustDate("2025-03-31")

	sales := domain.SalesTotals{
		TotalRevenue:  400000,
		TotalSubTotal: 410000,
		TotalDiscount: 10000,
		CashSales:     300000,
		QRISSales:     100000,
		QRISFee:       300,
	}
	methods := []domain.PaymentMethodTotals{
		{PaymentMethod: domain.PaymentCash, Count: 12, Total: 300000},
		{PaymentMethod: domain.PaymentQRIS, Count: 4, Total: 100000, QRISFees: 300},
	}
	suite.mockAggRepo.On("GetSalesTotals", ctx, start, end, outletID).Return(sales, nil).Once()
	suite.mockAggRepo.On("GetPaymentMethodBreakdown", ctx, start, end, outletID).Return(methods, nil).Once()
	suite.mockAggRepo.On("GetBeverageSales", ctx, start, end, outletID).Return(int64(85000), nil).Once()
	suite.mockLedgerRepo.On("SumRange", ctx, start, end, outletID).
		Return(domain.LedgerTotals{OpeningBalance: 200000, Expenses: 50000}, nil).Once()

	summary, err := suite.service.GetRangeSummary(ctx, start, end, outletID, false)

	suite.Require().NoError(err)
	suite.Equal(sales, summary.Sales)
	suite.Equal(int64(85000), summary.BeverageSales)
	suite.Equal(methods, summary.PaymentMethods)
	// 200000 + 300000 + 100000 - 50000 - 300
	suite.Equal(int64(549700), summary.ClosingBalance)
	suite.Nil(summary.DailyBreakdown)
	suite.mockAggRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *SalesReconcilerServiceTestSuite) TestGetRangeSummary_InvertedRange() {
	ctx := context.Background()

	summary, err := suite.service.GetRangeSummary(ctx, mustDate("2025-03-10"), mustDate("2025-03-01"), "", false)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAggRepo.AssertNotCalled(suite.T(), "GetSalesTotals")
}

func (suite *SalesReconcilerServiceTestSuite) TestGetRangeSummary_RepoErrorPropagates() {
	ctx := context.Background()
	start := mustDate("2025-03-01")
	end := mustDate("2025-03-31")
	expectedErr := assert.AnError

	suite.mockAggRepo.On("GetSalesTotals", ctx, start, end, "").
		Return(domain.SalesTotals{}, expectedErr).Once()

	summary, err := suite.service.GetRangeSummary(ctx, start, end, "", false)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
	suite.mockAggRepo.AssertExpectations(suite.T())
}

func (suite *SalesReconcilerServiceTestSuite) TestGetDailyBreakdown_FillsMissingDaysAcrossMonthBoundary() {
	ctx := context.Background()
	outletID := uuid.NewString()
	start := mustDate("2025-02-27")
	end := mustDate("2025-03-01")

	daySales := []domain.DaySales{
		{Date: mustDate("2025-02-27"), CashSales: 100000, QRISSales: 50000, QRISFee: 150},
		{Date: mustDate("2025-03-01"), CashSales: 80000},
	}
	dayLedgers := []domain.DayLedgerTotals{
		{Date: mustDate("2025-02-27"), OpeningBalance: 200000, Expenses: 30000},
	}
	suite.mockAggRepo.On("GetDailySalesTotals", ctx, start, end, outletID).Return(daySales, nil).Once()
	suite.mockLedgerRepo.On("SumByDay", ctx, start, end, outletID).Return(dayLedgers, nil).Once()

	breakdown, err := suite.service.GetDailyBreakdown(ctx, start, end, outletID)

	suite.Require().NoError(err)
	suite.Require().Len(breakdown, 3)

	first := breakdown[0]
	suite.Equal(mustDate("2025-02-27"), first.Date)
	suite.Equal(int64(150000), first.TotalSales)
	// 200000 + 150000 - 30000 - 150
	suite.Equal(int64(319850), first.ClosingBalance)

	middle := breakdown[1]
	suite.Equal(mustDate("2025-02-28"), middle.Date)
	suite.Zero(middle.TotalSales)
	suite.Zero(middle.ClosingBalance)

	last := breakdown[2]
	suite.Equal(mustDate("2025-03-01"), last.Date)
	suite.Equal(int64(80000), last.TotalSales)
	suite.Equal(int64(80000), last.ClosingBalance)

	suite.mockAggRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *SalesReconcilerServiceTestSuite) TestGetDailyBreakdown_SingleDayRange() {
	ctx := context.Background()
	start := mustDate("2025-03-10")

	suite.mockAggRepo.On("GetDailySalesTotals", ctx, start, start, "").Return([]domain.DaySales{}, nil).Once()
	suite.mockLedgerRepo.On("SumByDay", ctx, start, start, "").Return([]domain.DayLedgerTotals{}, nil).Once()

	breakdown, err := suite.service.GetDailyBreakdown(ctx, start, start, "")

	suite.Require().NoError(err)
	suite.Require().Len(breakdown, 1)
	suite.Equal(start, breakdown[0].Date)
}

func TestSalesReconcilerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesReconcilerServiceTestSuite))
}
