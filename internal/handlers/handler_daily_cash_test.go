package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/handlers"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/middleware"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DailyLedgerService ---
type MockDailyLedgerService struct {
	mock.Mock
}

func (m *MockDailyLedgerService) SetOpeningBalance(ctx context.Context, outletID string, date time.Time, amount int64, actor string) (*domain.DailyLedger, error) {
	args := m.Called(ctx, outletID, date, amount, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLedger), args.Error(1)
}

func (m *MockDailyLedgerService) AddExpense(ctx context.Context, outletID string, date time.Time, amount int64, note string, actor string) (*domain.DailyLedger, error) {
	args := m.Called(ctx, outletID, date, amount, note, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLedger), args.Error(1)
}

func (m *MockDailyLedgerService) GetEntry(ctx context.Context, outletID string, date time.Time) (*domain.DailyLedger, error) {
	args := m.Called(ctx, outletID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLedger), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DailyLedgerSvc = (*MockDailyLedgerService)(nil)

// --- Mock SalesReconcilerService ---
type MockSalesReconcilerService struct {
	mock.Mock
}

func (m *MockSalesReconcilerService) GetDailySummary(ctx context.Context, outletID string, date time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, outletID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

func (m *MockSalesReconcilerService) GetRangeSummary(ctx context.Context, start, end time.Time, outletID string, includeBreakdown bool) (*domain.RangeSummary, error) {
	args := m.Called(ctx, start, end, outletID, includeBreakdown)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RangeSummary), args.Error(1)
}

func (m *MockSalesReconcilerService) GetDailyBreakdown(ctx context.Context, start, end time.Time, outletID string) ([]domain.DailyBreakdownEntry, error) {
	args := m.Called(ctx, start, end, outletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyBreakdownEntry), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SalesReconcilerSvc = (*MockSalesReconcilerService)(nil)

// --- Test Suite ---
type DailyCashHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockDailyLedgerService
	mockReconcilerSvc *MockSalesReconcilerService
	userID            string
	outletID          string
}

func (suite *DailyCashHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.userID = uuid.NewString()
	suite.outletID = uuid.NewString()

	suite.mockLedgerService = new(MockDailyLedgerService)
	suite.mockReconcilerSvc = new(MockSalesReconcilerService)

	cfg := &config.Config{IsProduction: true} // Skips swagger route setup
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		DailyLedger:     suite.mockLedgerService,
		SalesReconciler: suite.mockReconcilerSvc,
	})
}

// scopedRequest builds a request carrying the identity headers the
// gateway normally forwards.
func (suite *DailyCashHandlerTestSuite) scopedRequest(method, url string, body any) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, suite.userID)
	req.Header.Set(middleware.HeaderOutletID, suite.outletID)
	return req
}

func int64Ptr(v int64) *int64 {
	return &v
}

// --- Test Cases ---

func (suite *DailyCashHandlerTestSuite) TestSetOpeningBalance_Success() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entry := &domain.DailyLedger{
		LedgerID:       uuid.NewString(),
		OutletID:       suite.outletID,
		Date:           date,
		OpeningBalance: 200000,
		UserID:         suite.userID,
	}
	suite.mockLedgerService.On("SetOpeningBalance",
		mock.Anything, suite.outletID, date, int64(200000), suite.userID,
	).Return(entry, nil).Once()

	req := suite.scopedRequest(http.MethodPost, "/api/v1/daily-cash/opening-balance", dto.OpeningBalanceRequest{
		Date:           "2025-03-10",
		OpeningBalance: int64Ptr(200000),
	})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Status string                  `json:"status"`
		Data   dto.LedgerEntryResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("success", body.Status)
	suite.Equal(entry.LedgerID, body.Data.LedgerID)
	suite.Equal("2025-03-10", body.Data.Date)
	suite.Equal(int64(200000), body.Data.OpeningBalance)
	suite.Nil(body.Data.ExpensesNote)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *DailyCashHandlerTestSuite) TestSetOpeningBalance_MissingIdentityHeaders() {
	raw, _ := json.Marshal(dto.OpeningBalanceRequest{Date: "2025-03-10", OpeningBalance: int64Ptr(100)})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/daily-cash/opening-balance", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "SetOpeningBalance")
}

func (suite *DailyCashHandlerTestSuite) TestSetOpeningBalance_MalformedDate() {
	req := suite.scopedRequest(http.MethodPost, "/api/v1/daily-cash/opening-balance", gin.H{
		"date":            "10-03-2025",
		"opening_balance": 100,
	})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "SetOpeningBalance")
}

func (suite *DailyCashHandlerTestSuite) TestAddExpense_Success() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entry := &domain.DailyLedger{
		LedgerID: uuid.NewString(),
		OutletID: suite.outletID,
		Date:     date,
		Expenses: 50000,
		ExpensesNote: []domain.ExpenseNoteEntry{
			{Time: "09:12", Line: "[09:12] Rp 50.000 - gas"},
		},
		UserID: suite.userID,
	}
	suite.mockLedgerService.On("AddExpense",
		mock.Anything, suite.outletID, date, int64(50000), "gas", suite.userID,
	).Return(entry, nil).Once()

	req := suite.scopedRequest(http.MethodPost, "/api/v1/daily-cash/expense", dto.ExpenseRequest{
		Date:   "2025-03-10",
		Amount: int64Ptr(50000),
		Note:   "gas",
	})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Status string                  `json:"status"`
		Data   dto.LedgerEntryResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(50000), body.Data.Expenses)
	suite.Require().NotNil(body.Data.ExpensesNote)
	suite.Contains(*body.Data.ExpensesNote, "[09:12] Rp 50.000 - gas")
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *DailyCashHandlerTestSuite) TestGetDailyCash_Success() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	summary := &domain.DailySummary{
		OutletID:       suite.outletID,
		Date:           date,
		OpeningBalance: 200000,
		Expenses:       50000,
		CashSales:      300000,
		ClosingBalance: 450000,
	}
	suite.mockReconcilerSvc.On("GetDailySummary", mock.Anything, suite.outletID, date).
		Return(summary, nil).Once()

	url := fmt.Sprintf("/api/v1/daily-cash?date=%s", "2025-03-10")
	req := suite.scopedRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Status string                `json:"status"`
		Data   dto.DailyCashResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(450000), body.Data.ClosingBalance)
	suite.Equal(int64(300000), body.Data.CashSales)
	suite.Nil(body.Data.ExpensesNote)
	suite.mockReconcilerSvc.AssertExpectations(suite.T())
}

func (suite *DailyCashHandlerTestSuite) TestGetDailyCash_ServiceValidationError() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.mockReconcilerSvc.On("GetDailySummary", mock.Anything, suite.outletID, date).
		Return(nil, fmt.Errorf("%w: outlet ID is required", apperrors.ErrValidation)).Once()

	req := suite.scopedRequest(http.MethodGet, "/api/v1/daily-cash?date=2025-03-10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var body dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("error", body.Status)
	suite.mockReconcilerSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestDailyCashHandler(t *testing.T) {
	suite.Run(t, new(DailyCashHandlerTestSuite))
}
