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

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) UpsertOpeningBalance(ctx context.Context, outletID string, date time.Time, amount int64, actor string, now time.Time) (*domain.DailyLedger, error) {
	args := m.Called(ctx, outletID, date, amount, actor, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLedger), args.Error(1)
}

func (m *MockLedgerRepository) AppendExpense(ctx context.Context, outletID string, date time.Time, amount int64, note domain.ExpenseNoteEntry, actor string, now time.Time) (*domain.DailyLedger, error) {
	args := m.Called(ctx, outletID, date, amount, note, actor, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLedger), args.Error(1)
}

func (m *MockLedgerRepository) FindEntry(ctx context.Context, outletID string, date time.Time) (*domain.DailyLedger, error) {
	args := m.Called(ctx, outletID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyLedger), args.Error(1)
}

func (m *MockLedgerRepository) SumRange(ctx context.Context, start, end time.Time, outletID string) (domain.LedgerTotals, error) {
	args := m.Called(ctx, start, end, outletID)
	return args.Get(0).(domain.LedgerTotals), args.Error(1)
}

func (m *MockLedgerRepository) SumByDay(ctx context.Context, start, end time.Time, outletID string) ([]domain.DayLedgerTotals, error) {
	args := m.Called(ctx, start, end, outletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayLedgerTotals), args.Error(1)
}

// --- Test Suite ---
type DailyLedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.DailyLedgerSvc
	fixedNow time.Time
}

func (suite *DailyLedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.fixedNow = time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)
	suite.service = services.NewDailyLedgerService(suite.mockRepo, services.WithLedgerClock(func() time.Time { return suite.fixedNow }))
}

func mustDate(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

// --- Test Cases ---

func (suite *DailyLedgerServiceTestSuite) TestSetOpeningBalance_Success() {
	ctx := context.Background()
	outletID := uuid.NewString()
	actor := uuid.NewString()
	date := mustDate("2025-03-10")

	expected := &domain.DailyLedger{
		LedgerID:       uuid.NewString(),
		OutletID:       outletID,
		Date:           date,
		OpeningBalance: 200000,
	}
	suite.mockRepo.On("UpsertOpeningBalance", ctx, outletID, date, int64(200000), actor, suite.fixedNow).
		Return(expected, nil).Once()

	entry, err := suite.service.SetOpeningBalance(ctx, outletID, date, 200000, actor)

	suite.Require().NoError(err)
	suite.Equal(expected, entry)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DailyLedgerServiceTestSuite) TestSetOpeningBalance_NegativeAmount() {
	ctx := context.Background()

	entry, err := suite.service.SetOpeningBalance(ctx, uuid.NewString(), mustDate("2025-03-10"), -1, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertOpeningBalance")
}

func (suite *DailyLedgerServiceTestSuite) TestSetOpeningBalance_MissingActor() {
	ctx := context.Background()

	entry, err := suite.service.SetOpeningBalance(ctx, uuid.NewString(), mustDate("2025-03-10"), 100, "")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertOpeningBalance")
}

func (suite *DailyLedgerServiceTestSuite) TestAddExpense_FormatsNoteLine() {
	ctx := context.Background()
	outletID := uuid.NewString()
	actor := uuid.NewString()
	date := mustDate("2025-03-10")

	expected := &domain.DailyLedger{OutletID: outletID, Date: date, Expenses: 50000}
	suite.mockRepo.On("AppendExpense", ctx, outletID, date, int64(50000), mock.MatchedBy(func(note domain.ExpenseNoteEntry) bool {
		return note.Time == "14:05" && note.Line == "[14:05] Rp 50.000 - gas refill"
	}), actor, suite.fixedNow).Return(expected, nil).Once()

	entry, err := suite.service.AddExpense(ctx, outletID, date, 50000, "gas refill", actor)

	suite.Require().NoError(err)
	suite.Equal(expected, entry)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DailyLedgerServiceTestSuite) TestAddExpense_EmptyNoteFallsBack() {
	ctx := context.Background()
	outletID := uuid.NewString()
	actor := uuid.NewString()
	date := mustDate("2025-03-10")

	expected := &domain.DailyLedger{OutletID: outletID, Date: date, Expenses: 15000}
	suite.mockRepo.On("AppendExpense", ctx, outletID, date, int64(15000), mock.MatchedBy(func(note domain.ExpenseNoteEntry) bool {
		return note.Line == "[14:05] Rp 15.000 - No description"
	}), actor, suite.fixedNow).Return(expected, nil).Once()

	entry, err := suite.service.AddExpense(ctx, outletID, date, 15000, "", actor)

	suite.Require().NoError(err)
	suite.NotNil(entry)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DailyLedgerServiceTestSuite) TestAddExpense_NegativeAmount() {
	ctx := context.Background()

	entry, err := suite.service.AddExpense(ctx, uuid.NewString(), mustDate("2025-03-10"), -500, "x", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendExpense")
}

func (suite *DailyLedgerServiceTestSuite) TestGetEntry_MissingDayIsZeroValued() {
	ctx := context.Background()
	outletID := uuid.NewString()
	date := mustDate("2025-03-11")

	suite.mockRepo.On("FindEntry", ctx, outletID, date).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntry(ctx, outletID, date)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(outletID, entry.OutletID)
	suite.Equal(date, entry.Date)
	suite.Zero(entry.OpeningBalance)
	suite.Zero(entry.Expenses)
	suite.Empty(entry.ExpensesNote)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DailyLedgerServiceTestSuite) TestGetEntry_RepoError() {
	ctx := context.Background()
	outletID := uuid.NewString()
	date := mustDate("2025-03-11")
	expectedErr := assert.AnError

	suite.mockRepo.On("FindEntry", ctx, outletID, date).Return(nil, expectedErr).Once()

	entry, err := suite.service.GetEntry(ctx, outletID, date)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDailyLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DailyLedgerServiceTestSuite))
}
