package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockBankRepo      *MockBankRepository
	mockBillingRepo   *MockBillingRepository
	service           *services.ReportingService
	userID            string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockBankRepo = new(MockBankRepository)
	suite.mockBillingRepo = new(MockBillingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockBankRepo, suite.mockBillingRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestGetDashboardData_ZeroFillsInactiveBanks() {
	ctx := context.Background()
	active := domain.Bank{BankID: uuid.NewString(), BankName: "Intesa", AccountName: "Main", Balance: decimal.NewFromInt(700)}
	idle := domain.Bank{BankID: uuid.NewString(), BankName: "Revolut", AccountName: "Spare", Balance: decimal.NewFromInt(300)}

	suite.mockBankRepo.On("ListBanksByUser", ctx, suite.userID).Return([]domain.Bank{active, idle}, nil).Once()
	suite.mockReportingRepo.On("GetBankMonthRows", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.BankMonthRow{
		{BankID: active.BankID, BankName: "Intesa", AccountName: "Main", Month: "2025-03", Income: decimal.NewFromInt(500), Expense: decimal.NewFromInt(120)},
	}, nil).Once()
	suite.mockReportingRepo.On("GetBankCostCenterRows", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.BankCostCenterRow{
		{BankID: active.BankID, BankName: "Intesa", CostCenterName: "food,groceries,home", Income: decimal.Zero, Expense: decimal.NewFromInt(80)},
		{BankID: idle.BankID, BankName: "Revolut", CostCenterName: "food,groceries,home", Income: decimal.Zero, Expense: decimal.NewFromInt(20)},
	}, nil).Once()

	data, err := suite.service.GetDashboardData(ctx, suite.userID, "2025-03")

	suite.Require().NoError(err)
	suite.Equal("2025-03", data.Month)
	suite.True(data.TotalBalance.Equal(decimal.NewFromInt(1000)))
	suite.Require().Len(data.MonthlyData, 2)

	suite.Equal(active.BankID, data.MonthlyData[0].BankID)
	suite.True(data.MonthlyData[0].MonthlyData[0].Income.Equal(decimal.NewFromInt(500)))
	suite.True(data.MonthlyData[0].MonthlyData[0].Net.Equal(decimal.NewFromInt(380)))

	// The idle bank still shows up, zero-filled.
	suite.Equal(idle.BankID, data.MonthlyData[1].BankID)
	suite.True(data.MonthlyData[1].MonthlyData[0].Income.IsZero())
	suite.True(data.MonthlyData[1].MonthlyData[0].Expense.IsZero())

	// Cross-bank totals merge per cost center.
	suite.Require().Len(data.TotalByCenter, 1)
	suite.Equal("food,groceries,home", data.TotalByCenter[0].Name)
	suite.True(data.TotalByCenter[0].Expense.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportingServiceTestSuite) TestGetDashboardData_InvalidMonth() {
	ctx := context.Background()

	data, err := suite.service.GetDashboardData(ctx, suite.userID, "March 2025")

	suite.Require().Error(err)
	suite.Nil(data)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBankRepo.AssertNotCalled(suite.T(), "ListBanksByUser")
}

func (suite *ReportingServiceTestSuite) TestGetBankDetailData_FiltersToBank() {
	ctx := context.Background()
	bankID := uuid.NewString()
	otherID := uuid.NewString()
	bank := &domain.Bank{BankID: bankID, UserID: suite.userID, BankName: "Intesa", AccountName: "Main", Balance: decimal.NewFromInt(900)}

	suite.mockBankRepo.On("FindBankByID", ctx, suite.userID, bankID).Return(bank, nil).Once()
	suite.mockReportingRepo.On("GetBankMonthRows", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.BankMonthRow{
		{BankID: bankID, Month: "2025-02", Income: decimal.NewFromInt(100), Expense: decimal.NewFromInt(40)},
		{BankID: bankID, Month: "2025-03", Income: decimal.NewFromInt(200), Expense: decimal.NewFromInt(60)},
		{BankID: otherID, Month: "2025-03", Income: decimal.NewFromInt(999), Expense: decimal.Zero},
	}, nil).Once()
	suite.mockReportingRepo.On("GetBankCostCenterRows", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.BankCostCenterRow{
		{BankID: bankID, CostCenterName: "travel,holiday,", Expense: decimal.NewFromInt(60), Income: decimal.Zero},
		{BankID: otherID, CostCenterName: "travel,holiday,", Expense: decimal.NewFromInt(999), Income: decimal.Zero},
	}, nil).Once()
	suite.mockBillingRepo.On("ListAllTransactions", ctx, suite.userID, mock.AnythingOfType("repositories.TransactionQuery")).Return([]domain.Transaction{}, nil).Once()
	suite.mockReportingRepo.On("GetBankMonthlyStats", ctx, suite.userID, bankID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(&domain.BankMonthlyStats{
		TotalIncome:      decimal.NewFromInt(200),
		TotalExpense:     decimal.NewFromInt(60),
		NetBalance:       decimal.NewFromInt(140),
		TransactionCount: 4,
	}, nil).Once()

	data, err := suite.service.GetBankDetailData(ctx, suite.userID, bankID, "2025-03")

	suite.Require().NoError(err)
	suite.Equal(bankID, data.Bank.BankID)
	suite.Require().Len(data.MonthlyData, 2)
	suite.Equal("2025-02", data.MonthlyData[0].Month)
	suite.Require().Len(data.CostCenterData, 1)
	suite.True(data.CostCenterData[0].Expense.Equal(decimal.NewFromInt(60)))
	suite.Equal(4, data.Stats.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestGetBankDetailData_MonthBoundsAreHalfOpen() {
	ctx := context.Background()
	bankID := uuid.NewString()
	bank := &domain.Bank{BankID: bankID, UserID: suite.userID}

	suite.mockBankRepo.On("FindBankByID", ctx, suite.userID, bankID).Return(bank, nil).Once()
	suite.mockReportingRepo.On("GetBankMonthRows", ctx, suite.userID, mock.Anything, mock.Anything).Return([]domain.BankMonthRow{}, nil).Once()
	suite.mockReportingRepo.On("GetBankCostCenterRows", ctx, suite.userID, mock.Anything, mock.Anything).Return([]domain.BankCostCenterRow{}, nil).Once()
	suite.mockBillingRepo.On("ListAllTransactions", ctx, suite.userID, mock.AnythingOfType("repositories.TransactionQuery")).Return([]domain.Transaction{}, nil).Once()
	suite.mockReportingRepo.On("GetBankMonthlyStats", ctx, suite.userID, bankID, mock.Anything, mock.Anything).Return(&domain.BankMonthlyStats{}, nil).Once()

	_, err := suite.service.GetBankDetailData(ctx, suite.userID, bankID, "2025-12")

	suite.Require().NoError(err)
	statsCall := suite.mockReportingRepo.Calls[len(suite.mockReportingRepo.Calls)-1]
	from := statsCall.Arguments.Get(3).(time.Time)
	to := statsCall.Arguments.Get(4).(time.Time)
	suite.Equal(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	suite.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
