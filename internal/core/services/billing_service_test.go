package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/audit"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/export"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillingServiceTestSuite struct {
	suite.Suite
	mockBillingRepo *MockBillingRepository
	mockBankRepo    *MockBankRepository
	mockCCRepo      *MockCostCenterRepository
	service         *services.BillingService
	userID          string
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.mockBillingRepo = new(MockBillingRepository)
	suite.mockBankRepo = new(MockBankRepository)
	suite.mockCCRepo = new(MockCostCenterRepository)
	suite.service = services.NewBillingService(
		suite.mockBillingRepo,
		suite.mockBankRepo,
		suite.mockCCRepo,
		audit.NewMonthlyAutoSaver(""), // disabled
		suite.T().TempDir(),
	)
	suite.userID = uuid.NewString()
}

func (suite *BillingServiceTestSuite) TestAddBill_ExpenseSnapshotPair() {
	ctx := context.Background()
	bankID := uuid.NewString()
	bank := &domain.Bank{BankID: bankID, UserID: suite.userID, BankName: "Intesa", AccountName: "Main", Balance: decimal.NewFromInt(1000)}

	suite.mockBankRepo.On("FindBankByID", ctx, suite.userID, bankID).Return(bank, nil).Once()
	suite.mockBillingRepo.On("SaveBillWithTransaction", ctx,
		mock.AnythingOfType("domain.Bill"),
		mock.AnythingOfType("domain.Transaction"),
		decimal.NewFromInt(800),
	).Return(nil).Once()

	bill, err := suite.service.AddBill(ctx, suite.userID, dto.AddBillRequest{
		Date:   "2025-03-10",
		BankID: bankID,
		Price:  decimal.NewFromInt(200),
		State:  "Expense",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(bill)
	suite.True(bill.BeforeBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(bill.AfterBalance.Equal(decimal.NewFromInt(800)))
	suite.Equal("Intesa", bill.BankName)

	// The linked transaction carries the same snapshot pair and bill link.
	savedTxn := suite.mockBillingRepo.Calls[0].Arguments.Get(2).(domain.Transaction)
	suite.Require().NotNil(savedTxn.BillingID)
	suite.Equal(bill.BillID, *savedTxn.BillingID)
	suite.True(savedTxn.BeforeBalance.Equal(bill.BeforeBalance))
	suite.True(savedTxn.AfterBalance.Equal(bill.AfterBalance))

	suite.mockBankRepo.AssertExpectations(suite.T())
	suite.mockBillingRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestAddBill_FeeReducesBothStates() {
	ctx := context.Background()
	bankID := uuid.NewString()

	for state, want := range map[string]int64{"Income": 1095, "Expense": 895} {
		bank := &domain.Bank{BankID: bankID, UserID: suite.userID, Balance: decimal.NewFromInt(1000)}
		suite.mockBankRepo.On("FindBankByID", ctx, suite.userID, bankID).Return(bank, nil).Once()
		suite.mockBillingRepo.On("SaveBillWithTransaction", ctx, mock.Anything, mock.Anything, decimal.NewFromInt(want)).Return(nil).Once()

		bill, err := suite.service.AddBill(ctx, suite.userID, dto.AddBillRequest{
			Date:   "2025-03-10",
			BankID: bankID,
			Price:  decimal.NewFromInt(100),
			Fee:    decimal.NewFromInt(5),
			State:  state,
		})

		suite.Require().NoError(err)
		suite.True(bill.AfterBalance.Equal(decimal.NewFromInt(want)), "state %s", state)
	}
}

func (suite *BillingServiceTestSuite) TestAddBill_InvalidState() {
	ctx := context.Background()

	bill, err := suite.service.AddBill(ctx, suite.userID, dto.AddBillRequest{
		Date:   "2025-03-10",
		BankID: uuid.NewString(),
		Price:  decimal.NewFromInt(10),
		State:  "Transfer",
	})

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockBillingRepo.AssertNotCalled(suite.T(), "SaveBillWithTransaction")
}

func (suite *BillingServiceTestSuite) TestAddBill_InvalidDate() {
	ctx := context.Background()

	_, err := suite.service.AddBill(ctx, suite.userID, dto.AddBillRequest{
		Date:   "10/03/2025",
		BankID: uuid.NewString(),
		Price:  decimal.NewFromInt(10),
		State:  "Income",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillingServiceTestSuite) TestDeleteBill_ReversesDelta() {
	ctx := context.Background()
	bankID := uuid.NewString()
	billID := uuid.NewString()
	bill := &domain.Bill{
		BillID: billID,
		BankID: bankID,
		State:  domain.Expense,
		Price:  decimal.NewFromInt(200),
		Fee:    decimal.Zero,
	}
	bank := &domain.Bank{BankID: bankID, UserID: suite.userID, Balance: decimal.NewFromInt(800)}

	suite.mockBillingRepo.On("FindBillByID", ctx, suite.userID, billID).Return(bill, nil).Once()
	suite.mockBankRepo.On("FindBankByID", ctx, suite.userID, bankID).Return(bank, nil).Once()
	// Expense of 200 deleted: 800 - (-200) = 1000.
	suite.mockBillingRepo.On("DeleteBillWithTransaction", ctx, *bill, decimal.NewFromInt(1000)).Return(nil).Once()

	err := suite.service.DeleteBill(ctx, suite.userID, billID)

	suite.Require().NoError(err)
	suite.mockBillingRepo.AssertExpectations(suite.T())
	suite.mockBankRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestDeleteBill_NotOwned() {
	ctx := context.Background()
	billID := uuid.NewString()

	suite.mockBillingRepo.On("FindBillByID", ctx, suite.userID, billID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBill(ctx, suite.userID, billID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillingRepo.AssertNotCalled(suite.T(), "DeleteBillWithTransaction")
}

func (suite *BillingServiceTestSuite) TestDeleteTransaction_RestoresBeforeBalance() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID: txnID,
		BankID:        uuid.NewString(),
		State:         domain.Income,
		Amount:        decimal.NewFromInt(300),
		BeforeBalance: decimal.NewFromInt(700),
		AfterBalance:  decimal.NewFromInt(1000),
	}

	suite.mockBillingRepo.On("FindTransactionByID", ctx, suite.userID, txnID).Return(txn, nil).Once()
	suite.mockBillingRepo.On("DeleteTransaction", ctx, *txn, decimal.NewFromInt(700)).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txnID)

	suite.Require().NoError(err)
	suite.mockBillingRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestListTransactions_PaginationFlags() {
	ctx := context.Background()
	txns := make([]domain.Transaction, 20)
	for i := range txns {
		txns[i] = domain.Transaction{TransactionID: uuid.NewString()}
	}

	suite.mockBillingRepo.On("ListTransactions", ctx, suite.userID, mock.AnythingOfType("repositories.TransactionQuery")).Return(txns, 45, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, dto.TransactionFilters{Page: 2, Limit: 20})

	suite.Require().NoError(err)
	suite.Equal(2, resp.Pagination.CurrentPage)
	suite.Equal(3, resp.Pagination.TotalPages)
	suite.Equal(45, resp.Pagination.TotalItems)
	suite.Equal(20, resp.Pagination.ItemsPerPage)
	suite.True(resp.Pagination.HasNext)
	suite.True(resp.Pagination.HasPrev)

	q := suite.mockBillingRepo.Calls[0].Arguments.Get(2).(portsrepo.TransactionQuery)
	suite.Equal(20, q.Limit)
	suite.Equal(20, q.Offset)
}

func (suite *BillingServiceTestSuite) TestListTransactions_ExplicitDatesInclusiveEnd() {
	ctx := context.Background()

	suite.mockBillingRepo.On("ListTransactions", ctx, suite.userID, mock.AnythingOfType("repositories.TransactionQuery")).Return([]domain.Transaction{}, 0, nil).Once()

	_, err := suite.service.ListTransactions(ctx, suite.userID, dto.TransactionFilters{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
		Page:      1,
		Limit:     20,
	})

	suite.Require().NoError(err)
	q := suite.mockBillingRepo.Calls[0].Arguments.Get(2).(portsrepo.TransactionQuery)
	suite.Require().NotNil(q.DateFrom)
	suite.Require().NotNil(q.DateTo)
	suite.Equal("2025-03-01", q.DateFrom.Format("2006-01-02"))
	// Inclusive end date becomes the next day's exclusive bound.
	suite.Equal("2025-04-01", q.DateTo.Format("2006-01-02"))
}

func (suite *BillingServiceTestSuite) TestGetStatistics_SumsAndNet() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{State: domain.Income, Amount: decimal.NewFromInt(100), Fee: decimal.Zero, CostCenterName: "salary,main,"},
		{State: domain.Income, Amount: decimal.NewFromInt(200), Fee: decimal.Zero, CostCenterName: "salary,main,"},
		{State: domain.Income, Amount: decimal.NewFromInt(50), Fee: decimal.Zero},
		{State: domain.Expense, Amount: decimal.NewFromInt(30), Fee: decimal.Zero, CostCenterName: "food,groceries,home"},
	}

	suite.mockBillingRepo.On("ListAllTransactions", ctx, suite.userID, mock.AnythingOfType("repositories.TransactionQuery")).Return(txns, nil).Once()

	stats, err := suite.service.GetStatistics(ctx, suite.userID, dto.TransactionFilters{})

	suite.Require().NoError(err)
	suite.True(stats.TotalIncome.Equal(decimal.NewFromInt(350)))
	suite.True(stats.TotalExpenses.Equal(decimal.NewFromInt(30)))
	suite.True(stats.NetAmount.Equal(decimal.NewFromInt(320)))
	suite.Equal(3, stats.IncomeCount)
	suite.Equal(1, stats.ExpenseCount)
	suite.Equal(4, stats.TotalTransactions)

	suite.Require().Len(stats.TopCategories, 3)
	suite.Equal("salary,main,", stats.TopCategories[0].Name)
	suite.True(stats.TopCategories[0].Amount.Equal(decimal.NewFromInt(300)))
	suite.Equal("Uncategorized", stats.TopCategories[1].Name)
	suite.Equal("food,groceries,home", stats.TopCategories[2].Name)
}

func (suite *BillingServiceTestSuite) TestGetStatistics_TopCategoriesCappedAtFive() {
	ctx := context.Background()
	txns := make([]domain.Transaction, 7)
	for i := range txns {
		txns[i] = domain.Transaction{
			State:          domain.Expense,
			Amount:         decimal.NewFromInt(int64(10 * (i + 1))),
			CostCenterName: string(rune('a' + i)),
		}
	}

	suite.mockBillingRepo.On("ListAllTransactions", ctx, suite.userID, mock.AnythingOfType("repositories.TransactionQuery")).Return(txns, nil).Once()

	stats, err := suite.service.GetStatistics(ctx, suite.userID, dto.TransactionFilters{})

	suite.Require().NoError(err)
	suite.Len(stats.TopCategories, 5)
	suite.Equal("g", stats.TopCategories[0].Name)
	suite.True(stats.TopCategories[0].Amount.Equal(decimal.NewFromInt(70)))
}

func (suite *BillingServiceTestSuite) TestImportTransactions_PartialSuccess() {
	ctx := context.Background()
	bank := &domain.Bank{BankID: uuid.NewString(), UserID: suite.userID, BankName: "Intesa", AccountName: "Main", Balance: decimal.NewFromInt(100)}

	suite.mockBankRepo.On("FindBankByNames", ctx, suite.userID, "Intesa", "Main").Return(bank, nil)
	suite.mockBillingRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil)

	rows := []dto.ImportRow{
		{RowNum: 1, Date: "2025-03-01", BankName: "Intesa", AccountName: "Main", Amount: decimal.NewFromInt(50), State: "Income"},
		{RowNum: 2, Date: "bad-date", BankName: "Intesa", AccountName: "Main", Amount: decimal.NewFromInt(10), State: "Expense"},
		{RowNum: 3, Date: "2025-03-02", BankName: "Intesa", AccountName: "Main", Amount: decimal.NewFromInt(20), State: "Transfer"},
		{RowNum: 4, Date: "2025-03-03", BankName: "Intesa", AccountName: "Main", Amount: decimal.NewFromInt(5), State: "Expense"},
	}

	result, err := suite.service.ImportTransactions(ctx, suite.userID, rows)

	suite.Require().NoError(err)
	suite.Equal(2, result.Imported)
	suite.Equal(2, result.Failed)
	suite.Require().Len(result.Errors, 2)
	suite.Contains(result.Errors[0], "Row 2:")
	suite.Contains(result.Errors[1], "Row 3:")
}

func (suite *BillingServiceTestSuite) TestImportTransactions_MalformedFileRowsAreRowFailures() {
	ctx := context.Background()
	bank := &domain.Bank{BankID: uuid.NewString(), UserID: suite.userID, BankName: "Intesa", AccountName: "Main", Balance: decimal.NewFromInt(100)}

	suite.mockBankRepo.On("FindBankByNames", ctx, suite.userID, "Intesa", "Main").Return(bank, nil)
	suite.mockBillingRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil)

	input := "date,bank_name,account_name,amount,fee,state\n" +
		"2025-03-01,Intesa,Main,50,0,Income\n" +
		"2025-03-02,Intesa,Main,notanumber,0,Expense\n" +
		"2025-03-03,Intesa,Main,20,0,Expense\n"
	rows, err := export.ParseTransactionsCSV(strings.NewReader(input))
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	result, err := suite.service.ImportTransactions(ctx, suite.userID, rows)

	suite.Require().NoError(err)
	suite.Equal(2, result.Imported)
	suite.Equal(1, result.Failed)
	suite.Require().Len(result.Errors, 1)
	suite.Contains(result.Errors[0], "Row 2:")
	suite.Contains(result.Errors[0], "invalid amount")
}

func (suite *BillingServiceTestSuite) TestImportTransactions_CreatesMissingBank() {
	ctx := context.Background()

	suite.mockBankRepo.On("FindBankByNames", ctx, suite.userID, "New Bank", "Fresh").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBankRepo.On("SaveBank", ctx, mock.AnythingOfType("domain.Bank")).Return(nil).Once()
	suite.mockBillingRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), decimal.NewFromInt(75)).Return(nil).Once()

	rows := []dto.ImportRow{
		{RowNum: 1, Date: "2025-03-01", BankName: "New Bank", AccountName: "Fresh", Amount: decimal.NewFromInt(75), State: "Income"},
	}

	result, err := suite.service.ImportTransactions(ctx, suite.userID, rows)

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
	suite.Zero(result.Failed)

	savedBank := suite.mockBankRepo.Calls[1].Arguments.Get(1).(domain.Bank)
	suite.True(savedBank.Balance.IsZero())
	suite.Equal("New Bank", savedBank.BankName)
	suite.mockBankRepo.AssertExpectations(suite.T())
	suite.mockBillingRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestGetBillingPageData() {
	ctx := context.Background()
	bank := domain.Bank{BankID: uuid.NewString(), BankName: "Intesa", AccountName: "Main"}

	suite.mockBillingRepo.On("ListRecentBills", ctx, suite.userID, 20).Return([]domain.Bill{}, nil).Once()
	suite.mockBillingRepo.On("ListRecentTransactions", ctx, suite.userID, 10).Return([]domain.Transaction{}, nil).Once()
	suite.mockBankRepo.On("ListBanksByUser", ctx, suite.userID).Return([]domain.Bank{bank}, nil).Once()
	suite.mockCCRepo.On("ListCostCenters", ctx, suite.userID).Return([]domain.CostCenter{}, nil).Once()

	data, err := suite.service.GetBillingPageData(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(data.Banks, 1)
	suite.Equal("Intesa, Main", data.Banks[0].DisplayName)
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
