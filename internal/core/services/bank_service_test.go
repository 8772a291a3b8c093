package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BankServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBankRepository
	service  *services.BankService
	userID   string
}

func (suite *BankServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBankRepository)
	suite.service = services.NewBankService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *BankServiceTestSuite) TestCreateBank_Defaults() {
	ctx := context.Background()
	req := dto.CreateBankRequest{
		BankName:    "Intesa",
		AccountName: "Main",
		Balance:     decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveBank", ctx, mock.AnythingOfType("domain.Bank")).Return(nil).Once()

	bank, err := suite.service.CreateBank(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(bank)
	suite.NotEmpty(bank.BankID)
	suite.Equal(suite.userID, bank.UserID)
	suite.Equal(domain.RoleChecking, bank.Role)
	suite.Equal("EUR", bank.CurrencyCode)
	suite.True(bank.Balance.Equal(decimal.NewFromInt(1000)))
	suite.Equal(suite.userID, bank.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestCreateBank_DuplicatePair() {
	ctx := context.Background()
	req := dto.CreateBankRequest{BankName: "Intesa", AccountName: "Main"}

	suite.mockRepo.On("SaveBank", ctx, mock.AnythingOfType("domain.Bank")).Return(apperrors.ErrDuplicate).Once()

	bank, err := suite.service.CreateBank(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(bank)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestListBanks_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListBanksByUser", ctx, suite.userID).Return([]domain.Bank(nil), nil).Once()

	banks, err := suite.service.ListBanks(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(banks)
	suite.Empty(banks)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestUpdateBank_MergesOnlyProvidedFields() {
	ctx := context.Background()
	bankID := uuid.NewString()
	existing := &domain.Bank{
		BankID:       bankID,
		UserID:       suite.userID,
		BankName:     "Intesa",
		AccountName:  "Main",
		CurrencyCode: "EUR",
		Balance:      decimal.NewFromInt(500),
		Role:         domain.RoleChecking,
	}
	newName := "Intesa Sanpaolo"
	req := dto.UpdateBankRequest{BankName: &newName}

	suite.mockRepo.On("FindBankByID", ctx, suite.userID, bankID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateBank", ctx, mock.AnythingOfType("domain.Bank")).Return(nil).Once()

	updated, err := suite.service.UpdateBank(ctx, suite.userID, bankID, req)

	suite.Require().NoError(err)
	suite.Equal("Intesa Sanpaolo", updated.BankName)
	suite.Equal("Main", updated.AccountName)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(500)))
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestApplyDelta_AddsSignedAmount() {
	ctx := context.Background()
	bankID := uuid.NewString()
	bank := &domain.Bank{BankID: bankID, UserID: suite.userID, Balance: decimal.NewFromInt(1000)}

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindBankByIDForUpdate", ctx, mock.Anything, suite.userID, bankID).Return(bank, nil).Once()
	suite.mockRepo.On("UpdateBankBalanceInTx", ctx, mock.Anything, bankID, decimal.NewFromInt(800), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	newBalance, err := suite.service.ApplyDelta(ctx, suite.userID, bankID, decimal.NewFromInt(-200))

	suite.Require().NoError(err)
	suite.True(newBalance.Equal(decimal.NewFromInt(800)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestApplyDelta_NotOwned() {
	ctx := context.Background()
	bankID := uuid.NewString()

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindBankByIDForUpdate", ctx, mock.Anything, suite.userID, bankID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.ApplyDelta(ctx, suite.userID, bankID, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestSnapshotBeforeAfter_Income() {
	ctx := context.Background()
	bankID := uuid.NewString()
	bank := &domain.Bank{BankID: bankID, UserID: suite.userID, Balance: decimal.NewFromInt(1000)}

	suite.mockRepo.On("FindBankByID", ctx, suite.userID, bankID).Return(bank, nil).Once()

	before, after, err := suite.service.SnapshotBeforeAfter(ctx, suite.userID, bankID, domain.Income, decimal.NewFromInt(200), decimal.NewFromInt(5))

	suite.Require().NoError(err)
	suite.True(before.Equal(decimal.NewFromInt(1000)))
	suite.True(after.Equal(decimal.NewFromInt(1195)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestSnapshotBeforeAfter_Expense() {
	ctx := context.Background()
	bankID := uuid.NewString()
	bank := &domain.Bank{BankID: bankID, UserID: suite.userID, Balance: decimal.NewFromInt(1000)}

	suite.mockRepo.On("FindBankByID", ctx, suite.userID, bankID).Return(bank, nil).Once()

	before, after, err := suite.service.SnapshotBeforeAfter(ctx, suite.userID, bankID, domain.Expense, decimal.NewFromInt(200), decimal.NewFromInt(5))

	suite.Require().NoError(err)
	suite.True(before.Equal(decimal.NewFromInt(1000)))
	suite.True(after.Equal(decimal.NewFromInt(795)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestSnapshotBeforeAfter_InvalidState() {
	ctx := context.Background()

	_, _, err := suite.service.SnapshotBeforeAfter(ctx, suite.userID, uuid.NewString(), "Transfer", decimal.NewFromInt(10), decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindBankByID")
}

func (suite *BankServiceTestSuite) TestSnapshotBeforeAfter_NegativeAmount() {
	ctx := context.Background()

	_, _, err := suite.service.SnapshotBeforeAfter(ctx, suite.userID, uuid.NewString(), domain.Income, decimal.NewFromInt(-10), decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BankServiceTestSuite) TestReverse_SetsBalanceBack() {
	ctx := context.Background()
	bankID := uuid.NewString()
	bank := &domain.Bank{BankID: bankID, UserID: suite.userID, Balance: decimal.NewFromInt(800)}

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindBankByIDForUpdate", ctx, mock.Anything, suite.userID, bankID).Return(bank, nil).Once()
	suite.mockRepo.On("UpdateBankBalanceInTx", ctx, mock.Anything, bankID, decimal.NewFromInt(1000), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	err := suite.service.Reverse(ctx, suite.userID, bankID, decimal.NewFromInt(1000))

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBankServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}
