package services_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBankRepository is a mock type for the BankRepositoryWithTx interface
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) FindBankByID(ctx context.Context, userID string, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, userID, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) FindBankByNames(ctx context.Context, userID string, bankName string, accountName string) (*domain.Bank, error) {
	args := m.Called(ctx, userID, bankName, accountName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) ListBanksByUser(ctx context.Context, userID string) ([]domain.Bank, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) DeleteBank(ctx context.Context, userID string, bankID string) error {
	args := m.Called(ctx, userID, bankID)
	return args.Error(0)
}

func (m *MockBankRepository) FindBankByIDForUpdate(ctx context.Context, tx *sql.Tx, userID string, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, tx, userID, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) UpdateBankBalanceInTx(ctx context.Context, tx *sql.Tx, bankID string, newBalance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, bankID, newBalance, userID, now)
	return args.Error(0)
}

func (m *MockBankRepository) Begin(ctx context.Context) (*sql.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sql.Tx), args.Error(1)
}

func (m *MockBankRepository) Commit(ctx context.Context, tx *sql.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBankRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockBillingRepository is a mock type for the BillingRepositoryWithTx interface
type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) FindBillByID(ctx context.Context, userID string, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, userID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillingRepository) ListRecentBills(ctx context.Context, userID string, limit int) ([]domain.Bill, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillingRepository) SaveBillWithTransaction(ctx context.Context, bill domain.Bill, txn domain.Transaction, newBalance decimal.Decimal) error {
	args := m.Called(ctx, bill, txn, newBalance)
	return args.Error(0)
}

func (m *MockBillingRepository) DeleteBillWithTransaction(ctx context.Context, bill domain.Bill, restoredBalance decimal.Decimal) error {
	args := m.Called(ctx, bill, restoredBalance)
	return args.Error(0)
}

func (m *MockBillingRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error {
	args := m.Called(ctx, txn, newBalance)
	return args.Error(0)
}

func (m *MockBillingRepository) DeleteTransaction(ctx context.Context, txn domain.Transaction, restoredBalance decimal.Decimal) error {
	args := m.Called(ctx, txn, restoredBalance)
	return args.Error(0)
}

func (m *MockBillingRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockBillingRepository) ListTransactions(ctx context.Context, userID string, query portsrepo.TransactionQuery) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Int(1), args.Error(2)
}

func (m *MockBillingRepository) ListAllTransactions(ctx context.Context, userID string, query portsrepo.TransactionQuery) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBillingRepository) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBillingRepository) Begin(ctx context.Context) (*sql.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sql.Tx), args.Error(1)
}

func (m *MockBillingRepository) Commit(ctx context.Context, tx *sql.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBillingRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockCostCenterRepository is a mock type for the CostCenterRepositoryFacade interface
type MockCostCenterRepository struct {
	mock.Mock
}

func (m *MockCostCenterRepository) FindCostCenterByID(ctx context.Context, userID string, costCenterID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, userID, costCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) ListCostCenters(ctx context.Context, userID string) ([]domain.CostCenter, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) SaveCostCenter(ctx context.Context, cc domain.CostCenter) error {
	args := m.Called(ctx, cc)
	return args.Error(0)
}

func (m *MockCostCenterRepository) UpdateCostCenter(ctx context.Context, cc domain.CostCenter) error {
	args := m.Called(ctx, cc)
	return args.Error(0)
}

func (m *MockCostCenterRepository) DeleteCostCenter(ctx context.Context, userID string, costCenterID string) error {
	args := m.Called(ctx, userID, costCenterID)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetBankMonthRows(ctx context.Context, userID string, from, to time.Time) ([]domain.BankMonthRow, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankMonthRow), args.Error(1)
}

func (m *MockReportingRepository) GetBankCostCenterRows(ctx context.Context, userID string, from, to time.Time) ([]domain.BankCostCenterRow, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankCostCenterRow), args.Error(1)
}

func (m *MockReportingRepository) GetBankMonthlyStats(ctx context.Context, userID string, bankID string, from, to time.Time) (*domain.BankMonthlyStats, error) {
	args := m.Called(ctx, userID, bankID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankMonthlyStats), args.Error(1)
}
