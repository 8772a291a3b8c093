package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionQuery is the resolved filter set applied by list, statistics
// and export queries. Date bounds are half-open: [DateFrom, DateTo).
type TransactionQuery struct {
	Search       string
	BankID       string
	CostCenterID string
	State        string
	DateFrom     *time.Time
	DateTo       *time.Time
	MinAmount    *decimal.Decimal
	MaxAmount    *decimal.Decimal
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       int
}

// BillingReader defines read operations for bill data
type BillingReader interface {
	// FindBillByID retrieves a bill belonging to the given user.
	FindBillByID(ctx context.Context, userID string, billID string) (*domain.Bill, error)

	// ListRecentBills retrieves the user's most recent bills, newest first.
	ListRecentBills(ctx context.Context, userID string, limit int) ([]domain.Bill, error)
}

// BillingWriter defines write operations that keep bills, transactions and
// bank balances consistent. Each method runs in a single store transaction.
type BillingWriter interface {
	// SaveBillWithTransaction persists a bill, its linked transaction and the
	// bank's new balance atomically.
	SaveBillWithTransaction(ctx context.Context, bill domain.Bill, txn domain.Transaction, newBalance decimal.Decimal) error

	// DeleteBillWithTransaction removes a bill and its linked transaction and
	// sets the bank's balance back atomically.
	DeleteBillWithTransaction(ctx context.Context, bill domain.Bill, restoredBalance decimal.Decimal) error

	// SaveTransaction persists a standalone transaction (import path) together
	// with the bank's new balance.
	SaveTransaction(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error

	// DeleteTransaction removes a transaction and sets the bank's balance back
	// atomically. A linked bill row is removed with it.
	DeleteTransaction(ctx context.Context, txn domain.Transaction, restoredBalance decimal.Decimal) error
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction belonging to the given user.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of the user's transactions
	// and the total number of rows matching the filters.
	ListTransactions(ctx context.Context, userID string, query TransactionQuery) ([]domain.Transaction, int, error)

	// ListAllTransactions retrieves every transaction matching the filters,
	// ignoring pagination. Used by statistics and export.
	ListAllTransactions(ctx context.Context, userID string, query TransactionQuery) ([]domain.Transaction, error)

	// ListRecentTransactions retrieves the user's most recent transactions.
	ListRecentTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

// BillingRepositoryFacade combines all billing-related repository interfaces
type BillingRepositoryFacade interface {
	BillingReader
	BillingWriter
	TransactionReader
}

// BillingRepositoryWithTx extends BillingRepositoryFacade with transaction capabilities
type BillingRepositoryWithTx interface {
	BillingRepositoryFacade
	TransactionManager
}
