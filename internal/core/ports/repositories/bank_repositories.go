package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankReader defines read operations for bank account data
type BankReader interface {
	// FindBankByID retrieves a bank owned by the given user. Banks owned by
	// other users are reported as not found.
	FindBankByID(ctx context.Context, userID string, bankID string) (*domain.Bank, error)

	// FindBankByNames retrieves a user's bank by its (bank name, account name) pair.
	FindBankByNames(ctx context.Context, userID string, bankName string, accountName string) (*domain.Bank, error)

	// ListBanksByUser retrieves all banks owned by the given user.
	ListBanksByUser(ctx context.Context, userID string) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank account data
type BankWriter interface {
	// SaveBank persists a new bank.
	SaveBank(ctx context.Context, bank domain.Bank) error

	// UpdateBank updates an existing bank's details.
	UpdateBank(ctx context.Context, bank domain.Bank) error

	// DeleteBank removes a bank and cascades to its transactions and bills.
	DeleteBank(ctx context.Context, userID string, bankID string) error
}

// BankTransactionSupport defines operations used inside store transactions
type BankTransactionSupport interface {
	// FindBankByIDForUpdate selects a user's bank within a transaction.
	FindBankByIDForUpdate(ctx context.Context, tx *sql.Tx, userID string, bankID string) (*domain.Bank, error)

	// UpdateBankBalanceInTx sets a bank's balance within a given transaction.
	UpdateBankBalanceInTx(ctx context.Context, tx *sql.Tx, bankID string, newBalance decimal.Decimal, userID string, now time.Time) error
}

// BankRepositoryFacade combines all bank-related repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
	BankTransactionSupport
}

// BankRepositoryWithTx extends BankRepositoryFacade with transaction capabilities
type BankRepositoryWithTx interface {
	BankRepositoryFacade
	TransactionManager
}
