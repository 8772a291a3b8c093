package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BankReaderSvc defines read operations for bank account data
type BankReaderSvc interface {
	// GetBankByID retrieves a bank owned by the given user.
	GetBankByID(ctx context.Context, userID string, bankID string) (*domain.Bank, error)

	// ListBanks retrieves all banks owned by the given user.
	ListBanks(ctx context.Context, userID string) ([]domain.Bank, error)
}

// BankWriterSvc defines write operations for bank account data
type BankWriterSvc interface {
	// CreateBank persists a new bank with an optional opening balance.
	CreateBank(ctx context.Context, userID string, req dto.CreateBankRequest) (*domain.Bank, error)

	// UpdateBank updates a bank's details. Balance is not updatable here.
	UpdateBank(ctx context.Context, userID string, bankID string, req dto.UpdateBankRequest) (*domain.Bank, error)

	// DeleteBank removes a bank and everything recorded against it.
	DeleteBank(ctx context.Context, userID string, bankID string) error
}

// LedgerSvc defines the balance-mutation primitives every write path
// goes through.
type LedgerSvc interface {
	// ApplyDelta adjusts a bank's balance by a signed amount in a single
	// store transaction and returns the new balance.
	ApplyDelta(ctx context.Context, userID string, bankID string, delta decimal.Decimal) (decimal.Decimal, error)

	// SnapshotBeforeAfter reads the bank's current balance and computes the
	// balance a record with the given state/amount/fee would produce. No write.
	SnapshotBeforeAfter(ctx context.Context, userID string, bankID string, state domain.TransactionState, amount, fee decimal.Decimal) (before, after decimal.Decimal, err error)

	// Reverse sets a bank's balance back to an explicit prior value.
	Reverse(ctx context.Context, userID string, bankID string, before decimal.Decimal) error
}

// BankSvcFacade combines all bank-related service interfaces
type BankSvcFacade interface {
	BankReaderSvc
	BankWriterSvc
	LedgerSvc
}
