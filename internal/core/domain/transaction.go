package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionState indicates whether a record adds to or subtracts from a balance.
type TransactionState string

const (
	Income  TransactionState = "Income"
	Expense TransactionState = "Expense"
)

// Valid reports whether the state is one of the allowed tags.
func (s TransactionState) Valid() bool {
	return s == Income || s == Expense
}

// SignedDelta returns the balance change produced by a record with this
// state. The fee always reduces the balance, regardless of state:
// Income yields +amount-fee, Expense yields -amount-fee.
func (s TransactionState) SignedDelta(amount, fee decimal.Decimal) decimal.Decimal {
	if s == Income {
		return amount.Sub(fee)
	}
	return amount.Neg().Sub(fee)
}

// Transaction is the ledger-facing record of a balance-changing event.
// Amount is always a non-negative magnitude; the state carries the sign.
// Immutable once created except for deletion, which restores the owning
// bank's balance to BeforeBalance.
type Transaction struct {
	TransactionID  string           `json:"transactionID"`
	BankID         string           `json:"bankID"`
	BillingID      *string          `json:"billingID,omitempty"`    // set when created through a bill
	CostCenterID   *string          `json:"costCenterID,omitempty"` // nullable, detached on cost center delete
	Date           time.Time        `json:"date"`
	Amount         decimal.Decimal  `json:"amount"`
	Fee            decimal.Decimal  `json:"fee"`
	State          TransactionState `json:"state"`
	BankName       string           `json:"bankName"`    // denormalized at creation time
	AccountName    string           `json:"accountName"` // denormalized at creation time
	CostCenterName string           `json:"costCenterName"`
	BeforeBalance  decimal.Decimal  `json:"beforeBalance"`
	AfterBalance   decimal.Decimal  `json:"afterBalance"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
}
