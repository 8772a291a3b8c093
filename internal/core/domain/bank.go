package domain

import (
	"github.com/shopspring/decimal"
)

// BankRole tags the purpose of a bank account.
type BankRole string

const (
	RoleChecking BankRole = "checking"
	RoleSavings  BankRole = "savings"
	RoleBusiness BankRole = "business"
)

// Bank represents a balance-bearing account owned by a single user.
// Balance is mutated exclusively through the ledger operations of the
// account service; it always equals the after_balance of the most
// recently applied transaction (or the last explicit set).
type Bank struct {
	BankID        string          `json:"bankID"`
	UserID        string          `json:"userID"`
	BankName      string          `json:"bankName"`
	AccountName   string          `json:"accountName"`
	AccountNumber string          `json:"accountNumber"` // display label, e.g. "**** 3535"
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	Role          BankRole        `json:"role"`
	Color         string          `json:"color"` // UI tag
	AuditFields
}

// DisplayName is the label shown in dropdowns: "<bank>, <account>".
func (b Bank) DisplayName() string {
	return b.BankName + ", " + b.AccountName
}
