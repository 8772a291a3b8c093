package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB-layer shape of a transaction row. Amount holds
// a non-negative magnitude; state carries the sign.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	BankID         string          `db:"bank_id"`
	BillingID      *string         `db:"billing_id"`
	CostCenterID   *string         `db:"cost_center_id"`
	Date           time.Time       `db:"date"`
	Amount         decimal.Decimal `db:"amount"`
	Fee            decimal.Decimal `db:"fee"`
	State          string          `db:"state"`
	BankName       string          `db:"bank_name"`
	AccountName    string          `db:"account_name"`
	CostCenterName string          `db:"cost_center_name"`
	BeforeBalance  decimal.Decimal `db:"before_balance"`
	AfterBalance   decimal.Decimal `db:"after_balance"`
	CreatedAt      time.Time       `db:"created_at"`
	CreatedBy      string          `db:"created_by"`
}

// Bill is the DB-layer shape of a billing row.
type Bill struct {
	BillID         string          `db:"billing_id"`
	BankID         string          `db:"bank_id"`
	CostCenterID   *string         `db:"cost_center_id"`
	Date           time.Time       `db:"date"`
	State          string          `db:"state"`
	BankName       string          `db:"bank_name"`
	AccountName    string          `db:"account_name"`
	CostCenterName string          `db:"cost_center_name"`
	Price          decimal.Decimal `db:"price"`
	Fee            decimal.Decimal `db:"fee"`
	BeforeBalance  decimal.Decimal `db:"before_balance"`
	AfterBalance   decimal.Decimal `db:"after_balance"`
	CreatedAt      time.Time       `db:"created_at"`
	CreatedBy      string          `db:"created_by"`
}
