package models

import (
	"github.com/shopspring/decimal"
)

// BankRole mirrors domain.BankRole for DB storage.
type BankRole string

// Bank is the DB-layer shape of a bank account row.
type Bank struct {
	BankID        string          `db:"bank_id"`
	UserID        string          `db:"user_id"`
	BankName      string          `db:"bank_name"`
	AccountName   string          `db:"account_name"`
	AccountNumber string          `db:"account_number"`
	CurrencyCode  string          `db:"currency_code"`
	Balance       decimal.Decimal `db:"balance"`
	Role          BankRole        `db:"role"`
	Color         string          `db:"color"`
	AuditFields
}
