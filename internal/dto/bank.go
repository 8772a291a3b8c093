package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankRequest defines the data needed to create a new bank account.
type CreateBankRequest struct {
	BankName      string          `json:"bankName" binding:"required"`
	AccountName   string          `json:"accountName" binding:"required"`
	AccountNumber string          `json:"accountNumber"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	Role          domain.BankRole `json:"role" binding:"omitempty,oneof=checking savings business"`
	Color         string          `json:"color"`
}

// UpdateBankRequest defines the fields allowed for updating a bank account.
// Pointers distinguish fields not provided from zero-value updates. Balance
// is deliberately absent: balances move only through ledger operations.
type UpdateBankRequest struct {
	BankName      *string          `json:"bankName"`
	AccountName   *string          `json:"accountName"`
	AccountNumber *string          `json:"accountNumber"`
	CurrencyCode  *string          `json:"currencyCode"`
	Role          *domain.BankRole `json:"role" binding:"omitempty,oneof=checking savings business"`
	Color         *string          `json:"color"`
}

// BankResponse defines the data returned for a bank account.
type BankResponse struct {
	BankID        string          `json:"bankID"`
	BankName      string          `json:"bankName"`
	AccountName   string          `json:"accountName"`
	AccountNumber string          `json:"accountNumber"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	Role          domain.BankRole `json:"role"`
	Color         string          `json:"color"`
	DisplayName   string          `json:"displayName"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO.
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:        b.BankID,
		BankName:      b.BankName,
		AccountName:   b.AccountName,
		AccountNumber: b.AccountNumber,
		CurrencyCode:  b.CurrencyCode,
		Balance:       b.Balance,
		Role:          b.Role,
		Color:         b.Color,
		DisplayName:   b.DisplayName(),
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBankResponse converts a slice of domain.Bank to response DTOs.
func ToListBankResponse(banks []domain.Bank) []BankResponse {
	res := make([]BankResponse, len(banks))
	for i, b := range banks {
		res[i] = ToBankResponse(&b)
	}
	return res
}
