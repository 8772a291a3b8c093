package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
)

// ToModelBank converts a domain.Bank for DB storage.
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:        d.BankID,
		UserID:        d.UserID,
		BankName:      d.BankName,
		AccountName:   d.AccountName,
		AccountNumber: d.AccountNumber,
		CurrencyCode:  d.CurrencyCode,
		Balance:       d.Balance,
		Role:          models.BankRole(d.Role),
		Color:         d.Color,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainBank converts a DB row back to the domain shape.
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:        m.BankID,
		UserID:        m.UserID,
		BankName:      m.BankName,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		CurrencyCode:  m.CurrencyCode,
		Balance:       m.Balance,
		Role:          domain.BankRole(m.Role),
		Color:         m.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToModelTransaction converts a domain.Transaction for DB storage.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		BankID:         d.BankID,
		BillingID:      d.BillingID,
		CostCenterID:   d.CostCenterID,
		Date:           d.Date,
		Amount:         d.Amount,
		Fee:            d.Fee,
		State:          string(d.State),
		BankName:       d.BankName,
		AccountName:    d.AccountName,
		CostCenterName: d.CostCenterName,
		BeforeBalance:  d.BeforeBalance,
		AfterBalance:   d.AfterBalance,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainTransaction converts a DB row back to the domain shape.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		BankID:         m.BankID,
		BillingID:      m.BillingID,
		CostCenterID:   m.CostCenterID,
		Date:           m.Date,
		Amount:         m.Amount,
		Fee:            m.Fee,
		State:          domain.TransactionState(m.State),
		BankName:       m.BankName,
		AccountName:    m.AccountName,
		CostCenterName: m.CostCenterName,
		BeforeBalance:  m.BeforeBalance,
		AfterBalance:   m.AfterBalance,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

// ToDomainTransactionSlice converts a slice of DB rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

// ToModelBill converts a domain.Bill for DB storage.
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:         d.BillID,
		BankID:         d.BankID,
		CostCenterID:   d.CostCenterID,
		Date:           d.Date,
		State:          string(d.State),
		BankName:       d.BankName,
		AccountName:    d.AccountName,
		CostCenterName: d.CostCenterName,
		Price:          d.Price,
		Fee:            d.Fee,
		BeforeBalance:  d.BeforeBalance,
		AfterBalance:   d.AfterBalance,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainBill converts a DB row back to the domain shape.
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID:         m.BillID,
		BankID:         m.BankID,
		CostCenterID:   m.CostCenterID,
		Date:           m.Date,
		State:          domain.TransactionState(m.State),
		BankName:       m.BankName,
		AccountName:    m.AccountName,
		CostCenterName: m.CostCenterName,
		Price:          m.Price,
		Fee:            m.Fee,
		BeforeBalance:  m.BeforeBalance,
		AfterBalance:   m.AfterBalance,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

// ToDomainCostCenter converts a DB row back to the domain shape.
func ToDomainCostCenter(m models.CostCenter) domain.CostCenter {
	return domain.CostCenter{
		CostCenterID: m.CostCenterID,
		UserID:       m.UserID,
		Name:         m.Name,
		GroupName:    m.GroupName,
		CostCenter:   m.CostCenter,
		Area:         m.Area,
		State:        domain.TransactionState(m.State),
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainUser converts a DB row back to the domain shape.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		GoogleID:     m.GoogleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
