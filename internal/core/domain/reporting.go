package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary holds income/expense/net sums for one YYYY-MM bucket.
type MonthlySummary struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"balance"`
}

// BankMonthlyData groups monthly summaries under one bank.
type BankMonthlyData struct {
	BankID      string           `json:"bank_id"`
	BankName    string           `json:"bank_name"`
	AccountName string           `json:"account"`
	MonthlyData []MonthlySummary `json:"monthlyData"`
}

// CostCenterSummary holds income/expense sums for one cost center bucket.
type CostCenterSummary struct {
	Name    string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// BankCostCenterData groups annual cost center summaries under one bank.
type BankCostCenterData struct {
	BankID         string              `json:"bank_id"`
	BankName       string              `json:"bank_name"`
	CostCenterData []CostCenterSummary `json:"costCenterData"`
}

// BankMonthlyStats summarizes a single bank's month.
type BankMonthlyStats struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetBalance       decimal.Decimal `json:"netBalance"`
	TransactionCount int             `json:"transactionCount"`
}

// BankMonthRow is one aggregation row: sums for a (bank, month) bucket.
type BankMonthRow struct {
	BankID      string
	BankName    string
	AccountName string
	Month       string // YYYY-MM
	Income      decimal.Decimal
	Expense     decimal.Decimal
}

// BankCostCenterRow is one aggregation row: sums for a (bank, cost center)
// bucket over a period.
type BankCostCenterRow struct {
	BankID         string
	BankName       string
	CostCenterName string
	Income         decimal.Decimal
	Expense        decimal.Decimal
}

// CategoryAmount pairs a cost center name with a summed amount.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// TransactionStatistics is a pure reduction over a filtered transaction set.
type TransactionStatistics struct {
	TotalIncome       decimal.Decimal  `json:"total_income"`
	TotalExpenses     decimal.Decimal  `json:"total_expenses"`
	TotalFees         decimal.Decimal  `json:"total_fees"`
	NetAmount         decimal.Decimal  `json:"net_amount"`
	IncomeCount       int              `json:"income_count"`
	ExpenseCount      int              `json:"expense_count"`
	TotalTransactions int              `json:"total_transactions"`
	TopCategories     []CategoryAmount `json:"top_categories"`
}
