package dto

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams selects the month for dashboard aggregation.
type DashboardParams struct {
	Month string `form:"month" binding:"omitempty,yearmonth"` // YYYY-MM, defaults to current month
}

// DashboardResponse is the home-screen aggregate: per-bank monthly
// summaries plus annual cost center rollups.
type DashboardResponse struct {
	Month          string                      `json:"month"`
	TotalBalance   decimal.Decimal             `json:"totalBalance"`
	Banks          []BankResponse              `json:"banks"`
	MonthlyData    []domain.BankMonthlyData    `json:"monthlyData"`
	CostCenterData []domain.BankCostCenterData `json:"costCenterData"`
	TotalByCenter  []domain.CostCenterSummary  `json:"totalByCenter"`
}

// BankDetailParams selects the bank and month for the detail view.
type BankDetailParams struct {
	BankID string `form:"bankID" binding:"required"`
	Month  string `form:"month" binding:"omitempty,yearmonth"`
}

// BankDetailResponse is the per-bank drill-down view.
type BankDetailResponse struct {
	Bank           BankResponse               `json:"bank"`
	Month          string                     `json:"month"`
	MonthlyData    []domain.MonthlySummary    `json:"monthlyData"`
	CostCenterData []domain.CostCenterSummary `json:"costCenterData"`
	Transactions   []TransactionResponse      `json:"transactions"`
	Stats          domain.BankMonthlyStats    `json:"stats"`
}
