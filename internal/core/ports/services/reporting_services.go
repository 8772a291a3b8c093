package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/dto"
)

// ReportingService defines read-only dashboard aggregation
type ReportingService interface {
	// GetDashboardData builds the home-screen aggregate for a month ("YYYY-MM").
	GetDashboardData(ctx context.Context, userID string, month string) (*dto.DashboardResponse, error)

	// GetBankDetailData builds the per-bank drill-down for a month.
	GetBankDetailData(ctx context.Context, userID string, bankID string, month string) (*dto.BankDetailResponse, error)
}
