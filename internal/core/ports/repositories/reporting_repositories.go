package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregation queries for dashboards
type ReportingRepository interface {
	// GetBankMonthRows retrieves per-(bank, month) income/expense sums for
	// the given period.
	GetBankMonthRows(ctx context.Context, userID string, from, to time.Time) ([]domain.BankMonthRow, error)

	// GetBankCostCenterRows retrieves per-(bank, cost center) income/expense
	// sums for the given period.
	GetBankCostCenterRows(ctx context.Context, userID string, from, to time.Time) ([]domain.BankCostCenterRow, error)

	// GetBankMonthlyStats summarizes one bank's activity in the given period.
	GetBankMonthlyStats(ctx context.Context, userID string, bankID string, from, to time.Time) (*domain.BankMonthlyStats, error)
}
