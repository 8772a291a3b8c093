package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/utils/daterange"
	"github.com/shopspring/decimal"
)

// ReportingService builds the read-only dashboard aggregates. It never
// mutates anything; all values are sums over the transactions table.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	bankRepo      portsrepo.BankRepositoryWithTx
	billingRepo   portsrepo.BillingRepositoryWithTx
	now           func() time.Time
}

func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	bankRepo portsrepo.BankRepositoryWithTx,
	billingRepo portsrepo.BillingRepositoryWithTx,
) *ReportingService {
	return &ReportingService{
		reportingRepo: reportingRepo,
		bankRepo:      bankRepo,
		billingRepo:   billingRepo,
		now:           time.Now,
	}
}

var _ portssvc.ReportingService = (*ReportingService)(nil)

// resolveMonth parses a "YYYY-MM" token, defaulting to the current month,
// and returns the month range plus the enclosing calendar year range.
func (s *ReportingService) resolveMonth(month string) (string, daterange.Range, daterange.Range, error) {
	if month == "" {
		month = s.now().Format("2006-01")
	}
	monthRange, err := daterange.ParseMonth(month, time.UTC)
	if err != nil {
		return "", daterange.Range{}, daterange.Range{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	yearStart := time.Date(monthRange.From.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearRange := daterange.Range{From: yearStart, To: yearStart.AddDate(1, 0, 0)}
	return month, monthRange, yearRange, nil
}

// GetDashboardData builds the home-screen aggregate for a month.
func (s *ReportingService) GetDashboardData(ctx context.Context, userID string, month string) (*dto.DashboardResponse, error) {
	month, monthRange, yearRange, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	banks, err := s.bankRepo.ListBanksByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks for dashboard")
		return nil, err
	}

	monthRows, err := s.reportingRepo.GetBankMonthRows(ctx, userID, monthRange.From, monthRange.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly sums for dashboard")
		return nil, err
	}
	ccRows, err := s.reportingRepo.GetBankCostCenterRows(ctx, userID, yearRange.From, yearRange.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost center sums for dashboard")
		return nil, err
	}

	// Every bank gets a month entry, zero-filled when it had no activity.
	sumsByBank := map[string]domain.BankMonthRow{}
	for _, row := range monthRows {
		sumsByBank[row.BankID] = row
	}

	totalBalance := decimal.Zero
	monthlyData := make([]domain.BankMonthlyData, len(banks))
	for i, bank := range banks {
		totalBalance = totalBalance.Add(bank.Balance)
		summary := domain.MonthlySummary{Month: month, Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}
		if row, ok := sumsByBank[bank.BankID]; ok {
			summary.Income = row.Income
			summary.Expense = row.Expense
			summary.Net = row.Income.Sub(row.Expense)
		}
		monthlyData[i] = domain.BankMonthlyData{
			BankID:      bank.BankID,
			BankName:    bank.BankName,
			AccountName: bank.AccountName,
			MonthlyData: []domain.MonthlySummary{summary},
		}
	}

	costCenterData, totalByCenter := groupCostCenterRows(ccRows)

	return &dto.DashboardResponse{
		Month:          month,
		TotalBalance:   totalBalance,
		Banks:          dto.ToListBankResponse(banks),
		MonthlyData:    monthlyData,
		CostCenterData: costCenterData,
		TotalByCenter:  totalByCenter,
	}, nil
}

// groupCostCenterRows buckets flat rows per bank and builds the overall
// per-center totals across banks.
func groupCostCenterRows(rows []domain.BankCostCenterRow) ([]domain.BankCostCenterData, []domain.CostCenterSummary) {
	perBank := []domain.BankCostCenterData{}
	bankIndex := map[string]int{}

	totals := map[string]*domain.CostCenterSummary{}
	totalOrder := []string{}

	for _, row := range rows {
		idx, ok := bankIndex[row.BankID]
		if !ok {
			perBank = append(perBank, domain.BankCostCenterData{BankID: row.BankID, BankName: row.BankName})
			idx = len(perBank) - 1
			bankIndex[row.BankID] = idx
		}
		perBank[idx].CostCenterData = append(perBank[idx].CostCenterData, domain.CostCenterSummary{
			Name:    row.CostCenterName,
			Income:  row.Income,
			Expense: row.Expense,
		})

		total, ok := totals[row.CostCenterName]
		if !ok {
			total = &domain.CostCenterSummary{Name: row.CostCenterName, Income: decimal.Zero, Expense: decimal.Zero}
			totals[row.CostCenterName] = total
			totalOrder = append(totalOrder, row.CostCenterName)
		}
		total.Income = total.Income.Add(row.Income)
		total.Expense = total.Expense.Add(row.Expense)
	}

	totalByCenter := make([]domain.CostCenterSummary, len(totalOrder))
	for i, name := range totalOrder {
		totalByCenter[i] = *totals[name]
	}
	return perBank, totalByCenter
}

// GetBankDetailData builds the per-bank drill-down for a month: the bank's
// balance series across the year, its annual cost center sums, and the
// month's transactions with summary stats.
func (s *ReportingService) GetBankDetailData(ctx context.Context, userID string, bankID string, month string) (*dto.BankDetailResponse, error) {
	month, monthRange, yearRange, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	bank, err := s.bankRepo.FindBankByID(ctx, userID, bankID)
	if err != nil {
		return nil, err
	}

	yearRows, err := s.reportingRepo.GetBankMonthRows(ctx, userID, yearRange.From, yearRange.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load yearly sums for bank detail")
		return nil, err
	}
	monthlyData := []domain.MonthlySummary{}
	for _, row := range yearRows {
		if row.BankID != bankID {
			continue
		}
		monthlyData = append(monthlyData, domain.MonthlySummary{
			Month:   row.Month,
			Income:  row.Income,
			Expense: row.Expense,
			Net:     row.Income.Sub(row.Expense),
		})
	}

	ccRows, err := s.reportingRepo.GetBankCostCenterRows(ctx, userID, yearRange.From, yearRange.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost center sums for bank detail")
		return nil, err
	}
	costCenterData := []domain.CostCenterSummary{}
	for _, row := range ccRows {
		if row.BankID != bankID {
			continue
		}
		costCenterData = append(costCenterData, domain.CostCenterSummary{
			Name:    row.CostCenterName,
			Income:  row.Income,
			Expense: row.Expense,
		})
	}

	txns, err := s.billingRepo.ListAllTransactions(ctx, userID, portsrepo.TransactionQuery{
		BankID:   bankID,
		DateFrom: &monthRange.From,
		DateTo:   &monthRange.To,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly transactions for bank detail")
		return nil, err
	}

	stats, err := s.reportingRepo.GetBankMonthlyStats(ctx, userID, bankID, monthRange.From, monthRange.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly stats for bank detail")
		return nil, err
	}

	return &dto.BankDetailResponse{
		Bank:           dto.ToBankResponse(bank),
		Month:          month,
		MonthlyData:    monthlyData,
		CostCenterData: costCenterData,
		Transactions:   dto.ToTransactionResponses(txns),
		Stats:          *stats,
	}, nil
}
