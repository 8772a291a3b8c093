package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/audit"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/export"
	"github.com/SscSPs/personal_finance_app/internal/utils/daterange"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// BillingService records bills and transactions against bank balances,
// keeping every write balance-consistent, and answers the filtered
// query/statistics/export operations.
type BillingService struct {
	BaseService
	billingRepo    portsrepo.BillingRepositoryWithTx
	bankRepo       portsrepo.BankRepositoryWithTx
	costCenterRepo portsrepo.CostCenterRepositoryFacade
	autoSaver      *audit.MonthlyAutoSaver
	exportDir      string
	now            func() time.Time
}

func NewBillingService(
	billingRepo portsrepo.BillingRepositoryWithTx,
	bankRepo portsrepo.BankRepositoryWithTx,
	costCenterRepo portsrepo.CostCenterRepositoryFacade,
	autoSaver *audit.MonthlyAutoSaver,
	exportDir string,
) *BillingService {
	return &BillingService{
		billingRepo:    billingRepo,
		bankRepo:       bankRepo,
		costCenterRepo: costCenterRepo,
		autoSaver:      autoSaver,
		exportDir:      exportDir,
		now:            time.Now,
	}
}

var _ portssvc.BillingSvcFacade = (*BillingService)(nil)

// AddBill records a bill and its linked transaction, applying the snapshot
// pair to the bank's balance atomically.
func (s *BillingService) AddBill(ctx context.Context, userID string, req dto.AddBillRequest) (*domain.Bill, error) {
	state := domain.TransactionState(req.State)
	if !state.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidState, req.State)
	}
	if req.Price.IsNegative() || req.Fee.IsNegative() {
		return nil, fmt.Errorf("%w: price and fee must be non-negative", apperrors.ErrValidation)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	bank, err := s.bankRepo.FindBankByID(ctx, userID, req.BankID)
	if err != nil {
		return nil, err
	}

	costCenterName := ""
	if req.CostCenterID != nil && *req.CostCenterID != "" {
		cc, err := s.costCenterRepo.FindCostCenterByID(ctx, userID, *req.CostCenterID)
		if err != nil {
			return nil, err
		}
		costCenterName = cc.Name
	}

	now := s.now()
	before := bank.Balance
	after := before.Add(state.SignedDelta(req.Price, req.Fee))

	bill := domain.Bill{
		BillID:         uuid.NewString(),
		BankID:         bank.BankID,
		CostCenterID:   req.CostCenterID,
		Date:           date,
		State:          state,
		BankName:       bank.BankName,
		AccountName:    bank.AccountName,
		CostCenterName: costCenterName,
		Price:          req.Price,
		Fee:            req.Fee,
		BeforeBalance:  before,
		AfterBalance:   after,
		CreatedAt:      now,
		CreatedBy:      userID,
	}
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		BankID:         bank.BankID,
		BillingID:      &bill.BillID,
		CostCenterID:   req.CostCenterID,
		Date:           date,
		Amount:         req.Price,
		Fee:            req.Fee,
		State:          state,
		BankName:       bank.BankName,
		AccountName:    bank.AccountName,
		CostCenterName: costCenterName,
		BeforeBalance:  before,
		AfterBalance:   after,
		CreatedAt:      now,
		CreatedBy:      userID,
	}

	if err := s.billingRepo.SaveBillWithTransaction(ctx, bill, txn, after); err != nil {
		s.LogError(ctx, err, "Failed to save bill with transaction", slog.String("bill_id", bill.BillID))
		return nil, err
	}

	// Audit trail is best-effort: a failed append never fails the request.
	if err := s.autoSaver.AppendBill(bill); err != nil {
		s.GetLogger(ctx).Warn("Failed to append bill to auto-save file", slog.String("error", err.Error()), slog.String("bill_id", bill.BillID))
	}

	s.LogInfo(ctx, "Bill recorded", slog.String("bill_id", bill.BillID), slog.String("transaction_id", txn.TransactionID))
	return &bill, nil
}

// DeleteBill removes a bill and its linked transaction and reverses the
// balance delta on the bank.
func (s *BillingService) DeleteBill(ctx context.Context, userID string, billID string) error {
	bill, err := s.billingRepo.FindBillByID(ctx, userID, billID)
	if err != nil {
		return err
	}
	bank, err := s.bankRepo.FindBankByID(ctx, userID, bill.BankID)
	if err != nil {
		return err
	}

	restored := bank.Balance.Sub(bill.State.SignedDelta(bill.Price, bill.Fee))
	if err := s.billingRepo.DeleteBillWithTransaction(ctx, *bill, restored); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete bill", slog.String("bill_id", billID))
		}
		return err
	}

	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID))
	return nil
}

// DeleteTransaction removes a transaction and sets the bank's balance back
// to the recorded before_balance. Safe under the single-writer assumption.
func (s *BillingService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	txn, err := s.billingRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.billingRepo.DeleteTransaction(ctx, *txn, txn.BeforeBalance); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// resolveQuery translates API filters into a repository query. The relative
// date-range token wins over explicit bounds when both are present.
func (s *BillingService) resolveQuery(filters dto.TransactionFilters) (portsrepo.TransactionQuery, error) {
	q := portsrepo.TransactionQuery{
		Search:       filters.Search,
		BankID:       filters.BankID,
		CostCenterID: filters.CostCenterID,
		State:        filters.State,
		MinAmount:    filters.MinAmount,
		MaxAmount:    filters.MaxAmount,
		SortBy:       filters.SortField,
		SortOrder:    filters.SortDirection,
	}

	if filters.DateRange != "" {
		rng, err := daterange.Resolve(daterange.Token(filters.DateRange), s.now())
		if err != nil {
			return q, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		q.DateFrom = &rng.From
		q.DateTo = &rng.To
	} else {
		if filters.StartDate != "" {
			from, err := time.Parse(dateLayout, filters.StartDate)
			if err != nil {
				return q, fmt.Errorf("%w: invalid startDate %q", apperrors.ErrValidation, filters.StartDate)
			}
			q.DateFrom = &from
		}
		if filters.EndDate != "" {
			to, err := time.Parse(dateLayout, filters.EndDate)
			if err != nil {
				return q, fmt.Errorf("%w: invalid endDate %q", apperrors.ErrValidation, filters.EndDate)
			}
			// Inclusive end date becomes an exclusive upper bound.
			exclusive := to.AddDate(0, 0, 1)
			q.DateTo = &exclusive
		}
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filters.Page
	if page <= 0 {
		page = 1
	}
	q.Limit = limit
	q.Offset = (page - 1) * limit
	return q, nil
}

// ListTransactions retrieves a filtered, sorted, paginated page.
func (s *BillingService) ListTransactions(ctx context.Context, userID string, filters dto.TransactionFilters) (*dto.ListTransactionsResponse, error) {
	q, err := s.resolveQuery(filters)
	if err != nil {
		return nil, err
	}

	txns, total, err := s.billingRepo.ListTransactions(ctx, userID, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}

	page := filters.Page
	if page <= 0 {
		page = 1
	}
	totalPages := (total + q.Limit - 1) / q.Limit

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		Pagination: dto.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: q.Limit,
			HasNext:      page < totalPages,
			HasPrev:      page > 1,
		},
	}, nil
}

// GetStatistics reduces the filtered set to sums, counts and the top five
// categories by summed amount.
func (s *BillingService) GetStatistics(ctx context.Context, userID string, filters dto.TransactionFilters) (*domain.TransactionStatistics, error) {
	q, err := s.resolveQuery(filters)
	if err != nil {
		return nil, err
	}

	txns, err := s.billingRepo.ListAllTransactions(ctx, userID, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for statistics")
		return nil, err
	}

	stats := &domain.TransactionStatistics{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalFees:     decimal.Zero,
	}
	categoryTotals := map[string]decimal.Decimal{}
	categoryOrder := []string{}

	for _, t := range txns {
		switch t.State {
		case domain.Income:
			stats.TotalIncome = stats.TotalIncome.Add(t.Amount)
			stats.IncomeCount++
		case domain.Expense:
			stats.TotalExpenses = stats.TotalExpenses.Add(t.Amount)
			stats.ExpenseCount++
		}
		stats.TotalFees = stats.TotalFees.Add(t.Fee)

		name := t.CostCenterName
		if name == "" {
			name = "Uncategorized"
		}
		if _, seen := categoryTotals[name]; !seen {
			categoryOrder = append(categoryOrder, name)
		}
		categoryTotals[name] = categoryTotals[name].Add(t.Amount)
	}

	stats.TotalTransactions = len(txns)
	stats.NetAmount = stats.TotalIncome.Sub(stats.TotalExpenses).Sub(stats.TotalFees)

	// Descending by amount; ties keep first-seen order.
	sort.SliceStable(categoryOrder, func(i, j int) bool {
		return categoryTotals[categoryOrder[i]].GreaterThan(categoryTotals[categoryOrder[j]])
	})
	if len(categoryOrder) > 5 {
		categoryOrder = categoryOrder[:5]
	}
	stats.TopCategories = make([]domain.CategoryAmount, len(categoryOrder))
	for i, name := range categoryOrder {
		stats.TopCategories[i] = domain.CategoryAmount{Name: name, Amount: categoryTotals[name]}
	}

	return stats, nil
}

// ImportTransactions applies parsed rows one at a time. Banks are resolved
// or lazily created per (bank name, account name); the snapshot pair uses
// the bank's balance at the moment the row is processed, so file order
// matters. Row failures are collected, not fatal.
func (s *BillingService) ImportTransactions(ctx context.Context, userID string, rows []dto.ImportRow) (*dto.ImportResult, error) {
	result := &dto.ImportResult{}

	for _, row := range rows {
		if err := s.importRow(ctx, userID, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row.RowNum, err))
			continue
		}
		result.Imported++
	}

	s.LogInfo(ctx, "Import finished", slog.Int("imported", result.Imported), slog.Int("failed", result.Failed))
	return result, nil
}

func (s *BillingService) importRow(ctx context.Context, userID string, row dto.ImportRow) error {
	if row.Err != "" {
		return fmt.Errorf("%s", row.Err)
	}
	state := domain.TransactionState(row.State)
	if !state.Valid() {
		return fmt.Errorf("invalid state %q", row.State)
	}
	if row.Amount.IsNegative() || row.Fee.IsNegative() {
		return fmt.Errorf("amount and fee must be non-negative")
	}
	date, err := time.Parse(dateLayout, row.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q", row.Date)
	}
	if row.BankName == "" || row.AccountName == "" {
		return fmt.Errorf("bank name and account name are required")
	}

	bank, err := s.resolveOrCreateBank(ctx, userID, row.BankName, row.AccountName)
	if err != nil {
		return err
	}

	now := s.now()
	before := bank.Balance
	after := before.Add(state.SignedDelta(row.Amount, row.Fee))

	costCenterName := ""
	if row.CostCenterID != nil && *row.CostCenterID != "" {
		cc, err := s.costCenterRepo.FindCostCenterByID(ctx, userID, *row.CostCenterID)
		if err != nil {
			return err
		}
		costCenterName = cc.Name
	}

	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		BankID:         bank.BankID,
		CostCenterID:   row.CostCenterID,
		Date:           date,
		Amount:         row.Amount,
		Fee:            row.Fee,
		State:          state,
		BankName:       bank.BankName,
		AccountName:    bank.AccountName,
		CostCenterName: costCenterName,
		BeforeBalance:  before,
		AfterBalance:   after,
		CreatedAt:      now,
		CreatedBy:      userID,
	}
	return s.billingRepo.SaveTransaction(ctx, txn, after)
}

func (s *BillingService) resolveOrCreateBank(ctx context.Context, userID, bankName, accountName string) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByNames(ctx, userID, bankName, accountName)
	if err == nil {
		return bank, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	created := domain.Bank{
		BankID:       uuid.NewString(),
		UserID:       userID,
		BankName:     bankName,
		AccountName:  accountName,
		CurrencyCode: "EUR",
		Balance:      decimal.Zero,
		Role:         domain.RoleChecking,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.bankRepo.SaveBank(ctx, created); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Bank created during import", slog.String("bank_id", created.BankID), slog.String("bank_name", bankName))
	return &created, nil
}

// GetBillingPageData bundles recent records and dropdown options.
func (s *BillingService) GetBillingPageData(ctx context.Context, userID string) (*dto.BillingPageResponse, error) {
	bills, err := s.billingRepo.ListRecentBills(ctx, userID, 20)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent bills")
		return nil, err
	}
	txns, err := s.billingRepo.ListRecentTransactions(ctx, userID, 10)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent transactions")
		return nil, err
	}
	banks, err := s.bankRepo.ListBanksByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, err
	}
	ccs, err := s.costCenterRepo.ListCostCenters(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cost centers")
		return nil, err
	}

	options := make([]dto.BankOption, len(banks))
	for i, b := range banks {
		options[i] = dto.BankOption{BankID: b.BankID, DisplayName: b.DisplayName()}
	}

	return &dto.BillingPageResponse{
		Bills:              dto.ToBillResponses(bills),
		RecentTransactions: dto.ToTransactionResponses(txns),
		Banks:              options,
		CostCenters:        dto.ToCostCenterResponses(ccs),
	}, nil
}

// ExportTransactions writes the filtered set to a csv or excel file in the
// export directory and returns its path.
func (s *BillingService) ExportTransactions(ctx context.Context, userID string, req dto.ExportRequest) (*dto.ExportResponse, error) {
	q, err := s.resolveQuery(req.Filters)
	if err != nil {
		return nil, err
	}

	txns, err := s.billingRepo.ListAllTransactions(ctx, userID, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for export")
		return nil, err
	}

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	ext := "csv"
	if req.Format == "excel" {
		ext = "xlsx"
	}
	path := filepath.Join(s.exportDir, fmt.Sprintf("transactions_%s.%s", s.now().Format("20060102_150405"), ext))

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	switch req.Format {
	case "excel":
		err = export.WriteTransactionsExcel(f, txns)
	default:
		err = export.WriteTransactionsCSV(f, txns)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to write export file", slog.String("path", path))
		return nil, err
	}

	s.LogInfo(ctx, "Transactions exported", slog.String("path", path), slog.Int("rows", len(txns)))
	return &dto.ExportResponse{FilePath: path, RowCount: len(txns)}, nil
}
