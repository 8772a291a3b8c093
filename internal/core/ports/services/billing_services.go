package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

// BillingWriterSvc defines the balance-consistent write operations
type BillingWriterSvc interface {
	// AddBill records a bill and its linked transaction, applying the
	// snapshot pair to the bank's balance atomically.
	AddBill(ctx context.Context, userID string, req dto.AddBillRequest) (*domain.Bill, error)

	// DeleteBill removes a bill and its linked transaction and reverses the
	// balance delta.
	DeleteBill(ctx context.Context, userID string, billID string) error

	// DeleteTransaction removes a transaction and restores the bank's
	// balance to the recorded before_balance.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error

	// ImportTransactions applies parsed rows one at a time; failed rows are
	// reported without aborting the rest.
	ImportTransactions(ctx context.Context, userID string, rows []dto.ImportRow) (*dto.ImportResult, error)
}

// BillingReaderSvc defines the query operations over recorded activity
type BillingReaderSvc interface {
	// ListTransactions retrieves a filtered, sorted, paginated page.
	ListTransactions(ctx context.Context, userID string, filters dto.TransactionFilters) (*dto.ListTransactionsResponse, error)

	// GetStatistics reduces the filtered set to sums, counts and top categories.
	GetStatistics(ctx context.Context, userID string, filters dto.TransactionFilters) (*domain.TransactionStatistics, error)

	// GetBillingPageData bundles recent records and dropdown options.
	GetBillingPageData(ctx context.Context, userID string) (*dto.BillingPageResponse, error)
}

// BillingExportSvc defines file export of filtered transactions
type BillingExportSvc interface {
	// ExportTransactions writes the filtered set to a csv or excel file and
	// returns its path.
	ExportTransactions(ctx context.Context, userID string, req dto.ExportRequest) (*dto.ExportResponse, error)
}

// BillingSvcFacade combines all billing-related service interfaces
type BillingSvcFacade interface {
	BillingWriterSvc
	BillingReaderSvc
	BillingExportSvc
}
