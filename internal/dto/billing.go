package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddBillRequest defines the data needed to record a new bill.
// Price and fee are non-negative magnitudes; state carries the sign.
type AddBillRequest struct {
	Date         string          `json:"date" binding:"required,dateonly"` // YYYY-MM-DD
	BankID       string          `json:"bankID" binding:"required"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Fee          decimal.Decimal `json:"fee"`
	State        string          `json:"state" binding:"required,oneof=Income Expense"`
	CostCenterID *string         `json:"costCenterID"`
}

// TransactionFilters defines the query surface shared by list, statistics
// and export operations. DateRange is a relative token and wins over the
// explicit bounds when both are set.
type TransactionFilters struct {
	Search        string           `form:"search" json:"search"`
	BankID        string           `form:"bank" json:"bank"`
	CostCenterID  string           `form:"costCenter" json:"costCenter"`
	State         string           `form:"state" json:"state" binding:"omitempty,oneof=Income Expense"`
	DateRange     string           `form:"dateRange" json:"dateRange" binding:"omitempty,oneof=today week month quarter year"`
	StartDate     string           `form:"startDate" json:"startDate" binding:"omitempty,dateonly"`
	EndDate       string           `form:"endDate" json:"endDate" binding:"omitempty,dateonly"` // inclusive
	MinAmount     *decimal.Decimal `form:"minAmount" json:"minAmount"`
	MaxAmount     *decimal.Decimal `form:"maxAmount" json:"maxAmount"`
	SortField     string           `form:"sort_field" json:"sort_field"`
	SortDirection string           `form:"sort_direction" json:"sort_direction" binding:"omitempty,oneof=asc desc"`
	Page          int              `form:"page,default=1" json:"page"`
	Limit         int              `form:"limit,default=20" json:"limit"`
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	BankID         string          `json:"bankID"`
	BillingID      *string         `json:"billingID,omitempty"`
	CostCenterID   *string         `json:"costCenterID,omitempty"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Fee            decimal.Decimal `json:"fee"`
	State          string          `json:"state"`
	BankName       string          `json:"bankName"`
	AccountName    string          `json:"accountName"`
	CostCenterName string          `json:"costCenterName"`
	BeforeBalance  decimal.Decimal `json:"beforeBalance"`
	AfterBalance   decimal.Decimal `json:"afterBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		BankID:         txn.BankID,
		BillingID:      txn.BillingID,
		CostCenterID:   txn.CostCenterID,
		Date:           txn.Date,
		Amount:         txn.Amount,
		Fee:            txn.Fee,
		State:          string(txn.State),
		BankName:       txn.BankName,
		AccountName:    txn.AccountName,
		CostCenterName: txn.CostCenterName,
		BeforeBalance:  txn.BeforeBalance,
		AfterBalance:   txn.AfterBalance,
		CreatedAt:      txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// Pagination carries offset-pagination metadata for list responses.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// ListTransactionsResponse wraps a transaction page with its metadata.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// StatisticsResponse mirrors domain.TransactionStatistics for the API.
type StatisticsResponse struct {
	TotalIncome       decimal.Decimal         `json:"total_income"`
	TotalExpenses     decimal.Decimal         `json:"total_expenses"`
	TotalFees         decimal.Decimal         `json:"total_fees"`
	NetAmount         decimal.Decimal         `json:"net_amount"`
	IncomeCount       int                     `json:"income_count"`
	ExpenseCount      int                     `json:"expense_count"`
	TotalTransactions int                     `json:"total_transactions"`
	TopCategories     []domain.CategoryAmount `json:"top_categories"`
}

// ToStatisticsResponse converts the domain aggregate to its DTO.
func ToStatisticsResponse(s *domain.TransactionStatistics) StatisticsResponse {
	return StatisticsResponse{
		TotalIncome:       s.TotalIncome,
		TotalExpenses:     s.TotalExpenses,
		TotalFees:         s.TotalFees,
		NetAmount:         s.NetAmount,
		IncomeCount:       s.IncomeCount,
		ExpenseCount:      s.ExpenseCount,
		TotalTransactions: s.TotalTransactions,
		TopCategories:     s.TopCategories,
	}
}

// ImportRow is one parsed row of an import file, 1-based RowNum included
// so errors can point back at the source line. Rows that failed to parse
// carry the reason in Err and are counted as failures by the import,
// without aborting the rest of the file.
type ImportRow struct {
	RowNum       int
	Date         string
	BankName     string
	AccountName  string
	Amount       decimal.Decimal
	Fee          decimal.Decimal
	State        string
	CostCenterID *string
	Err          string
}

// ImportResult reports a partial-success import outcome.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// BillResponse defines the data returned for a bill record.
type BillResponse struct {
	BillID         string          `json:"billID"`
	BankID         string          `json:"bankID"`
	CostCenterID   *string         `json:"costCenterID,omitempty"`
	Date           time.Time       `json:"date"`
	State          string          `json:"state"`
	BankName       string          `json:"bankName"`
	AccountName    string          `json:"accountName"`
	CostCenterName string          `json:"costCenterName"`
	Price          decimal.Decimal `json:"price"`
	Fee            decimal.Decimal `json:"fee"`
	BeforeBalance  decimal.Decimal `json:"beforeBalance"`
	AfterBalance   decimal.Decimal `json:"afterBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToBillResponse converts a domain.Bill to its DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:         b.BillID,
		BankID:         b.BankID,
		CostCenterID:   b.CostCenterID,
		Date:           b.Date,
		State:          string(b.State),
		BankName:       b.BankName,
		AccountName:    b.AccountName,
		CostCenterName: b.CostCenterName,
		Price:          b.Price,
		Fee:            b.Fee,
		BeforeBalance:  b.BeforeBalance,
		AfterBalance:   b.AfterBalance,
		CreatedAt:      b.CreatedAt,
	}
}

// ToBillResponses converts a slice of domain.Bill to DTOs.
func ToBillResponses(bills []domain.Bill) []BillResponse {
	responses := make([]BillResponse, len(bills))
	for i, b := range bills {
		responses[i] = ToBillResponse(&b)
	}
	return responses
}

// BillingPageResponse bundles everything the billing screen needs in one
// round trip: recent records plus the dropdown options.
type BillingPageResponse struct {
	Bills              []BillResponse        `json:"bills"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
	Banks              []BankOption          `json:"banks"`
	CostCenters        []CostCenterResponse  `json:"costCenters"`
}

// BankOption is the dropdown shape for bank selection.
type BankOption struct {
	BankID      string `json:"bankID"`
	DisplayName string `json:"displayName"`
}

// ExportRequest selects the rows and format for a file export.
type ExportRequest struct {
	Filters TransactionFilters `json:"filters"`
	Format  string             `json:"format" binding:"required,oneof=csv excel"`
}

// ExportResponse reports the written export file.
type ExportResponse struct {
	FilePath string `json:"filePath"`
	RowCount int    `json:"rowCount"`
}
