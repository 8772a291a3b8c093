package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type SQLiteReportingRepository struct {
	BaseRepository
}

// newSQLiteReportingRepository creates a new repository for read-only
// dashboard aggregation queries.
func newSQLiteReportingRepository(db *sql.DB) portsrepo.ReportingRepository {
	return &SQLiteReportingRepository{BaseRepository{DB: db}}
}

var _ portsrepo.ReportingRepository = (*SQLiteReportingRepository)(nil)

// GetBankMonthRows retrieves per-(bank, month) income/expense sums.
func (r *SQLiteReportingRepository) GetBankMonthRows(ctx context.Context, userID string, from, to time.Time) ([]domain.BankMonthRow, error) {
	query := `
		SELECT t.bank_id, t.bank_name, t.account_name, strftime('%Y-%m', t.date) AS month,
		       COALESCE(SUM(CASE WHEN t.state = 'Income' THEN CAST(t.amount AS REAL) ELSE 0 END), 0) AS income,
		       COALESCE(SUM(CASE WHEN t.state = 'Expense' THEN CAST(t.amount AS REAL) ELSE 0 END), 0) AS expense
		FROM transactions t
		JOIN banks bk ON bk.bank_id = t.bank_id
		WHERE bk.user_id = ? AND t.date >= ? AND t.date < ?
		GROUP BY t.bank_id, month
		ORDER BY t.bank_name, t.account_name, month;
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank month rows for user %s: %w", userID, err)
	}
	defer rows.Close()

	result := []domain.BankMonthRow{}
	for rows.Next() {
		var row domain.BankMonthRow
		var income, expense float64
		if err := rows.Scan(&row.BankID, &row.BankName, &row.AccountName, &row.Month, &income, &expense); err != nil {
			return nil, fmt.Errorf("failed to scan bank month row for user %s: %w", userID, err)
		}
		row.Income = decimal.NewFromFloat(income)
		row.Expense = decimal.NewFromFloat(expense)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank month rows for user %s: %w", userID, err)
	}
	return result, nil
}

// GetBankCostCenterRows retrieves per-(bank, cost center) income/expense sums.
func (r *SQLiteReportingRepository) GetBankCostCenterRows(ctx context.Context, userID string, from, to time.Time) ([]domain.BankCostCenterRow, error) {
	query := `
		SELECT t.bank_id, t.bank_name,
		       CASE WHEN t.cost_center_name = '' THEN 'Uncategorized' ELSE t.cost_center_name END AS center,
		       COALESCE(SUM(CASE WHEN t.state = 'Income' THEN CAST(t.amount AS REAL) ELSE 0 END), 0) AS income,
		       COALESCE(SUM(CASE WHEN t.state = 'Expense' THEN CAST(t.amount AS REAL) ELSE 0 END), 0) AS expense
		FROM transactions t
		JOIN banks bk ON bk.bank_id = t.bank_id
		WHERE bk.user_id = ? AND t.date >= ? AND t.date < ?
		GROUP BY t.bank_id, center
		ORDER BY t.bank_name, center;
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost center rows for user %s: %w", userID, err)
	}
	defer rows.Close()

	result := []domain.BankCostCenterRow{}
	for rows.Next() {
		var row domain.BankCostCenterRow
		var income, expense float64
		if err := rows.Scan(&row.BankID, &row.BankName, &row.CostCenterName, &income, &expense); err != nil {
			return nil, fmt.Errorf("failed to scan cost center row for user %s: %w", userID, err)
		}
		row.Income = decimal.NewFromFloat(income)
		row.Expense = decimal.NewFromFloat(expense)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost center rows for user %s: %w", userID, err)
	}
	return result, nil
}

// GetBankMonthlyStats summarizes one bank's activity in the given period.
func (r *SQLiteReportingRepository) GetBankMonthlyStats(ctx context.Context, userID string, bankID string, from, to time.Time) (*domain.BankMonthlyStats, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN t.state = 'Income' THEN CAST(t.amount AS REAL) ELSE 0 END), 0) AS income,
		       COALESCE(SUM(CASE WHEN t.state = 'Expense' THEN CAST(t.amount AS REAL) ELSE 0 END), 0) AS expense,
		       COUNT(*) AS txn_count
		FROM transactions t
		JOIN banks bk ON bk.bank_id = t.bank_id
		WHERE bk.user_id = ? AND t.bank_id = ? AND t.date >= ? AND t.date < ?;
	`
	var income, expense float64
	var count int
	err := r.DB.QueryRowContext(ctx, query, userID, bankID, from, to).Scan(&income, &expense, &count)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly stats for bank %s: %w", bankID, err)
	}

	stats := &domain.BankMonthlyStats{
		TotalIncome:      decimal.NewFromFloat(income),
		TotalExpense:     decimal.NewFromFloat(expense),
		TransactionCount: count,
	}
	stats.NetBalance = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats, nil
}
