package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const transactionColumns = `t.transaction_id, t.bank_id, t.billing_id, t.cost_center_id, t.date, t.amount, t.fee, t.state, t.bank_name, t.account_name, t.cost_center_name, t.before_balance, t.after_balance, t.created_at, t.created_by`

const billColumns = `b.billing_id, b.bank_id, b.cost_center_id, b.date, b.state, b.bank_name, b.account_name, b.cost_center_name, b.price, b.fee, b.before_balance, b.after_balance, b.created_at, b.created_by`

// sortColumns is the allow-list for user-supplied sort keys.
var sortColumns = map[string]string{
	"date":          "t.date",
	"amount":        "t.amount",
	"fee":           "t.fee",
	"state":         "t.state",
	"bank_name":     "t.bank_name",
	"after_balance": "t.after_balance",
	"created_at":    "t.created_at",
}

type SQLiteBillingRepository struct {
	BaseRepository
	bankRepo portsrepo.BankTransactionSupport
}

// newSQLiteBillingRepository creates a new repository for bill and
// transaction data. Balance updates go through the bank repository so the
// two stay consistent inside one store transaction.
func newSQLiteBillingRepository(db *sql.DB, bankRepo portsrepo.BankTransactionSupport) portsrepo.BillingRepositoryWithTx {
	return &SQLiteBillingRepository{BaseRepository: BaseRepository{DB: db}, bankRepo: bankRepo}
}

var _ portsrepo.BillingRepositoryWithTx = (*SQLiteBillingRepository)(nil)

func scanTransaction(row interface{ Scan(...any) error }) (*domain.Transaction, error) {
	var m models.Transaction
	var billingID, costCenterID sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.BankID,
		&billingID,
		&costCenterID,
		&m.Date,
		&m.Amount,
		&m.Fee,
		&m.State,
		&m.BankName,
		&m.AccountName,
		&m.CostCenterName,
		&m.BeforeBalance,
		&m.AfterBalance,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if billingID.Valid {
		m.BillingID = &billingID.String
	}
	if costCenterID.Valid {
		m.CostCenterID = &costCenterID.String
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func scanBill(row interface{ Scan(...any) error }) (*domain.Bill, error) {
	var m models.Bill
	var costCenterID sql.NullString
	err := row.Scan(
		&m.BillID,
		&m.BankID,
		&costCenterID,
		&m.Date,
		&m.State,
		&m.BankName,
		&m.AccountName,
		&m.CostCenterName,
		&m.Price,
		&m.Fee,
		&m.BeforeBalance,
		&m.AfterBalance,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if costCenterID.Valid {
		m.CostCenterID = &costCenterID.String
	}
	bill := mapping.ToDomainBill(m)
	return &bill, nil
}

func nullable(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (r *SQLiteBillingRepository) insertBillInTx(ctx context.Context, tx *sql.Tx, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		INSERT INTO billing (billing_id, bank_id, cost_center_id, date, state, bank_name, account_name, cost_center_name, price, fee, before_balance, after_balance, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := tx.ExecContext(ctx, query,
		m.BillID,
		m.BankID,
		nullable(m.CostCenterID),
		m.Date,
		m.State,
		m.BankName,
		m.AccountName,
		m.CostCenterName,
		m.Price,
		m.Fee,
		m.BeforeBalance,
		m.AfterBalance,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill %s: %w", m.BillID, err)
	}
	return nil
}

func (r *SQLiteBillingRepository) insertTransactionInTx(ctx context.Context, tx *sql.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, bank_id, billing_id, cost_center_id, date, amount, fee, state, bank_name, account_name, cost_center_name, before_balance, after_balance, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := tx.ExecContext(ctx, query,
		m.TransactionID,
		m.BankID,
		nullable(m.BillingID),
		nullable(m.CostCenterID),
		m.Date,
		m.Amount,
		m.Fee,
		m.State,
		m.BankName,
		m.AccountName,
		m.CostCenterName,
		m.BeforeBalance,
		m.AfterBalance,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveBillWithTransaction persists a bill, its linked transaction and the
// bank's new balance atomically.
func (r *SQLiteBillingRepository) SaveBillWithTransaction(ctx context.Context, bill domain.Bill, txn domain.Transaction, newBalance decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertBillInTx(ctx, tx, bill); err != nil {
		return err
	}
	if err := r.insertTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}
	if err := r.bankRepo.UpdateBankBalanceInTx(ctx, tx, bill.BankID, newBalance, bill.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveTransaction persists a standalone transaction together with the
// bank's new balance.
func (r *SQLiteBillingRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}
	if err := r.bankRepo.UpdateBankBalanceInTx(ctx, tx, txn.BankID, newBalance, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteBillWithTransaction removes a bill and its linked transaction and
// sets the bank's balance back atomically.
func (r *SQLiteBillingRepository) DeleteBillWithTransaction(ctx context.Context, bill domain.Bill, restoredBalance decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE billing_id = ?;`, bill.BillID); err != nil {
		return fmt.Errorf("failed to delete transaction for bill %s: %w", bill.BillID, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM billing WHERE billing_id = ?;`, bill.BillID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", bill.BillID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for bill %s: %w", bill.BillID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	if err := r.bankRepo.UpdateBankBalanceInTx(ctx, tx, bill.BankID, restoredBalance, bill.CreatedBy, bill.CreatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction (and its bill row, if linked) and
// sets the bank's balance back atomically.
func (r *SQLiteBillingRepository) DeleteTransaction(ctx context.Context, txn domain.Transaction, restoredBalance decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	res, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?;`, txn.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", txn.TransactionID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for transaction %s: %w", txn.TransactionID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	if txn.BillingID != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM billing WHERE billing_id = ?;`, *txn.BillingID); err != nil {
			return fmt.Errorf("failed to delete bill %s for transaction %s: %w", *txn.BillingID, txn.TransactionID, err)
		}
	}
	if err := r.bankRepo.UpdateBankBalanceInTx(ctx, tx, txn.BankID, restoredBalance, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindBillByID retrieves a bill belonging to the given user.
func (r *SQLiteBillingRepository) FindBillByID(ctx context.Context, userID string, billID string) (*domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM billing b
		JOIN banks bk ON bk.bank_id = b.bank_id
		WHERE b.billing_id = ? AND bk.user_id = ?;
	`
	bill, err := scanBill(r.DB.QueryRowContext(ctx, query, billID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}
	return bill, nil
}

// ListRecentBills retrieves the user's most recent bills, newest first.
func (r *SQLiteBillingRepository) ListRecentBills(ctx context.Context, userID string, limit int) ([]domain.Bill, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + billColumns + `
		FROM billing b
		JOIN banks bk ON bk.bank_id = b.bank_id
		WHERE bk.user_id = ?
		ORDER BY b.date DESC, b.created_at DESC
		LIMIT ?;
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent bills for user %s: %w", userID, err)
	}
	defer rows.Close()

	bills := []domain.Bill{}
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row for user %s: %w", userID, err)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows for user %s: %w", userID, err)
	}
	return bills, nil
}

// FindTransactionByID retrieves a transaction belonging to the given user.
func (r *SQLiteBillingRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN banks bk ON bk.bank_id = t.bank_id
		WHERE t.transaction_id = ? AND bk.user_id = ?;
	`
	txn, err := scanTransaction(r.DB.QueryRowContext(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// buildTransactionFilter translates a TransactionQuery into WHERE clauses.
func buildTransactionFilter(userID string, q portsrepo.TransactionQuery) (string, []any) {
	clauses := []string{"bk.user_id = ?"}
	args := []any{userID}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		clauses = append(clauses, "(t.bank_name LIKE ? OR t.account_name LIKE ? OR t.cost_center_name LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if q.BankID != "" {
		clauses = append(clauses, "t.bank_id = ?")
		args = append(args, q.BankID)
	}
	if q.CostCenterID != "" {
		clauses = append(clauses, "t.cost_center_id = ?")
		args = append(args, q.CostCenterID)
	}
	if q.State != "" {
		clauses = append(clauses, "t.state = ?")
		args = append(args, q.State)
	}
	if q.DateFrom != nil {
		clauses = append(clauses, "t.date >= ?")
		args = append(args, *q.DateFrom)
	}
	if q.DateTo != nil {
		clauses = append(clauses, "t.date < ?")
		args = append(args, *q.DateTo)
	}
	if q.MinAmount != nil {
		clauses = append(clauses, "CAST(t.amount AS REAL) >= ?")
		args = append(args, q.MinAmount.InexactFloat64())
	}
	if q.MaxAmount != nil {
		clauses = append(clauses, "CAST(t.amount AS REAL) <= ?")
		args = append(args, q.MaxAmount.InexactFloat64())
	}
	return strings.Join(clauses, " AND "), args
}

// orderClause resolves the sort key against the allow-list, falling back to
// date DESC, created_at DESC.
func orderClause(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		return "ORDER BY t.date DESC, t.created_at DESC"
	}
	dir := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		dir = "DESC"
	}
	if col == "t.amount" || col == "t.fee" || col == "t.after_balance" {
		col = "CAST(" + col + " AS REAL)"
	}
	return fmt.Sprintf("ORDER BY %s %s, t.created_at DESC", col, dir)
}

// ListTransactions retrieves a filtered page and the total matching count.
func (r *SQLiteBillingRepository) ListTransactions(ctx context.Context, userID string, q portsrepo.TransactionQuery) ([]domain.Transaction, int, error) {
	where, args := buildTransactionFilter(userID, q)

	countQuery := `
		SELECT COUNT(*)
		FROM transactions t
		JOIN banks bk ON bk.bank_id = t.bank_id
		WHERE ` + where + `;
	`
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions for user %s: %w", userID, err)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN banks bk ON bk.bank_id = t.bank_id
		WHERE ` + where + `
		` + orderClause(q.SortBy, q.SortOrder) + `
		LIMIT ? OFFSET ?;
	`
	rows, err := r.DB.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, err)
	}
	return txns, total, nil
}

// ListAllTransactions retrieves every transaction matching the filters.
func (r *SQLiteBillingRepository) ListAllTransactions(ctx context.Context, userID string, q portsrepo.TransactionQuery) ([]domain.Transaction, error) {
	where, args := buildTransactionFilter(userID, q)

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN banks bk ON bk.bank_id = t.bank_id
		WHERE ` + where + `
		` + orderClause(q.SortBy, q.SortOrder) + `;
	`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query all transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, err)
	}
	return txns, nil
}

// ListRecentTransactions retrieves the user's most recent transactions.
func (r *SQLiteBillingRepository) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN banks bk ON bk.bank_id = t.bank_id
		WHERE bk.user_id = ?
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT ?;
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, err)
	}
	return txns, nil
}
