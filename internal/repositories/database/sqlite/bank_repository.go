package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const bankColumns = `bank_id, user_id, bank_name, account_name, account_number, currency_code, balance, role, color, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteBankRepository struct {
	BaseRepository
}

// newSQLiteBankRepository creates a new repository for bank account data.
func newSQLiteBankRepository(db *sql.DB) portsrepo.BankRepositoryWithTx {
	return &SQLiteBankRepository{BaseRepository{DB: db}}
}

var _ portsrepo.BankRepositoryWithTx = (*SQLiteBankRepository)(nil)

func scanBank(row interface{ Scan(...any) error }) (*domain.Bank, error) {
	var m models.Bank
	err := row.Scan(
		&m.BankID,
		&m.UserID,
		&m.BankName,
		&m.AccountName,
		&m.AccountNumber,
		&m.CurrencyCode,
		&m.Balance,
		&m.Role,
		&m.Color,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	bank := mapping.ToDomainBank(m)
	return &bank, nil
}

// SaveBank inserts a new bank.
func (r *SQLiteBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)

	query := `
		INSERT INTO banks (` + bankColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.BankID,
		m.UserID,
		m.BankName,
		m.AccountName,
		m.AccountNumber,
		m.CurrencyCode,
		m.Balance,
		m.Role,
		m.Color,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank %q / account %q already exists", apperrors.ErrDuplicate, m.BankName, m.AccountName)
		}
		return fmt.Errorf("failed to save bank %s: %w", m.BankID, err)
	}
	return nil
}

// FindBankByID retrieves a bank owned by the given user.
func (r *SQLiteBankRepository) FindBankByID(ctx context.Context, userID string, bankID string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE bank_id = ? AND user_id = ?;`

	bank, err := scanBank(r.DB.QueryRowContext(ctx, query, bankID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank by ID %s: %w", bankID, err)
	}
	return bank, nil
}

// FindBankByNames retrieves a user's bank by its (bank name, account name) pair.
func (r *SQLiteBankRepository) FindBankByNames(ctx context.Context, userID string, bankName string, accountName string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE user_id = ? AND bank_name = ? AND account_name = ?;`

	bank, err := scanBank(r.DB.QueryRowContext(ctx, query, userID, bankName, accountName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank by names %q/%q: %w", bankName, accountName, err)
	}
	return bank, nil
}

// ListBanksByUser retrieves all banks owned by the given user.
func (r *SQLiteBankRepository) ListBanksByUser(ctx context.Context, userID string) ([]domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE user_id = ? ORDER BY bank_name, account_name;`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks for user %s: %w", userID, err)
	}
	defer rows.Close()

	banks := []domain.Bank{}
	for rows.Next() {
		bank, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank row for user %s: %w", userID, err)
		}
		banks = append(banks, *bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank rows for user %s: %w", userID, err)
	}
	return banks, nil
}

// UpdateBank updates an existing bank's details.
func (r *SQLiteBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)

	query := `
		UPDATE banks
		SET bank_name = ?, account_name = ?, account_number = ?, currency_code = ?, role = ?, color = ?, last_updated_at = ?, last_updated_by = ?
		WHERE bank_id = ? AND user_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.BankName,
		m.AccountName,
		m.AccountNumber,
		m.CurrencyCode,
		m.Role,
		m.Color,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.BankID,
		m.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank %q / account %q already exists", apperrors.ErrDuplicate, m.BankName, m.AccountName)
		}
		return fmt.Errorf("failed to update bank %s: %w", m.BankID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for bank %s: %w", m.BankID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBank removes a bank; transactions and bills cascade via FK.
func (r *SQLiteBankRepository) DeleteBank(ctx context.Context, userID string, bankID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM banks WHERE bank_id = ? AND user_id = ?;`, bankID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete bank %s: %w", bankID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for bank %s: %w", bankID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBankByIDForUpdate selects a user's bank within a transaction.
// SQLite serializes writers, so no explicit row lock is taken.
func (r *SQLiteBankRepository) FindBankByIDForUpdate(ctx context.Context, tx *sql.Tx, userID string, bankID string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE bank_id = ? AND user_id = ?;`

	bank, err := scanBank(tx.QueryRowContext(ctx, query, bankID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank %s for update: %w", bankID, err)
	}
	return bank, nil
}

// UpdateBankBalanceInTx sets a bank's balance within a given transaction.
func (r *SQLiteBankRepository) UpdateBankBalanceInTx(ctx context.Context, tx *sql.Tx, bankID string, newBalance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE banks
		SET balance = ?, last_updated_at = ?, last_updated_by = ?
		WHERE bank_id = ?;
	`
	res, err := tx.ExecContext(ctx, query, newBalance, now, userID, bankID)
	if err != nil {
		return fmt.Errorf("failed to update balance for bank %s: %w", bankID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for bank %s: %w", bankID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: bank %s not found during balance update", apperrors.ErrNotFound, bankID)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
