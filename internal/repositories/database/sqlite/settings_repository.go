package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
)

type SQLiteSettingsRepository struct {
	BaseRepository
}

// newSQLiteSettingsRepository creates a new repository for the per-user
// key/value settings store.
func newSQLiteSettingsRepository(db *sql.DB) portsrepo.SettingsRepository {
	return &SQLiteSettingsRepository{BaseRepository{DB: db}}
}

var _ portsrepo.SettingsRepository = (*SQLiteSettingsRepository)(nil)

// GetSetting retrieves a stored value.
func (r *SQLiteSettingsRepository) GetSetting(ctx context.Context, userID string, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM app_settings WHERE user_id = ? AND key = ?;`, userID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a value, replacing any previous one.
func (r *SQLiteSettingsRepository) SetSetting(ctx context.Context, userID string, key string, value string) error {
	query := `
		INSERT INTO app_settings (user_id, key, value)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value;
	`
	if _, err := r.DB.ExecContext(ctx, query, userID, key, value); err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

// DeleteSetting removes a stored key.
func (r *SQLiteSettingsRepository) DeleteSetting(ctx context.Context, userID string, key string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM app_settings WHERE user_id = ? AND key = ?;`, userID, key)
	if err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for setting %q: %w", key, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListSettings retrieves all of a user's stored pairs.
func (r *SQLiteSettingsRepository) ListSettings(ctx context.Context, userID string) (map[string]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT key, value FROM app_settings WHERE user_id = ?;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings for user %s: %w", userID, err)
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting row for user %s: %w", userID, err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating setting rows for user %s: %w", userID, err)
	}
	return settings, nil
}
