package repositories

import "context"

// SettingsRepository defines operations on the per-user key/value store
type SettingsRepository interface {
	// GetSetting retrieves a stored value. Missing keys report ErrNotFound.
	GetSetting(ctx context.Context, userID string, key string) (string, error)

	// SetSetting stores a value, replacing any previous one.
	SetSetting(ctx context.Context, userID string, key string, value string) error

	// DeleteSetting removes a stored key.
	DeleteSetting(ctx context.Context, userID string, key string) error

	// ListSettings retrieves all of a user's stored pairs.
	ListSettings(ctx context.Context, userID string) (map[string]string, error)
}
