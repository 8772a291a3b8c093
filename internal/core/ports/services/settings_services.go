package services

import "context"

// SettingsSvcFacade defines operations on the per-user key/value store
type SettingsSvcFacade interface {
	// GetSetting retrieves a stored value.
	GetSetting(ctx context.Context, userID string, key string) (string, error)

	// SetSetting stores a value, replacing any previous one.
	SetSetting(ctx context.Context, userID string, key string, value string) error

	// DeleteSetting removes a stored key.
	DeleteSetting(ctx context.Context, userID string, key string) error

	// ListSettings retrieves all of a user's stored pairs.
	ListSettings(ctx context.Context, userID string) (map[string]string, error)
}
