package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
)

// SettingsService is a thin pass-through over the key/value store.
type SettingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

func NewSettingsService(repo portsrepo.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: repo}
}

var _ portssvc.SettingsSvcFacade = (*SettingsService)(nil)

func (s *SettingsService) GetSetting(ctx context.Context, userID string, key string) (string, error) {
	value, err := s.settingsRepo.GetSetting(ctx, userID, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get setting", slog.String("key", key))
		}
		return "", err
	}
	return value, nil
}

func (s *SettingsService) SetSetting(ctx context.Context, userID string, key string, value string) error {
	if err := s.settingsRepo.SetSetting(ctx, userID, key, value); err != nil {
		s.LogError(ctx, err, "Failed to set setting", slog.String("key", key))
		return err
	}
	return nil
}

func (s *SettingsService) DeleteSetting(ctx context.Context, userID string, key string) error {
	if err := s.settingsRepo.DeleteSetting(ctx, userID, key); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete setting", slog.String("key", key))
		}
		return err
	}
	return nil
}

func (s *SettingsService) ListSettings(ctx context.Context, userID string) (map[string]string, error) {
	settings, err := s.settingsRepo.ListSettings(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list settings")
		return nil, err
	}
	return settings, nil
}
