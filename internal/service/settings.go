package service

import (
	"context"
	"fmt"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// SettingsStore is the slice of the upstream client the settings page uses.
type SettingsStore interface {
	GetSettings(ctx context.Context) (domain.AppSettings, error)
	UpdateSettings(ctx context.Context, settings domain.AppSettings) (domain.AppSettings, error)
}

type SettingsService struct {
	api SettingsStore
}

func NewSettingsService(api SettingsStore) *SettingsService {
	return &SettingsService{api: api}
}

func (s *SettingsService) Get(ctx context.Context) (domain.AppSettings, error) {
	settings, err := s.api.GetSettings(ctx)
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("s.api.GetSettings -> %w", err)
	}

	return settings, nil
}

// Update replaces the settings singleton wholesale.
func (s *SettingsService) Update(ctx context.Context, settings domain.AppSettings) (domain.AppSettings, error) {
	updated, err := s.api.UpdateSettings(ctx, settings)
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("s.api.UpdateSettings -> %w", err)
	}

	return updated, nil
}
