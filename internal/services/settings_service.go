package services

import (
	"fmt"
	"time"

	"prdash/internal/models"
	"prdash/internal/repositories"
)

// SettingsService manages the persisted token and poll interval. A default
// row is created on first access.
type SettingsService struct {
	settingsRepo        *repositories.SettingsRepository
	defaultPollInterval int64
}

func NewSettingsService(settingsRepo *repositories.SettingsRepository, defaultPollInterval int64) *SettingsService {
	return &SettingsService{
		settingsRepo:        settingsRepo,
		defaultPollInterval: defaultPollInterval,
	}
}

// Get returns the current settings, creating defaults if none exist
func (s *SettingsService) Get() (*models.Settings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings != nil {
		return settings, nil
	}

	settings = models.NewSettings(s.defaultPollInterval)
	if err := s.settingsRepo.Create(settings); err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return settings, nil
}

// SaveToken stores a new GitHub token
func (s *SettingsService) SaveToken(token string) (*models.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	settings.GitHubToken = token
	settings.UpdatedAt = time.Now()
	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}
	return settings, nil
}

// SavePollInterval stores a new poll interval in milliseconds
func (s *SettingsService) SavePollInterval(intervalMS int64) (*models.Settings, error) {
	if intervalMS <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %d", intervalMS)
	}

	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	settings.PollIntervalMS = intervalMS
	settings.UpdatedAt = time.Now()
	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, fmt.Errorf("failed to save poll interval: %w", err)
	}
	return settings, nil
}
