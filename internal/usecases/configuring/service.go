package configuring

import (
	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/infrastructure/repository"
	"github.com/pulsefin/pulse-api/internal/domain"
)

// SettingsService owns the per-installation settings: company master data
// and threshold overrides.
type SettingsService interface {
	GetSettings() (*domain.Settings, error)
	SaveSettings(settings *domain.Settings) (*domain.Settings, error)
}

type Service struct {
	settingsRepository repository.SettingsRepository
}

func NewService(settingsRepository repository.SettingsRepository) SettingsService {
	return &Service{
		settingsRepository: settingsRepository,
	}
}

func (s *Service) GetSettings() (*domain.Settings, error) {
	settings, err := s.settingsRepository.Get()
	if err != nil {
		return nil, errors.Wrap(err, "fetching settings")
	}

	return settings, nil
}

// SaveSettings validates and persists the settings, filling defaults for
// fields the client left empty.
func (s *Service) SaveSettings(settings *domain.Settings) (*domain.Settings, error) {
	if settings == nil {
		return nil, errors.New("settings must not be nil")
	}

	if settings.Currency == "" {
		settings.Currency = "€"
	}

	for key, t := range settings.Thresholds {
		if t.Inverted {
			if t.Green > t.Yellow {
				return nil, errors.Errorf("threshold %s: inverted green bound must not exceed yellow", key)
			}
			continue
		}
		if t.Green < t.Yellow {
			return nil, errors.Errorf("threshold %s: green bound must not be below yellow", key)
		}
	}

	if err := s.settingsRepository.Save(settings); err != nil {
		return nil, errors.Wrap(err, "saving settings")
	}

	return settings, nil
}
