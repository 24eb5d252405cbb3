package configuring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pulsefin/pulse-api/infrastructure/repository/mocks"
	"github.com/pulsefin/pulse-api/internal/domain"
)

func newService(t *testing.T) (SettingsService, *mocks.MockSettingsRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepository(ctrl)
	return NewService(repo), repo
}

func TestGetSettings(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().Get().Return(domain.DefaultSettings(), nil)

	settings, err := service.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "€", settings.Currency)
	assert.NotEmpty(t, settings.Thresholds)
}

func TestSaveSettingsFillsDefaults(t *testing.T) {
	service, repo := newService(t)

	repo.EXPECT().Save(gomock.Any()).Return(nil)

	saved, err := service.SaveSettings(&domain.Settings{CompanyName: "Beispiel AG"})
	require.NoError(t, err)
	assert.Equal(t, "€", saved.Currency)
}

func TestSaveSettingsRejectsInvertedBounds(t *testing.T) {
	service, _ := newService(t)

	_, err := service.SaveSettings(&domain.Settings{
		Thresholds: domain.Thresholds{
			"ebitMargin": {Green: 5, Yellow: 10},
		},
	})
	assert.Error(t, err)

	_, err = service.SaveSettings(&domain.Settings{
		Thresholds: domain.Thresholds{
			"personnelCostRatio": {Green: 40, Yellow: 30, Inverted: true},
		},
	})
	assert.Error(t, err)

	_, err = service.SaveSettings(nil)
	assert.Error(t, err)
}
