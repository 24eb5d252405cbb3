package reporting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/pulsefin/pulse-api/infrastructure/repository/mocks"
	"github.com/pulsefin/pulse-api/internal/config"
	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/internal/usecases/analyzing"
	ucmocks "github.com/pulsefin/pulse-api/internal/usecases/mocks"
)

func TestGetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)

	analyzer := ucmocks.NewMockAnalyzerService(ctrl)
	detector := ucmocks.NewMockDetectorService(ctrl)
	settings := repomocks.NewMockSettingsRepository(ctrl)

	analyzer.EXPECT().GetAmpelBoard("2024-01").Return(&analyzing.AmpelBoard{
		Period:      "2024-01",
		PeriodLabel: "Jan 2024",
		Entries: []analyzing.AmpelEntry{
			{Key: "revenue", Label: "Umsatz", Value: 880000, Formatted: "880,0 T€", Status: domain.AmpelYellow},
			{Key: "ebit", Label: "EBIT", Value: 138000, Formatted: "138,0 T€", Status: domain.AmpelGreen},
		},
	}, nil)
	detector.EXPECT().DetectAnomalies().Return([]domain.Anomaly{
		{Severity: domain.SeverityInfo, Message: "Umsatz steigt seit 3 Monaten kontinuierlich – positiver Wachstumstrend."},
	}, nil)
	settings.EXPECT().Get().Return(&domain.Settings{CompanyName: "Beispiel AG", Industry: "Handel"}, nil)

	cfg := &config.Config{}
	service := NewService(analyzer, detector, settings, cfg)

	summary, err := service.GetSummary("2024-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-01", summary.Period)
	assert.Equal(t, "Jan 2024", summary.PeriodLabel)
	assert.Equal(t, "Beispiel AG", summary.CompanyName)
	assert.Equal(t, "Handel", summary.Industry)
	require.Len(t, summary.KPIs, 2)
	assert.Equal(t, "880,0 T€", summary.KPIs[0].Formatted)
	assert.Equal(t, domain.AmpelYellow, summary.KPIs[0].Status)
	require.Len(t, summary.Anomalies, 1)
	assert.Contains(t, summary.Anomalies[0], "Wachstumstrend")
}

func TestGetSummaryFallsBackToConfiguredCompany(t *testing.T) {
	ctrl := gomock.NewController(t)

	analyzer := ucmocks.NewMockAnalyzerService(ctrl)
	detector := ucmocks.NewMockDetectorService(ctrl)
	settings := repomocks.NewMockSettingsRepository(ctrl)

	analyzer.EXPECT().GetAmpelBoard("").Return(&analyzing.AmpelBoard{Period: "2024-02", PeriodLabel: "Feb 2024"}, nil)
	detector.EXPECT().DetectAnomalies().Return(nil, nil)
	settings.EXPECT().Get().Return(domain.DefaultSettings(), nil)

	cfg := &config.Config{Report: config.Report{CompanyName: "Muster GmbH", Industry: "Maschinenbau"}}
	service := NewService(analyzer, detector, settings, cfg)

	summary, err := service.GetSummary("")
	require.NoError(t, err)
	assert.Equal(t, "Muster GmbH", summary.CompanyName)
	assert.Equal(t, "Maschinenbau", summary.Industry)
	assert.Empty(t, summary.Anomalies)
}

func TestGetSummaryPropagatesAnalyzerError(t *testing.T) {
	ctrl := gomock.NewController(t)

	analyzer := ucmocks.NewMockAnalyzerService(ctrl)
	detector := ucmocks.NewMockDetectorService(ctrl)
	settings := repomocks.NewMockSettingsRepository(ctrl)

	analyzer.EXPECT().GetAmpelBoard("2030-01").Return(nil, errors.New("no record for period"))

	service := NewService(analyzer, detector, settings, &config.Config{})

	_, err := service.GetSummary("2030-01")
	assert.Error(t, err)
}
