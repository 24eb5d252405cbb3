package scheduler

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pulsefin/pulse-api/internal/config"
	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/internal/usecases/mocks"
	"github.com/pulsefin/pulse-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func testCfg(enabled bool) *config.Config {
	return &config.Config{
		AnomalyScan: config.AnomalyScan{
			CronSchedule: "0 6 * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunScan(t *testing.T) {
	ctrl := gomock.NewController(t)

	detector := mocks.NewMockDetectorService(ctrl)
	detector.EXPECT().DetectAnomalies().Return([]domain.Anomaly{
		{Severity: domain.SeverityCritical, MetricKey: "liquidity2", Message: "Liquidität 2. Grades bei 65,0 %"},
		{Severity: domain.SeverityInfo, MetricKey: "revenueTrend", Message: "Umsatz steigt seit 3 Monaten kontinuierlich"},
	}, nil)

	service := NewAnomalyScanService(detector, testCfg(true))

	require.NoError(t, service.RunScan())
	assert.Equal(t, 2, service.lastScanFindings)
	assert.False(t, service.scanRunning)
}

func TestRunScanPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)

	detector := mocks.NewMockDetectorService(ctrl)
	detector.EXPECT().DetectAnomalies().Return(nil, errors.New("connection refused"))

	service := NewAnomalyScanService(detector, testCfg(true))

	assert.Error(t, service.RunScan())
}

func TestStartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	detector := mocks.NewMockDetectorService(ctrl)

	service := NewAnomalyScanService(detector, testCfg(false))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Disabled service neither schedules nor calls the detector.
	assert.NoError(t, service.Start(ctx))
}
