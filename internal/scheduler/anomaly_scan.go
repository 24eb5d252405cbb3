// Package scheduler holds the background jobs of the API.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/pulsefin/pulse-api/internal/config"
	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/internal/usecases/detecting"
	"github.com/pulsefin/pulse-api/pkg/log"
)

type AnomalyScanConfig struct {
	CronSchedule string
	Enabled      bool
}

// AnomalyScanService periodically runs the anomaly screen over the stored
// series and logs the findings, so that alarming months surface in the
// operational logs even when nobody has the dashboard open.
type AnomalyScanService struct {
	scheduler         *gocron.Scheduler
	detector          detecting.DetectorService
	config            AnomalyScanConfig
	scanRunning       bool
	scanMutex         sync.Mutex
	lastScanStartedAt time.Time
	lastScanFindings  int
}

func NewAnomalyScanService(detector detecting.DetectorService, cfg *config.Config) *AnomalyScanService {
	scanConfig := AnomalyScanConfig{
		CronSchedule: cfg.AnomalyScan.CronSchedule,
		Enabled:      cfg.AnomalyScan.Enabled,
	}

	return &AnomalyScanService{
		scheduler: gocron.NewScheduler(time.Local),
		detector:  detector,
		config:    scanConfig,
	}
}

func (s *AnomalyScanService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("anomaly scan disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("starting anomaly scan job")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunScan(); err != nil {
			log.L.WithError(err).Error("anomaly scan failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling anomaly scan: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping anomaly scan job")
		s.scheduler.Stop()
	}()

	return nil
}

// RunScan executes one detection pass. Overlapping runs are skipped.
func (s *AnomalyScanService) RunScan() error {
	s.scanMutex.Lock()
	defer s.scanMutex.Unlock()

	if s.scanRunning {
		log.L.Warn("anomaly scan already running, skipping")
		return nil
	}

	s.scanRunning = true
	s.lastScanStartedAt = time.Now()
	defer func() {
		s.scanRunning = false
	}()

	anomalies, err := s.detector.DetectAnomalies()
	if err != nil {
		return err
	}
	s.lastScanFindings = len(anomalies)

	if len(anomalies) == 0 {
		log.L.Info("anomaly scan completed, no findings")
		return nil
	}

	for _, a := range anomalies {
		logger := log.L.WithFields(log.Fields{
			"metric":   a.MetricKey,
			"severity": a.Severity,
		})

		switch a.Severity {
		case domain.SeverityCritical:
			logger.Error(a.Message)
		case domain.SeverityWarning:
			logger.Warn(a.Message)
		default:
			logger.Info(a.Message)
		}
	}

	log.L.WithField("findings", len(anomalies)).Info("anomaly scan completed")

	return nil
}
