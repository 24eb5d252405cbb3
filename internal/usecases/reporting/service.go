package reporting

import (
	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/infrastructure/repository"
	"github.com/pulsefin/pulse-api/internal/config"
	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/internal/usecases/analyzing"
	"github.com/pulsefin/pulse-api/internal/usecases/detecting"
)

// ReporterService assembles the numeric block the external report/AI layer
// consumes. It only collects and formats figures; prompt construction and
// document generation live outside this API.
type ReporterService interface {
	GetSummary(period string) (*domain.ReportSummary, error)
}

type Service struct {
	analyzer           analyzing.AnalyzerService
	detector           detecting.DetectorService
	settingsRepository repository.SettingsRepository
	cfg                *config.Config
}

func NewService(
	analyzer analyzing.AnalyzerService,
	detector detecting.DetectorService,
	settingsRepository repository.SettingsRepository,
	cfg *config.Config,
) ReporterService {
	return &Service{
		analyzer:           analyzer,
		detector:           detector,
		settingsRepository: settingsRepository,
		cfg:                cfg,
	}
}

func (s *Service) GetSummary(period string) (*domain.ReportSummary, error) {
	board, err := s.analyzer.GetAmpelBoard(period)
	if err != nil {
		return nil, err
	}

	anomalies, err := s.detector.DetectAnomalies()
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepository.Get()
	if err != nil {
		return nil, errors.Wrap(err, "fetching settings")
	}

	kpis := make([]domain.ReportKPI, 0, len(board.Entries))
	for _, entry := range board.Entries {
		kpis = append(kpis, domain.ReportKPI{
			Key:       entry.Key,
			Label:     entry.Label,
			Value:     entry.Value,
			Formatted: entry.Formatted,
			Status:    entry.Status,
		})
	}

	messages := make([]string, 0, len(anomalies))
	for _, a := range anomalies {
		messages = append(messages, a.Message)
	}

	summary := &domain.ReportSummary{
		Period:      board.Period,
		PeriodLabel: board.PeriodLabel,
		CompanyName: settings.CompanyName,
		Industry:    settings.Industry,
		KPIs:        kpis,
		Anomalies:   messages,
	}
	if summary.CompanyName == "" {
		summary.CompanyName = s.cfg.Report.CompanyName
	}
	if summary.Industry == "" {
		summary.Industry = s.cfg.Report.Industry
	}

	return summary, nil
}
