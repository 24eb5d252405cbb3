package analyzing

import (
	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/infrastructure/repository"
	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/pkg/format"
	"github.com/pulsefin/pulse-api/pkg/utils"
)

// ErrPeriodNotFound is returned when no record exists for a requested month.
var ErrPeriodNotFound = errors.New("no record for period")

// AmpelEntry is one classified KPI of the traffic-light board.
type AmpelEntry struct {
	Key       string             `json:"key"`
	Label     string             `json:"label"`
	Value     float64            `json:"value"`
	Formatted string             `json:"formatted"`
	Status    domain.AmpelStatus `json:"status"`
}

// AmpelBoard is the full traffic-light view of one month.
type AmpelBoard struct {
	Period      string       `json:"period"`
	PeriodLabel string       `json:"periodLabel"`
	Entries     []AmpelEntry `json:"entries"`
}

// WaterfallResponse carries the EBIT bridge of one month.
type WaterfallResponse struct {
	Period      string                 `json:"period"`
	PeriodLabel string                 `json:"periodLabel"`
	Steps       []domain.WaterfallStep `json:"steps"`
}

type AnalyzerService interface {
	GetKPISeries(fromPeriod, toPeriod string) ([]*domain.DerivedKPIRecord, error)
	GetKPIByPeriod(period string) (*domain.DerivedKPIRecord, error)
	GetAmpelBoard(period string) (*AmpelBoard, error)
	GetWaterfall(period string) (*WaterfallResponse, error)
	GetPeriods() ([]string, error)
}

type Service struct {
	recordRepository   repository.MonthRecordRepository
	settingsRepository repository.SettingsRepository
}

func NewService(
	recordRepository repository.MonthRecordRepository,
	settingsRepository repository.SettingsRepository,
) AnalyzerService {
	return &Service{
		recordRepository:   recordRepository,
		settingsRepository: settingsRepository,
	}
}

// GetKPISeries derives the KPI series, optionally bounded to an inclusive
// period range. Empty bounds mean the full history.
func (s *Service) GetKPISeries(fromPeriod, toPeriod string) ([]*domain.DerivedKPIRecord, error) {
	var (
		records []*domain.RawMonthRecord
		err     error
	)

	if fromPeriod == "" && toPeriod == "" {
		records, err = s.recordRepository.GetAll()
	} else {
		if fromPeriod, err = normalizeBound(fromPeriod, "0000-01"); err != nil {
			return nil, err
		}
		if toPeriod, err = normalizeBound(toPeriod, "9999-12"); err != nil {
			return nil, err
		}
		records, err = s.recordRepository.GetRange(fromPeriod, toPeriod)
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching month records")
	}

	return domain.ComputeKPISeries(records), nil
}

// normalizeBound validates a range bound, substituting the open-end default
// when it is empty.
func normalizeBound(period, open string) (string, error) {
	if period == "" {
		return open, nil
	}
	return utils.ParsePeriod(period)
}

func (s *Service) GetKPIByPeriod(period string) (*domain.DerivedKPIRecord, error) {
	record, err := s.getRecord(period)
	if err != nil {
		return nil, err
	}

	return domain.ComputeKPIs(record), nil
}

func (s *Service) GetPeriods() ([]string, error) {
	periods, err := s.recordRepository.GetPeriods()
	if err != nil {
		return nil, errors.Wrap(err, "fetching periods")
	}

	return periods, nil
}

// ampelMetric binds a KPI of the board to its label and display format.
type ampelMetric struct {
	key      string
	label    string
	value    func(k *domain.DerivedKPIRecord) float64
	formater func(v float64) string
}

var ampelMetrics = []ampelMetric{
	{domain.MetricRevenue, "Umsatz", func(k *domain.DerivedKPIRecord) float64 { return k.Revenue }, format.Currency},
	{"ebit", "EBIT", func(k *domain.DerivedKPIRecord) float64 { return k.EBIT }, format.Currency},
	{"ebitMargin", "EBIT-Marge", func(k *domain.DerivedKPIRecord) float64 { return k.EBITMargin }, format.Percent},
	{"liquidity2", "Liquidität 2. Grades", func(k *domain.DerivedKPIRecord) float64 { return k.Liquidity2 }, format.Percent},
	{"equityRatio", "Eigenkapitalquote", func(k *domain.DerivedKPIRecord) float64 { return k.EquityRatio }, format.Percent},
	{"operatingCashflow", "Operativer Cashflow", func(k *domain.DerivedKPIRecord) float64 { return k.OperatingCashflow }, format.Currency},
	{"personnelCostRatio", "Personalkostenquote", func(k *domain.DerivedKPIRecord) float64 { return k.PersonnelCostRatio }, format.Percent},
	{"returnOnSales", "Umsatzrendite", func(k *domain.DerivedKPIRecord) float64 { return k.ReturnOnSales }, format.Percent},
}

func (s *Service) GetAmpelBoard(period string) (*AmpelBoard, error) {
	record, err := s.getRecord(period)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepository.Get()
	if err != nil {
		return nil, errors.Wrap(err, "fetching settings")
	}
	thresholds := settings.EffectiveThresholds()

	kpi := domain.ComputeKPIs(record)

	entries := make([]AmpelEntry, 0, len(ampelMetrics))
	for _, m := range ampelMetrics {
		value := m.value(kpi)
		entries = append(entries, AmpelEntry{
			Key:       m.key,
			Label:     m.label,
			Value:     value,
			Formatted: m.formater(value),
			Status:    domain.Classify(m.key, value, kpi.RevenuePlan, thresholds),
		})
	}

	return &AmpelBoard{
		Period:      record.Period,
		PeriodLabel: format.MonthFull(record.Period),
		Entries:     entries,
	}, nil
}

func (s *Service) GetWaterfall(period string) (*WaterfallResponse, error) {
	record, err := s.getRecord(period)
	if err != nil {
		return nil, err
	}

	kpi := domain.ComputeKPIs(record)

	return &WaterfallResponse{
		Period:      record.Period,
		PeriodLabel: format.MonthFull(record.Period),
		Steps:       domain.BuildWaterfall(kpi),
	}, nil
}

// getRecord resolves a period to its record. An empty period means the
// latest available month.
func (s *Service) getRecord(period string) (*domain.RawMonthRecord, error) {
	if period == "" {
		return s.latestRecord()
	}

	normalized, err := utils.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	record, err := s.recordRepository.GetByPeriod(normalized)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching record for period %s", normalized)
	}
	if record == nil {
		return nil, errors.Wrapf(ErrPeriodNotFound, "period %s", normalized)
	}

	return record, nil
}

func (s *Service) latestRecord() (*domain.RawMonthRecord, error) {
	records, err := s.recordRepository.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "fetching month records")
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrPeriodNotFound, "no records available")
	}

	return records[len(records)-1], nil
}
