package simulating

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/infrastructure/repository"
	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/pkg/format"
	"github.com/pulsefin/pulse-api/pkg/utils"
)

// forecastDampening scales how strongly the revenue delta compounds into
// the projection: each forecast month carries 8% of the full delta on top
// of the scenario month.
const forecastDampening = 0.08

const defaultForecastMonths = 6

var ErrPeriodNotFound = errors.New("no record for period")

// ComparisonRow puts one KPI of the baseline month next to its scenario
// value. DiffPercent is relative to the absolute baseline and zero when the
// baseline itself is zero.
type ComparisonRow struct {
	Key               string  `json:"key"`
	Label             string  `json:"label"`
	Baseline          float64 `json:"baseline"`
	Scenario          float64 `json:"scenario"`
	DiffPercent       float64 `json:"diffPercent"`
	BaselineFormatted string  `json:"baselineFormatted"`
	ScenarioFormatted string  `json:"scenarioFormatted"`
}

// ForecastPoint is one projected month of scenario revenue.
type ForecastPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

// SimulationResult is the full what-if answer for one baseline month.
type SimulationResult struct {
	Period     string                   `json:"period"`
	Delta      domain.ScenarioDelta     `json:"delta"`
	Baseline   *domain.DerivedKPIRecord `json:"baseline"`
	Scenario   *domain.DerivedKPIRecord `json:"scenario"`
	Comparison []ComparisonRow          `json:"comparison"`
	Forecast   []ForecastPoint          `json:"forecast"`
}

type SimulatorService interface {
	Simulate(period string, delta domain.ScenarioDelta, forecastMonths int) (*SimulationResult, error)
	GetPresets() ([]domain.ScenarioPreset, error)
	SavePreset(label string, delta domain.ScenarioDelta) (*domain.ScenarioPreset, error)
	RenamePreset(key, label string) error
	ResetPresets() ([]domain.ScenarioPreset, error)
}

type Service struct {
	recordRepository repository.MonthRecordRepository
	presetRepository repository.ScenarioPresetRepository
}

func NewService(
	recordRepository repository.MonthRecordRepository,
	presetRepository repository.ScenarioPresetRepository,
) SimulatorService {
	return &Service{
		recordRepository: recordRepository,
		presetRepository: presetRepository,
	}
}

// comparisonMetric binds a compared KPI to its label and display format.
type comparisonMetric struct {
	key      string
	label    string
	value    func(k *domain.DerivedKPIRecord) float64
	formater func(v float64) string
}

var comparisonMetrics = []comparisonMetric{
	{"revenue", "Umsatz", func(k *domain.DerivedKPIRecord) float64 { return k.Revenue }, format.Currency},
	{"ebit", "EBIT", func(k *domain.DerivedKPIRecord) float64 { return k.EBIT }, format.Currency},
	{"ebitMargin", "EBIT-Marge", func(k *domain.DerivedKPIRecord) float64 { return k.EBITMargin }, format.Percent},
	{"netResult", "Gewinn", func(k *domain.DerivedKPIRecord) float64 { return k.NetResult }, format.Currency},
	{"returnOnSales", "Umsatzrend.", func(k *domain.DerivedKPIRecord) float64 { return k.ReturnOnSales }, format.Percent},
	{"operatingCashflow", "Cashflow", func(k *domain.DerivedKPIRecord) float64 { return k.OperatingCashflow }, format.Currency},
	{"personnelCostRatio", "Personalkosten-Q.", func(k *domain.DerivedKPIRecord) float64 { return k.PersonnelCostRatio }, format.Percent},
}

func (s *Service) Simulate(period string, delta domain.ScenarioDelta, forecastMonths int) (*SimulationResult, error) {
	if err := delta.Validate(); err != nil {
		return nil, err
	}
	if forecastMonths <= 0 {
		forecastMonths = defaultForecastMonths
	}

	record, err := s.getRecord(period)
	if err != nil {
		return nil, err
	}

	baseline := domain.ComputeKPIs(record)
	scenario := domain.ComputeKPIs(domain.ApplyScenario(record, delta))

	comparison := make([]ComparisonRow, 0, len(comparisonMetrics))
	for _, m := range comparisonMetrics {
		base := m.value(baseline)
		scen := m.value(scenario)
		comparison = append(comparison, ComparisonRow{
			Key:               m.key,
			Label:             m.label,
			Baseline:          base,
			Scenario:          scen,
			DiffPercent:       diffPercent(base, scen),
			BaselineFormatted: m.formater(base),
			ScenarioFormatted: m.formater(scen),
		})
	}

	forecast := make([]ForecastPoint, 0, forecastMonths)
	for i := 1; i <= forecastMonths; i++ {
		forecast = append(forecast, ForecastPoint{
			Label:   fmt.Sprintf("+%dM", i),
			Revenue: scenario.Revenue * (1 + float64(i-1)*(delta.RevenueDelta/100)*forecastDampening),
		})
	}

	return &SimulationResult{
		Period:     record.Period,
		Delta:      delta,
		Baseline:   baseline,
		Scenario:   scenario,
		Comparison: comparison,
		Forecast:   forecast,
	}, nil
}

// GetPresets returns all saved presets, seeding the built-in trio on first
// use.
func (s *Service) GetPresets() ([]domain.ScenarioPreset, error) {
	presets, err := s.presetRepository.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "fetching presets")
	}

	if len(presets) == 0 {
		if presets, err = s.seedBuiltIns(); err != nil {
			return nil, err
		}
	}

	return presets, nil
}

func (s *Service) SavePreset(label string, delta domain.ScenarioDelta) (*domain.ScenarioPreset, error) {
	if label == "" {
		return nil, errors.New("preset label must not be empty")
	}
	if err := delta.Validate(); err != nil {
		return nil, err
	}

	key, err := utils.NewShortID()
	if err != nil {
		return nil, errors.Wrap(err, "generating preset key")
	}

	preset := domain.ScenarioPreset{
		Key:   key,
		Label: label,
		Delta: delta,
	}
	if err := s.presetRepository.SaveOrUpdate(preset); err != nil {
		return nil, errors.Wrap(err, "saving preset")
	}

	return &preset, nil
}

func (s *Service) RenamePreset(key, label string) error {
	if label == "" {
		return errors.New("preset label must not be empty")
	}

	existing, err := s.presetRepository.GetByKey(key)
	if err != nil {
		return errors.Wrap(err, "loading preset")
	}
	if existing != nil && existing.BuiltIn {
		return errors.Errorf("preset %s is built-in and cannot be renamed", key)
	}

	renamed, err := s.presetRepository.Rename(key, label)
	if err != nil {
		return errors.Wrap(err, "renaming preset")
	}
	if !renamed {
		return errors.Errorf("preset %s not found", key)
	}

	return nil
}

// ResetPresets drops every saved preset and restores the built-in trio.
func (s *Service) ResetPresets() ([]domain.ScenarioPreset, error) {
	if err := s.presetRepository.DeleteAll(); err != nil {
		return nil, errors.Wrap(err, "clearing presets")
	}

	return s.seedBuiltIns()
}

func (s *Service) seedBuiltIns() ([]domain.ScenarioPreset, error) {
	builtIns := domain.BuiltInPresets()
	for _, preset := range builtIns {
		if err := s.presetRepository.SaveOrUpdate(preset); err != nil {
			return nil, errors.Wrapf(err, "seeding preset %s", preset.Key)
		}
	}

	return builtIns, nil
}

// diffPercent is the scenario deviation relative to the absolute baseline.
// A zero baseline yields zero rather than a blown-up ratio.
func diffPercent(baseline, scenario float64) float64 {
	if baseline == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((scenario - baseline) / math.Abs(baseline) * 100)
}

func (s *Service) getRecord(period string) (*domain.RawMonthRecord, error) {
	if period == "" {
		records, err := s.recordRepository.GetAll()
		if err != nil {
			return nil, errors.Wrap(err, "fetching month records")
		}
		if len(records) == 0 {
			return nil, errors.Wrap(ErrPeriodNotFound, "no records available")
		}
		return records[len(records)-1], nil
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
