package detecting

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/pulsefin/pulse-api/infrastructure/repository"
	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/pkg/format"
)

// Detection parameters. A deviation beyond warningSigma standard deviations
// from the trailing six-month average flags a warning, beyond criticalSigma
// a critical finding.
const (
	minRecords      = 6
	lookbackMonths  = 6
	warningSigma    = 1.8
	criticalSigma   = 2.5
	liquidity2Floor = 100
	trendWindow     = 4
)

type DetectorService interface {
	DetectAnomalies() ([]domain.Anomaly, error)
}

type Service struct {
	recordRepository repository.MonthRecordRepository
}

func NewService(recordRepository repository.MonthRecordRepository) DetectorService {
	return &Service{
		recordRepository: recordRepository,
	}
}

func (s *Service) DetectAnomalies() ([]domain.Anomaly, error) {
	records, err := s.recordRepository.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "fetching month records")
	}

	return Detect(records), nil
}

// deviationCheck describes one metric screened against its trailing
// average. isCost flips the favorability of an upward deviation.
type deviationCheck struct {
	key    string
	label  string
	value  func(k *domain.DerivedKPIRecord) float64
	isCost bool
}

var deviationChecks = []deviationCheck{
	{"materialExpense", "Materialkosten", func(k *domain.DerivedKPIRecord) float64 { return k.MaterialExpense }, true},
	{"personnelExpense", "Personalkosten", func(k *domain.DerivedKPIRecord) float64 { return k.PersonnelExpense }, true},
	{"revenue", "Umsatz", func(k *domain.DerivedKPIRecord) float64 { return k.Revenue }, false},
}

// Detect runs the full anomaly screen over a chronologically ordered record
// series. It is pure: no I/O, deterministic output ordering (deviation
// findings first, then the liquidity floor, then revenue trends). With
// fewer than six months of history there is no usable baseline and the
// result is empty.
func Detect(records []*domain.RawMonthRecord) []domain.Anomaly {
	if len(records) < minRecords {
		return []domain.Anomaly{}
	}

	anomalies := []domain.Anomaly{}

	start := len(records) - 1 - lookbackMonths
	if start < 0 {
		start = 0
	}

	current := domain.ComputeKPIs(records[len(records)-1])
	baseline := domain.ComputeKPISeries(records[start : len(records)-1])

	for _, check := range deviationChecks {
		if a := screenDeviation(check, current, baseline); a != nil {
			anomalies = append(anomalies, *a)
		}
	}

	if current.Liquidity2 < liquidity2Floor {
		anomalies = append(anomalies, domain.Anomaly{
			Severity:  domain.SeverityCritical,
			MetricKey: "liquidity2",
			Message: fmt.Sprintf(
				"Liquidität 2. Grades bei %s – kritischer Wert unter 100%%. Kurzfristige Zahlungsfähigkeit gefährdet.",
				format.Percent(current.Liquidity2),
			),
		})
	}

	anomalies = append(anomalies, screenRevenueTrend(records)...)

	return anomalies
}

// screenDeviation compares the current value of one metric against the mean
// and population standard deviation of its six-month baseline.
func screenDeviation(check deviationCheck, current *domain.DerivedKPIRecord, baseline []*domain.DerivedKPIRecord) *domain.Anomaly {
	vals := make([]float64, 0, len(baseline))
	for _, k := range baseline {
		vals = append(vals, check.value(k))
	}

	avg := stat.Mean(vals, nil)
	std := stat.PopStdDev(vals, nil)
	value := check.value(current)

	deviation := math.Abs(value - avg)
	if std <= 0 || deviation <= warningSigma*std {
		return nil
	}

	severity := domain.SeverityWarning
	if deviation > criticalSigma*std {
		severity = domain.SeverityCritical
	}

	direction := "über"
	if value < avg {
		direction = "unter"
	}
	pct := math.Abs(math.Round((value - avg) / avg * 100))

	return &domain.Anomaly{
		Severity:  severity,
		MetricKey: check.key,
		Message: fmt.Sprintf(
			"%s im %s: %s – das liegt %.0f%% %s dem 6-Monats-Durchschnitt (%s).",
			check.label,
			format.MonthFull(current.Period),
			format.Currency(value),
			pct,
			direction,
			format.Currency(avg),
		),
		Favorable: check.isCost != (value > avg),
	}
}

// screenRevenueTrend flags three consecutive months of strictly rising or
// strictly falling revenue.
func screenRevenueTrend(records []*domain.RawMonthRecord) []domain.Anomaly {
	if len(records) < trendWindow {
		return nil
	}

	window := records[len(records)-trendWindow:]
	rising, falling := true, true
	for i := 1; i < len(window); i++ {
		if window[i].Revenue <= window[i-1].Revenue {
			rising = false
		}
		if window[i].Revenue >= window[i-1].Revenue {
			falling = false
		}
	}

	var anomalies []domain.Anomaly
	if rising {
		anomalies = append(anomalies, domain.Anomaly{
			Severity:  domain.SeverityInfo,
			MetricKey: "revenueTrend",
			Message:   "Umsatz steigt seit 3 Monaten kontinuierlich – positiver Wachstumstrend.",
			Favorable: true,
		})
	}
	if falling {
		anomalies = append(anomalies, domain.Anomaly{
			Severity:  domain.SeverityCritical,
			MetricKey: "revenueTrend",
			Message:   "Umsatz fällt seit 3 Monaten kontinuierlich – negativer Trend erfordert Aufmerksamkeit.",
		})
	}

	return anomalies
}
