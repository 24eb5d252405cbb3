package detecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pulsefin/pulse-api/infrastructure/repository/mocks"
	"github.com/pulsefin/pulse-api/internal/domain"
)

// steadyRecord returns a month with a healthy balance sheet so only the
// fields a test varies can trigger findings.
func steadyRecord(period string, revenue, material float64) *domain.RawMonthRecord {
	return &domain.RawMonthRecord{
		Period:               period,
		Revenue:              revenue,
		MaterialExpense:      material,
		PersonnelExpense:     250000,
		Cash:                 200000,
		ShortTermReceivables: 100000,
		ShortTermLiabilities: 200000,
	}
}

func periods(n int) []string {
	all := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06", "2024-07"}
	return all[:n]
}

func TestDetectTooFewRecords(t *testing.T) {
	var records []*domain.RawMonthRecord
	for _, p := range periods(5) {
		records = append(records, steadyRecord(p, 800000, 380000))
	}

	assert.Empty(t, Detect(records))
	assert.Empty(t, Detect(nil))
}

func TestDetectMaterialCostSpike(t *testing.T) {
	materials := []float64{380000, 375000, 385000, 378000, 382000, 380000, 520000}

	var records []*domain.RawMonthRecord
	for i, p := range periods(7) {
		records = append(records, steadyRecord(p, 800000, materials[i]))
	}

	anomalies := Detect(records)
	require.Len(t, anomalies, 1)

	a := anomalies[0]
	assert.Equal(t, domain.SeverityCritical, a.Severity)
	assert.Equal(t, "materialExpense", a.MetricKey)
	assert.False(t, a.Favorable)
	assert.Equal(t,
		"Materialkosten im Jul 2024: 520,0 T€ – das liegt 37% über dem 6-Monats-Durchschnitt (380,0 T€).",
		a.Message,
	)
}

func TestDetectLiquidityBelowFloor(t *testing.T) {
	var records []*domain.RawMonthRecord
	for _, p := range periods(6) {
		records = append(records, steadyRecord(p, 800000, 380000))
	}

	last := records[len(records)-1]
	last.Cash = 80000
	last.ShortTermReceivables = 50000

	anomalies := Detect(records)
	require.Len(t, anomalies, 1)
	assert.Equal(t, domain.SeverityCritical, anomalies[0].Severity)
	assert.Equal(t, "liquidity2", anomalies[0].MetricKey)
	assert.Contains(t, anomalies[0].Message, "65,0 %")
}

func TestDetectRevenueTrend(t *testing.T) {
	tests := []struct {
		name         string
		revenues     []float64
		wantSeverity domain.AnomalySeverity
		wantFavor    bool
	}{
		{
			// Varied early months keep the deviation screen quiet while
			// the last four rise strictly.
			name:         "rising",
			revenues:     []float64{100000, 110000, 90000, 100000, 101000, 102000, 103000},
			wantSeverity: domain.SeverityInfo,
			wantFavor:    true,
		},
		{
			name:         "falling",
			revenues:     []float64{100000, 90000, 110000, 103000, 102000, 101000, 100000},
			wantSeverity: domain.SeverityCritical,
			wantFavor:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []*domain.RawMonthRecord
			for i, p := range periods(7) {
				records = append(records, steadyRecord(p, tt.revenues[i], 380000))
			}

			anomalies := Detect(records)
			require.Len(t, anomalies, 1)
			assert.Equal(t, tt.wantSeverity, anomalies[0].Severity)
			assert.Equal(t, "revenueTrend", anomalies[0].MetricKey)
			assert.Equal(t, tt.wantFavor, anomalies[0].Favorable)
		})
	}
}

func TestDetectStableSeriesIsQuiet(t *testing.T) {
	var records []*domain.RawMonthRecord
	for _, p := range periods(7) {
		records = append(records, steadyRecord(p, 800000, 380000))
	}

	assert.Empty(t, Detect(records))
}

func TestDetectAnomaliesService(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockMonthRecordRepository(ctrl)

	var records []*domain.RawMonthRecord
	for _, p := range periods(6) {
		records = append(records, steadyRecord(p, 800000, 380000))
	}
	repo.EXPECT().GetAll().Return(records, nil)

	service := NewService(repo)

	anomalies, err := service.DetectAnomalies()
	require.NoError(t, err)
	assert.Empty(t, anomalies)
}
