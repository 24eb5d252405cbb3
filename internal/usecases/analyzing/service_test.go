package analyzing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pulsefin/pulse-api/infrastructure/repository/mocks"
	"github.com/pulsefin/pulse-api/internal/domain"
)

func demoRecord(period string) *domain.RawMonthRecord {
	return &domain.RawMonthRecord{
		Period:               period,
		Revenue:              880000,
		RevenuePlan:          900000,
		MaterialExpense:      340000,
		PersonnelExpense:     265000,
		OtherExpense:         95000,
		Depreciation:         42000,
		InterestExpense:      12000,
		Cash:                 420000,
		ShortTermReceivables: 310000,
		Inventory:            180000,
		ShortTermLiabilities: 290000,
		LongTermLiabilities:  480000,
		Equity:               850000,
		FixedAssets:          710000,
	}
}

func TestGetKPISeries(t *testing.T) {
	ctrl := gomock.NewController(t)

	records := mocks.NewMockMonthRecordRepository(ctrl)
	settings := mocks.NewMockSettingsRepository(ctrl)

	records.EXPECT().GetAll().Return([]*domain.RawMonthRecord{
		demoRecord("2024-01"),
		demoRecord("2024-02"),
	}, nil)

	service := NewService(records, settings)

	series, err := service.GetKPISeries("", "")
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-01", series[0].Period)
	assert.Equal(t, 138000.0, series[0].EBIT)
	assert.Equal(t, "2024-02", series[1].Period)
}

func TestGetKPISeriesRange(t *testing.T) {
	ctrl := gomock.NewController(t)

	records := mocks.NewMockMonthRecordRepository(ctrl)
	settings := mocks.NewMockSettingsRepository(ctrl)

	records.EXPECT().GetRange("2024-01", "9999-12").Return([]*domain.RawMonthRecord{
		demoRecord("2024-01"),
	}, nil)

	service := NewService(records, settings)

	series, err := service.GetKPISeries("2024-01", "")
	require.NoError(t, err)
	require.Len(t, series, 1)

	_, err = service.GetKPISeries("not-a-period", "")
	assert.Error(t, err)
}

func TestGetKPISeriesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)

	records := mocks.NewMockMonthRecordRepository(ctrl)
	settings := mocks.NewMockSettingsRepository(ctrl)

	records.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

	service := NewService(records, settings)

	series, err := service.GetKPISeries("", "")
	assert.Error(t, err)
	assert.Nil(t, series)
}

func TestGetKPIByPeriod(t *testing.T) {
	tests := []struct {
		name      string
		period    string
		setup     func(records *mocks.MockMonthRecordRepository)
		wantErr   bool
		wantEBIT  float64
		wantMonth string
	}{
		{
			name:   "existing period",
			period: "2024-01",
			setup: func(records *mocks.MockMonthRecordRepository) {
				records.EXPECT().GetByPeriod("2024-01").Return(demoRecord("2024-01"), nil)
			},
			wantEBIT:  138000,
			wantMonth: "2024-01",
		},
		{
			name:   "empty period resolves to latest",
			period: "",
			setup: func(records *mocks.MockMonthRecordRepository) {
				records.EXPECT().GetAll().Return([]*domain.RawMonthRecord{
					demoRecord("2023-12"),
					demoRecord("2024-01"),
				}, nil)
			},
			wantEBIT:  138000,
			wantMonth: "2024-01",
		},
		{
			name:   "missing period",
			period: "2030-01",
			setup: func(records *mocks.MockMonthRecordRepository) {
				records.EXPECT().GetByPeriod("2030-01").Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name:    "malformed period",
			period:  "Januar 2024",
			setup:   func(records *mocks.MockMonthRecordRepository) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			records := mocks.NewMockMonthRecordRepository(ctrl)
			settings := mocks.NewMockSettingsRepository(ctrl)
			tt.setup(records)

			service := NewService(records, settings)

			kpi, err := service.GetKPIByPeriod(tt.period)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, kpi)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMonth, kpi.Period)
			assert.Equal(t, tt.wantEBIT, kpi.EBIT)
		})
	}
}

func TestGetAmpelBoard(t *testing.T) {
	ctrl := gomock.NewController(t)

	records := mocks.NewMockMonthRecordRepository(ctrl)
	settings := mocks.NewMockSettingsRepository(ctrl)

	records.EXPECT().GetByPeriod("2024-01").Return(demoRecord("2024-01"), nil)
	settings.EXPECT().Get().Return(domain.DefaultSettings(), nil)

	service := NewService(records, settings)

	board, err := service.GetAmpelBoard("2024-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", board.Period)
	assert.Equal(t, "Jan 2024", board.PeriodLabel)
	require.Len(t, board.Entries, 8)

	byKey := map[string]AmpelEntry{}
	for _, e := range board.Entries {
		byKey[e.Key] = e
	}

	// Revenue at 97.8% of plan misses the 100% green bar but clears 90%.
	assert.Equal(t, domain.AmpelYellow, byKey["revenue"].Status)
	assert.Equal(t, "880,0 T€", byKey["revenue"].Formatted)

	// Liquidity 2 at 251.7% clears the 120% green bar.
	assert.Equal(t, domain.AmpelGreen, byKey["liquidity2"].Status)

	// Personnel cost ratio 30.1% sits between the inverted 30/40 bounds.
	assert.Equal(t, domain.AmpelYellow, byKey["personnelCostRatio"].Status)
	assert.Equal(t, "30,1 %", byKey["personnelCostRatio"].Formatted)
}

func TestGetWaterfall(t *testing.T) {
	ctrl := gomock.NewController(t)

	records := mocks.NewMockMonthRecordRepository(ctrl)
	settings := mocks.NewMockSettingsRepository(ctrl)

	records.EXPECT().GetByPeriod("2024-01").Return(demoRecord("2024-01"), nil)

	service := NewService(records, settings)

	resp, err := service.GetWaterfall("2024-01")
	require.NoError(t, err)
	require.Len(t, resp.Steps, 7)
	assert.Equal(t, "Umsatz", resp.Steps[0].Label)
	assert.Equal(t, "Ergebnis", resp.Steps[6].Label)
	assert.Equal(t, 126000.0, resp.Steps[6].Value)
}

func TestGetPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)

	records := mocks.NewMockMonthRecordRepository(ctrl)
	settings := mocks.NewMockSettingsRepository(ctrl)

	records.EXPECT().GetPeriods().Return([]string{"2024-01", "2024-02", "2024-03"}, nil)

	service := NewService(records, settings)

	periods, err := service.GetPeriods()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, periods)
}
