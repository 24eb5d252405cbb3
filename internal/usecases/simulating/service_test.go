package simulating

import (
	"testing"

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

func newService(t *testing.T) (*Service, *mocks.MockMonthRecordRepository, *mocks.MockScenarioPresetRepository) {
	ctrl := gomock.NewController(t)
	records := mocks.NewMockMonthRecordRepository(ctrl)
	presets := mocks.NewMockScenarioPresetRepository(ctrl)
	return NewService(records, presets).(*Service), records, presets
}

func TestSimulateWorstCase(t *testing.T) {
	service, records, _ := newService(t)

	records.EXPECT().GetByPeriod("2024-01").Return(demoRecord("2024-01"), nil)

	delta := domain.ScenarioDelta{RevenueDelta: -25, MaterialDelta: 15, PersonnelDelta: 5, OtherCostDelta: 10}

	result, err := service.Simulate("2024-01", delta, 6)
	require.NoError(t, err)

	assert.Equal(t, "2024-01", result.Period)
	assert.Equal(t, 660000.0, result.Scenario.Revenue)
	assert.InDelta(t, -155750.0, result.Scenario.EBIT, 0.0001)

	// Balance sheet stays put, so liquidity does not move with the scenario.
	assert.Equal(t, result.Baseline.Liquidity2, result.Scenario.Liquidity2)

	require.Len(t, result.Comparison, 7)
	ebitRow := result.Comparison[1]
	assert.Equal(t, "ebit", ebitRow.Key)
	assert.Equal(t, "EBIT", ebitRow.Label)
	assert.Equal(t, 138000.0, ebitRow.Baseline)
	assert.InDelta(t, -212.86, ebitRow.DiffPercent, 0.01)

	require.Len(t, result.Forecast, 6)
	assert.Equal(t, "+1M", result.Forecast[0].Label)
	assert.InDelta(t, 660000.0, result.Forecast[0].Revenue, 0.0001)
	// Each further month sheds 8% of the -25% delta, i.e. 2% of revenue.
	assert.InDelta(t, 646800.0, result.Forecast[1].Revenue, 0.0001)
	assert.InDelta(t, 594000.0, result.Forecast[5].Revenue, 0.0001)
}

func TestSimulateZeroDeltaMatchesBaseline(t *testing.T) {
	service, records, _ := newService(t)

	records.EXPECT().GetAll().Return([]*domain.RawMonthRecord{demoRecord("2024-01")}, nil)

	result, err := service.Simulate("", domain.ScenarioDelta{}, 0)
	require.NoError(t, err)

	assert.Equal(t, result.Baseline, result.Scenario)
	require.Len(t, result.Forecast, 6)
	for _, row := range result.Comparison {
		assert.Zero(t, row.DiffPercent)
	}
	for _, point := range result.Forecast {
		assert.Equal(t, 880000.0, point.Revenue)
	}
}

func TestSimulateRejectsOutOfBoundsDelta(t *testing.T) {
	service, _, _ := newService(t)

	_, err := service.Simulate("2024-01", domain.ScenarioDelta{RevenueDelta: 60}, 6)
	assert.Error(t, err)

	_, err = service.Simulate("2024-01", domain.ScenarioDelta{MaterialDelta: -31}, 6)
	assert.Error(t, err)
}

func TestSimulateUnknownPeriod(t *testing.T) {
	service, records, _ := newService(t)

	records.EXPECT().GetByPeriod("2030-01").Return(nil, nil)

	_, err := service.Simulate("2030-01", domain.ScenarioDelta{}, 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPeriodNotFound)
}

func TestGetPresetsSeedsBuiltIns(t *testing.T) {
	service, _, presets := newService(t)

	presets.EXPECT().GetAll().Return(nil, nil)
	presets.EXPECT().SaveOrUpdate(gomock.Any()).Times(3).Return(nil)

	result, err := service.GetPresets()
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "bestCase", result[0].Key)
	assert.True(t, result[0].BuiltIn)
}

func TestGetPresetsPassesThroughExisting(t *testing.T) {
	service, _, presets := newService(t)

	saved := []domain.ScenarioPreset{{Key: "abc12345", Label: "Expansion"}}
	presets.EXPECT().GetAll().Return(saved, nil)

	result, err := service.GetPresets()
	require.NoError(t, err)
	assert.Equal(t, saved, result)
}

func TestSavePreset(t *testing.T) {
	service, _, presets := newService(t)

	var stored domain.ScenarioPreset
	presets.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(p domain.ScenarioPreset) error {
		stored = p
		return nil
	})

	delta := domain.ScenarioDelta{RevenueDelta: 10}

	preset, err := service.SavePreset("Expansion", delta)
	require.NoError(t, err)
	assert.Len(t, preset.Key, 8)
	assert.Equal(t, "Expansion", preset.Label)
	assert.Equal(t, delta, preset.Delta)
	assert.False(t, preset.BuiltIn)
	assert.Equal(t, *preset, stored)
}

func TestSavePresetRejectsEmptyLabel(t *testing.T) {
	service, _, _ := newService(t)

	_, err := service.SavePreset("", domain.ScenarioDelta{})
	assert.Error(t, err)
}

func TestRenamePreset(t *testing.T) {
	service, _, presets := newService(t)

	presets.EXPECT().GetByKey("abc12345").Return(&domain.ScenarioPreset{Key: "abc12345", Label: "Alt"}, nil)
	presets.EXPECT().Rename("abc12345", "Wachstum").Return(true, nil)
	assert.NoError(t, service.RenamePreset("abc12345", "Wachstum"))

	presets.EXPECT().GetByKey("missing1").Return(nil, nil)
	presets.EXPECT().Rename("missing1", "Wachstum").Return(false, nil)
	assert.Error(t, service.RenamePreset("missing1", "Wachstum"))
}

func TestRenamePresetRejectsBuiltIn(t *testing.T) {
	service, _, presets := newService(t)

	presets.EXPECT().GetByKey("bestCase").
		Return(&domain.ScenarioPreset{Key: "bestCase", Label: "Best Case", BuiltIn: true}, nil)

	err := service.RenamePreset("bestCase", "Mein Szenario")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "built-in")
}

func TestResetPresets(t *testing.T) {
	service, _, presets := newService(t)

	presets.EXPECT().DeleteAll().Return(nil)
	presets.EXPECT().SaveOrUpdate(gomock.Any()).Times(3).Return(nil)

	result, err := service.ResetPresets()
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "Realistisch", result[2].Label)
}
