package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyScenario_ZeroDeltaIsIdentity(t *testing.T) {
	baseline := sampleMonth()

	scenario := ApplyScenario(baseline, ScenarioDelta{})

	assert.Equal(t, baseline, scenario)
	assert.NotSame(t, baseline, scenario)
}

func TestApplyScenario_WorstCase(t *testing.T) {
	baseline := &RawMonthRecord{
		Period:               "2025-09",
		Revenue:              1000000,
		MaterialExpense:      400000,
		PersonnelExpense:     280000,
		OtherExpense:         100000,
		Depreciation:         42000,
		InterestExpense:      10000,
		ShortTermLiabilities: 300000,
	}
	worstCase := ScenarioDelta{RevenueDelta: -25, MaterialDelta: 15, PersonnelDelta: 5, OtherCostDelta: 10}

	scenario := ApplyScenario(baseline, worstCase)

	assert.Equal(t, 750000.0, scenario.Revenue)
	assert.InDelta(t, 460000.0, scenario.MaterialExpense, 0.0001)
	assert.InDelta(t, 294000.0, scenario.PersonnelExpense, 0.0001)
	assert.InDelta(t, 110000.0, scenario.OtherExpense, 0.0001)

	// Untouched fields pass through, including the balance sheet.
	assert.Equal(t, 42000.0, scenario.Depreciation)
	assert.Equal(t, 10000.0, scenario.InterestExpense)
	assert.Equal(t, 300000.0, scenario.ShortTermLiabilities)

	// Baseline is never mutated.
	assert.Equal(t, 1000000.0, baseline.Revenue)

	baselineKPI := ComputeKPIs(baseline)
	scenarioKPI := ComputeKPIs(scenario)
	assert.Less(t, scenarioKPI.NetResult, baselineKPI.NetResult)
}

func TestApplyScenario_NilBaseline(t *testing.T) {
	assert.Nil(t, ApplyScenario(nil, ScenarioDelta{RevenueDelta: 10}))
}

func TestScenarioDelta_Validate(t *testing.T) {
	assert.NoError(t, ScenarioDelta{}.Validate())
	assert.NoError(t, ScenarioDelta{RevenueDelta: -50, MaterialDelta: 30, PersonnelDelta: -30, OtherCostDelta: 30}.Validate())

	assert.Error(t, ScenarioDelta{RevenueDelta: 51}.Validate())
	assert.Error(t, ScenarioDelta{MaterialDelta: -31}.Validate())
	assert.Error(t, ScenarioDelta{PersonnelDelta: 30.5}.Validate())
	assert.Error(t, ScenarioDelta{OtherCostDelta: 99}.Validate())
}

func TestBuiltInPresets(t *testing.T) {
	presets := BuiltInPresets()
	require.Len(t, presets, 3)

	byKey := map[string]ScenarioPreset{}
	for _, p := range presets {
		assert.True(t, p.BuiltIn)
		assert.NoError(t, p.Delta.Validate())
		byKey[p.Key] = p
	}

	assert.Equal(t, -25.0, byKey["worstCase"].Delta.RevenueDelta)
	assert.Equal(t, 20.0, byKey["bestCase"].Delta.RevenueDelta)
	assert.Equal(t, "Realistisch", byKey["realistic"].Label)
}
