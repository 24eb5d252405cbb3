package domain

import "fmt"

// Slider bounds of the scenario simulator, in percent.
const (
	MaxRevenueDeltaPercent = 50
	MaxCostDeltaPercent    = 30
)

// ScenarioDelta is a set of percentage adjustments applied to a baseline
// month. Deltas are signed and bounded by the slider ranges.
type ScenarioDelta struct {
	RevenueDelta   float64 `json:"revenueDelta"`
	MaterialDelta  float64 `json:"materialDelta"`
	PersonnelDelta float64 `json:"personnelDelta"`
	OtherCostDelta float64 `json:"otherCostDelta"`
}

// Validate checks the delta against the slider bounds.
func (d ScenarioDelta) Validate() error {
	if d.RevenueDelta < -MaxRevenueDeltaPercent || d.RevenueDelta > MaxRevenueDeltaPercent {
		return fmt.Errorf("revenue delta %.1f%% outside ±%d%%", d.RevenueDelta, MaxRevenueDeltaPercent)
	}

	for name, v := range map[string]float64{
		"material":   d.MaterialDelta,
		"personnel":  d.PersonnelDelta,
		"other cost": d.OtherCostDelta,
	} {
		if v < -MaxCostDeltaPercent || v > MaxCostDeltaPercent {
			return fmt.Errorf("%s delta %.1f%% outside ±%d%%", name, v, MaxCostDeltaPercent)
		}
	}

	return nil
}

// IsZero reports whether every delta is zero.
func (d ScenarioDelta) IsZero() bool {
	return d == ScenarioDelta{}
}

// ApplyScenario returns a copy of the baseline month with the percentage
// deltas applied to revenue and the three adjustable cost lines. Balance
// sheet fields pass through untouched: the simulation deliberately models no
// balance-sheet feedback, so liquidity and capital-structure ratios stay at
// their baseline values under any scenario.
func ApplyScenario(raw *RawMonthRecord, delta ScenarioDelta) *RawMonthRecord {
	if raw == nil {
		return nil
	}

	scenario := raw.Clone()
	scenario.Revenue = raw.Revenue * (1 + delta.RevenueDelta/100)
	scenario.MaterialExpense = raw.MaterialExpense * (1 + delta.MaterialDelta/100)
	scenario.PersonnelExpense = raw.PersonnelExpense * (1 + delta.PersonnelDelta/100)
	scenario.OtherExpense = raw.OtherExpense * (1 + delta.OtherCostDelta/100)

	return scenario
}

// ScenarioPreset is a named, persisted ScenarioDelta.
type ScenarioPreset struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Delta   ScenarioDelta `json:"delta"`
	BuiltIn bool          `json:"builtIn,omitempty"`
}

// BuiltInPresets returns the three presets every installation ships with.
func BuiltInPresets() []ScenarioPreset {
	return []ScenarioPreset{
		{
			Key:     "bestCase",
			Label:   "Best Case",
			Delta:   ScenarioDelta{RevenueDelta: 20, MaterialDelta: -10, PersonnelDelta: 0, OtherCostDelta: -5},
			BuiltIn: true,
		},
		{
			Key:     "worstCase",
			Label:   "Worst Case",
			Delta:   ScenarioDelta{RevenueDelta: -25, MaterialDelta: 15, PersonnelDelta: 5, OtherCostDelta: 10},
			BuiltIn: true,
		},
		{
			Key:     "realistic",
			Label:   "Realistisch",
			Delta:   ScenarioDelta{RevenueDelta: 5, MaterialDelta: 3, PersonnelDelta: 2, OtherCostDelta: 1},
			BuiltIn: true,
		},
	}
}
