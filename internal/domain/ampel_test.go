package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		name     string
		metric   string
		value    float64
		plan     float64
		expected AmpelStatus
	}{
		{name: "ebitMargin at green boundary", metric: "ebitMargin", value: 10, expected: AmpelGreen},
		{name: "ebitMargin between boundaries", metric: "ebitMargin", value: 7, expected: AmpelYellow},
		{name: "ebitMargin below yellow", metric: "ebitMargin", value: 2, expected: AmpelRed},
		{name: "ebit barely positive", metric: "ebit", value: 0.01, expected: AmpelGreen},
		{name: "ebit zero", metric: "ebit", value: 0, expected: AmpelYellow},
		{name: "ebit negative", metric: "ebit", value: -1, expected: AmpelRed},
		{name: "liquidity2 healthy", metric: "liquidity2", value: 135, expected: AmpelGreen},
		{name: "liquidity2 strained", metric: "liquidity2", value: 101, expected: AmpelYellow},
		{name: "liquidity2 critical", metric: "liquidity2", value: 80, expected: AmpelRed},

		// Inverted metric: lower personnel cost ratio is better.
		{name: "personnel ratio low", metric: "personnelCostRatio", value: 25, expected: AmpelGreen},
		{name: "personnel ratio mid", metric: "personnelCostRatio", value: 35, expected: AmpelYellow},
		{name: "personnel ratio high", metric: "personnelCostRatio", value: 45, expected: AmpelRed},

		// Revenue classifies against percent of plan when available.
		{name: "revenue on plan", metric: "revenue", value: 1000000, plan: 1000000, expected: AmpelGreen},
		{name: "revenue at 92% of plan", metric: "revenue", value: 920000, plan: 1000000, expected: AmpelYellow},
		{name: "revenue at 85% of plan", metric: "revenue", value: 850000, plan: 1000000, expected: AmpelRed},
		// Without a plan the absolute thresholds apply.
		{name: "revenue without plan", metric: "revenue", value: 920000, expected: AmpelGreen},

		// Unknown metrics fail open.
		{name: "unknown metric", metric: "somethingElse", value: -99, expected: AmpelGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.metric, tt.value, tt.plan, thresholds))
		})
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	custom := Thresholds{"ebitMargin": {Green: 15, Yellow: 8}}

	assert.Equal(t, AmpelYellow, Classify("ebitMargin", 10, 0, custom))
	// Metrics absent from a custom table fail open, including ones the
	// default table would grade.
	assert.Equal(t, AmpelGreen, Classify("liquidity2", 10, 0, custom))
}
