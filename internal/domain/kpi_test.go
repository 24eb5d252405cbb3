package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleMonth mirrors a typical mid-size industrial supplier month.
func sampleMonth() *RawMonthRecord {
	return &RawMonthRecord{
		Period:               "2024-01",
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

func TestComputeKPIs(t *testing.T) {
	k := ComputeKPIs(sampleMonth())
	require.NotNil(t, k)

	assert.Equal(t, 754000.0, k.TotalCosts)
	assert.Equal(t, 138000.0, k.EBIT)
	assert.Equal(t, 126000.0, k.NetResult)
	assert.InDelta(t, 15.6818, k.EBITMargin, 0.001)
	assert.InDelta(t, 14.3181, k.ReturnOnSales, 0.001)
	assert.InDelta(t, 30.1136, k.PersonnelCostRatio, 0.001)

	assert.Equal(t, 910000.0, k.CurrentAssets)
	assert.Equal(t, 1620000.0, k.TotalAssets)
	assert.Equal(t, 770000.0, k.TotalDebt)
	assert.InDelta(t, 144.8275, k.Liquidity1, 0.001)
	assert.InDelta(t, 251.7241, k.Liquidity2, 0.001)
	assert.InDelta(t, 313.7931, k.Liquidity3, 0.001)

	assert.InDelta(t, 52.4691, k.EquityRatio, 0.001)
	assert.InDelta(t, 47.5308, k.DebtRatio, 0.001)
	assert.InDelta(t, 90.5882, k.DebtToEquity, 0.001)
	assert.InDelta(t, 119.7183, k.FixedAssetCoverage1, 0.001)
	assert.InDelta(t, 187.3239, k.FixedAssetCoverage2, 0.001)

	assert.Equal(t, 180000.0, k.OperatingCashflow)
	assert.Equal(t, 620000.0, k.WorkingCapital)
	assert.InDelta(t, 0.5432, k.CapitalTurnover, 0.001)
	assert.InDelta(t, 7.7777, k.ReturnOnInvestment, 0.001)
}

func TestComputeKPIs_NilInput(t *testing.T) {
	assert.Nil(t, ComputeKPIs(nil))
}

// Net result must equal revenue minus the full cost stack, and EBIT must
// exceed it by exactly the interest expense. The two metrics must never
// collapse into one.
func TestComputeKPIs_AccountingIdentities(t *testing.T) {
	records := []*RawMonthRecord{
		sampleMonth(),
		{Period: "2024-02", Revenue: 100, InterestExpense: 30},
		{Period: "2024-03"},
		{Period: "2024-04", Revenue: 500000, MaterialExpense: 600000, InterestExpense: 9000},
	}

	for _, r := range records {
		k := ComputeKPIs(r)
		expectedNet := r.Revenue - (r.MaterialExpense + r.PersonnelExpense + r.OtherExpense + r.Depreciation + r.InterestExpense)
		assert.Equal(t, expectedNet, k.NetResult, "period %s", r.Period)
		assert.Equal(t, r.InterestExpense, k.EBIT-k.NetResult, "period %s", r.Period)
	}
}

func TestComputeKPIs_ZeroRevenue(t *testing.T) {
	r := sampleMonth()
	r.Revenue = 0

	k := ComputeKPIs(r)

	assert.Equal(t, 0.0, k.EBITMargin)
	assert.Equal(t, 0.0, k.ReturnOnSales)
	assert.Equal(t, 0.0, k.PersonnelCostRatio)
	assert.False(t, math.IsNaN(k.CapitalTurnover))
}

func TestComputeKPIs_AllZeroRecord(t *testing.T) {
	k := ComputeKPIs(&RawMonthRecord{Period: "2024-06"})

	// Short-term liabilities substitute 1, everything else guards to zero.
	assert.Equal(t, 0.0, k.Liquidity1)
	assert.Equal(t, 0.0, k.EquityRatio)
	assert.Equal(t, 0.0, k.DebtToEquity)
	assert.Equal(t, 0.0, k.FixedAssetCoverage1)
	assert.Equal(t, 1.0, k.TotalDebt)
	assert.Equal(t, -1.0, k.WorkingCapital)

	assert.False(t, math.IsNaN(k.DebtRatio))
	assert.False(t, math.IsInf(k.Liquidity3, 0))
}

func TestComputeKPIs_LiquidityMonotonicity(t *testing.T) {
	tests := []struct {
		name string
		rec  *RawMonthRecord
	}{
		{name: "typical month", rec: sampleMonth()},
		{name: "no inventory", rec: &RawMonthRecord{Period: "2025-01", Cash: 100, ShortTermReceivables: 50, ShortTermLiabilities: 80}},
		{name: "zero liabilities", rec: &RawMonthRecord{Period: "2025-02", Cash: 10, Inventory: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := ComputeKPIs(tt.rec)
			assert.GreaterOrEqual(t, k.Liquidity3, k.Liquidity2)
			assert.GreaterOrEqual(t, k.Liquidity2, k.Liquidity1)
		})
	}
}

func TestComputeKPIs_ZeroShortTermLiabilitiesSubstitutesOne(t *testing.T) {
	r := sampleMonth()
	r.ShortTermLiabilities = 0

	k := ComputeKPIs(r)

	// Denominator 1: liquidity1 becomes cash × 100.
	assert.Equal(t, 42000000.0, k.Liquidity1)
	assert.Equal(t, 909999.0, k.WorkingCapital)
}

func TestComputeKPISeries_CompactsNils(t *testing.T) {
	series := ComputeKPISeries([]*RawMonthRecord{sampleMonth(), nil, {Period: "2024-02", Revenue: 1}})

	assert.Len(t, series, 2)
	assert.Equal(t, "2024-01", series[0].Period)
	assert.Equal(t, "2024-02", series[1].Period)
}

func TestRawMonthRecord_Normalize(t *testing.T) {
	r := &RawMonthRecord{Period: "2024-05", Revenue: 1000, MaterialExpense: -400, Depreciation: -10}
	r.Normalize()

	assert.Equal(t, 400.0, r.MaterialExpense)
	assert.Equal(t, 10.0, r.Depreciation)
	assert.Equal(t, 1000.0, r.Revenue)
}
