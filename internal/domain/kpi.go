package domain

// DerivedKPIRecord is the full set of controlling metrics computed from one
// RawMonthRecord. It is derived fresh on every read, never persisted and
// never mutated after creation.
type DerivedKPIRecord struct {
	RawMonthRecord

	// Profitability
	EBIT               float64 `json:"ebit"`
	NetResult          float64 `json:"netResult"`
	EBITMargin         float64 `json:"ebitMargin"`
	ReturnOnSales      float64 `json:"returnOnSales"`
	PersonnelCostRatio float64 `json:"personnelCostRatio"`
	ReturnOnInvestment float64 `json:"returnOnInvestment"`
	CapitalTurnover    float64 `json:"capitalTurnover"`

	// Liquidity (percent of short-term liabilities)
	Liquidity1 float64 `json:"liquidity1"`
	Liquidity2 float64 `json:"liquidity2"`
	Liquidity3 float64 `json:"liquidity3"`

	// Capital structure
	EquityRatio         float64 `json:"equityRatio"`
	DebtRatio           float64 `json:"debtRatio"`
	DebtToEquity        float64 `json:"debtToEquity"`
	FixedAssetCoverage1 float64 `json:"fixedAssetCoverage1"`
	FixedAssetCoverage2 float64 `json:"fixedAssetCoverage2"`

	// Aggregates
	TotalCosts        float64 `json:"totalCosts"`
	TotalAssets       float64 `json:"totalAssets"`
	CurrentAssets     float64 `json:"currentAssets"`
	TotalDebt         float64 `json:"totalDebt"`
	OperatingCashflow float64 `json:"operatingCashflow"`
	WorkingCapital    float64 `json:"workingCapital"`
}

// ComputeKPIs derives the full KPI record for one month. It is a pure
// function: nil in, nil out, never panics, every division guarded.
func ComputeKPIs(raw *RawMonthRecord) *DerivedKPIRecord {
	if raw == nil {
		return nil
	}

	k := &DerivedKPIRecord{RawMonthRecord: *raw}

	k.TotalCosts = raw.MaterialExpense + raw.PersonnelExpense + raw.OtherExpense + raw.Depreciation + raw.InterestExpense

	// EBIT subtracts the full cost stack and adds interest back; the net
	// result keeps interest in. The two differ by exactly InterestExpense
	// and must never collapse into one metric.
	k.EBIT = raw.Revenue - k.TotalCosts + raw.InterestExpense
	k.NetResult = raw.Revenue - k.TotalCosts

	k.EBITMargin = ratio(k.EBIT, raw.Revenue) * 100
	k.ReturnOnSales = ratio(k.NetResult, raw.Revenue) * 100
	k.PersonnelCostRatio = ratio(raw.PersonnelExpense, raw.Revenue) * 100

	stlSafe := raw.ShortTermLiabilitiesSafe()
	k.CurrentAssets = raw.Cash + raw.ShortTermReceivables + raw.Inventory
	k.TotalAssets = raw.FixedAssets + k.CurrentAssets
	k.TotalDebt = stlSafe + raw.LongTermLiabilities

	k.Liquidity1 = raw.Cash / stlSafe * 100
	k.Liquidity2 = (raw.Cash + raw.ShortTermReceivables) / stlSafe * 100
	k.Liquidity3 = k.CurrentAssets / stlSafe * 100

	k.EquityRatio = ratio(raw.Equity, k.TotalAssets) * 100
	k.DebtRatio = ratio(k.TotalDebt, k.TotalAssets) * 100
	k.DebtToEquity = ratio(k.TotalDebt, raw.Equity) * 100
	k.FixedAssetCoverage1 = ratio(raw.Equity, raw.FixedAssets) * 100
	k.FixedAssetCoverage2 = ratio(raw.Equity+raw.LongTermLiabilities, raw.FixedAssets) * 100

	k.OperatingCashflow = k.EBIT + raw.Depreciation
	k.WorkingCapital = k.CurrentAssets - stlSafe

	// DuPont: ROI = return on sales × capital turnover.
	k.CapitalTurnover = ratio(raw.Revenue, k.TotalAssets)
	k.ReturnOnInvestment = ratio(k.NetResult, k.TotalAssets) * 100

	return k
}

// ComputeKPISeries derives KPIs for every record in the series, dropping
// nils.
func ComputeKPISeries(records []*RawMonthRecord) []*DerivedKPIRecord {
	series := make([]*DerivedKPIRecord, 0, len(records))
	for _, r := range records {
		if k := ComputeKPIs(r); k != nil {
			series = append(series, k)
		}
	}
	return series
}

// ratio returns num/den with a zero denominator yielding zero.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
