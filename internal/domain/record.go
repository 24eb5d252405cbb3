package domain

// RawMonthRecord is one calendar month of source financial data as produced
// by the (external) import layer. Every numeric field defaults to zero when
// absent; the import contract guarantees only that Period and Revenue are
// present and that cost fields are non-negative.
type RawMonthRecord struct {
	// Period is the unique YYYY-MM key of the month. Lexicographic order
	// equals chronological order.
	Period string `json:"period"`

	// Income statement inputs
	Revenue          float64 `json:"revenue"`
	RevenuePlan      float64 `json:"revenuePlan,omitempty"`
	MaterialExpense  float64 `json:"materialExpense"`
	PersonnelExpense float64 `json:"personnelExpense"`
	OtherExpense     float64 `json:"otherExpense"`
	Depreciation     float64 `json:"depreciation"`
	InterestExpense  float64 `json:"interestExpense"`

	// Balance sheet inputs
	Cash                 float64 `json:"cash"`
	ShortTermReceivables float64 `json:"shortTermReceivables"`
	Inventory            float64 `json:"inventory"`
	ShortTermLiabilities float64 `json:"shortTermLiabilities"`
	LongTermLiabilities  float64 `json:"longTermLiabilities"`
	Equity               float64 `json:"equity"`
	FixedAssets          float64 `json:"fixedAssets"`

	// Optional revenue segments
	RevenueSegmentA float64 `json:"revenueSegmentA,omitempty"`
	RevenueSegmentB float64 `json:"revenueSegmentB,omitempty"`
	RevenueSegmentC float64 `json:"revenueSegmentC,omitempty"`
}

// ShortTermLiabilitiesSafe returns the short-term liabilities with zero
// substituted by one. All liquidity ratios and the working capital share
// this denominator so that an all-zero month degrades instead of producing
// Inf/NaN.
func (r *RawMonthRecord) ShortTermLiabilitiesSafe() float64 {
	if r.ShortTermLiabilities == 0 {
		return 1
	}
	return r.ShortTermLiabilities
}

// Clone returns a copy of the record.
func (r *RawMonthRecord) Clone() *RawMonthRecord {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

// Normalize enforces the import contract on a record: cost fields are never
// negative. Manual exports occasionally carry negated cost figures.
func (r *RawMonthRecord) Normalize() {
	for _, f := range []*float64{
		&r.MaterialExpense,
		&r.PersonnelExpense,
		&r.OtherExpense,
		&r.Depreciation,
		&r.InterestExpense,
	} {
		if *f < 0 {
			*f = -*f
		}
	}
}
