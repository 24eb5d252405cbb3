package domain

// WaterfallStepKind distinguishes flow steps from the closing total bar.
type WaterfallStepKind string

const (
	StepFlow          WaterfallStepKind = "flow"
	StepTotalPositive WaterfallStepKind = "totalPositive"
	StepTotalNegative WaterfallStepKind = "totalNegative"
)

// WaterfallStep is one bar of the revenue-to-result bridge. Flow steps carry
// signed increments; the final step carries the net result rendered as a
// full bar from zero.
type WaterfallStep struct {
	Label string            `json:"label"`
	Value float64           `json:"value"`
	Kind  WaterfallStepKind `json:"kind"`
}

// BuildWaterfall decomposes one month into the fixed seven-step bridge from
// revenue to net result. The six flow steps sum exactly to the final total.
func BuildWaterfall(kpi *DerivedKPIRecord) []WaterfallStep {
	if kpi == nil {
		return nil
	}

	resultKind := StepTotalPositive
	if kpi.NetResult < 0 {
		resultKind = StepTotalNegative
	}

	return []WaterfallStep{
		{Label: "Umsatz", Value: kpi.Revenue, Kind: StepFlow},
		{Label: "Material", Value: -kpi.MaterialExpense, Kind: StepFlow},
		{Label: "Personal", Value: -kpi.PersonnelExpense, Kind: StepFlow},
		{Label: "Sonstiges", Value: -kpi.OtherExpense, Kind: StepFlow},
		{Label: "AfA", Value: -kpi.Depreciation, Kind: StepFlow},
		{Label: "Zinsen", Value: -kpi.InterestExpense, Kind: StepFlow},
		{Label: "Ergebnis", Value: kpi.NetResult, Kind: resultKind},
	}
}
