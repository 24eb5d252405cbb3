package domain

// AmpelStatus is the traffic-light classification attached to a KPI tile at
// presentation time.
type AmpelStatus string

const (
	AmpelGreen  AmpelStatus = "green"
	AmpelYellow AmpelStatus = "yellow"
	AmpelRed    AmpelStatus = "red"
)

// Threshold holds the green/yellow boundaries for one KPI. For inverted
// metrics lower values are better and the comparison direction flips.
type Threshold struct {
	Green    float64 `json:"green"`
	Yellow   float64 `json:"yellow"`
	Inverted bool    `json:"inverted,omitempty"`
}

// Thresholds is the per-metric threshold table, user-overridable via
// settings.
type Thresholds map[string]Threshold

// MetricRevenue is classified against percent-of-plan instead of its
// absolute value whenever a plan figure is available.
const MetricRevenue = "revenue"

// DefaultThresholds returns the built-in threshold table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MetricRevenue:        {Green: 100, Yellow: 90}, // percent of plan
		"ebit":               {Green: 0.01, Yellow: 0},
		"ebitMargin":         {Green: 10, Yellow: 5},
		"liquidity2":         {Green: 120, Yellow: 100},
		"equityRatio":        {Green: 30, Yellow: 20},
		"operatingCashflow":  {Green: 0.01, Yellow: 0},
		"personnelCostRatio": {Green: 30, Yellow: 40, Inverted: true},
		"returnOnSales":      {Green: 5, Yellow: 2},
	}
}

// Classify maps a KPI value to its traffic-light status. Metrics without a
// configured threshold classify green (fail open: an unknown tile shows no
// alarm rather than a false one). planValue only applies to the revenue
// metric and is ignored when zero.
func Classify(metricKey string, value, planValue float64, thresholds Thresholds) AmpelStatus {
	t, ok := thresholds[metricKey]
	if !ok {
		return AmpelGreen
	}

	if metricKey == MetricRevenue && planValue != 0 {
		pct := value / planValue * 100
		return gradeAscending(pct, t)
	}

	if t.Inverted {
		switch {
		case value <= t.Green:
			return AmpelGreen
		case value <= t.Yellow:
			return AmpelYellow
		default:
			return AmpelRed
		}
	}

	return gradeAscending(value, t)
}

func gradeAscending(value float64, t Threshold) AmpelStatus {
	switch {
	case value >= t.Green:
		return AmpelGreen
	case value >= t.Yellow:
		return AmpelYellow
	default:
		return AmpelRed
	}
}
