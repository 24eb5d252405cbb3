package domain

// ReportKPI is one formatted figure of a report summary.
type ReportKPI struct {
	Key       string      `json:"key"`
	Label     string      `json:"label"`
	Value     float64     `json:"value"`
	Formatted string      `json:"formatted"`
	Status    AmpelStatus `json:"status"`
}

// ReportSummary is the numeric block handed to the external report/AI layer.
// It is plain serializable data; prompt construction and document assembly
// happen outside this service.
type ReportSummary struct {
	Period      string      `json:"period"`
	PeriodLabel string      `json:"periodLabel"`
	CompanyName string      `json:"companyName,omitempty"`
	Industry    string      `json:"industry,omitempty"`
	KPIs        []ReportKPI `json:"kpis"`
	Anomalies   []string    `json:"anomalies"`
}
