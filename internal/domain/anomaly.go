package domain

// AnomalySeverity grades a finding from informational to critical.
type AnomalySeverity string

const (
	SeverityInfo     AnomalySeverity = "info"
	SeverityWarning  AnomalySeverity = "warning"
	SeverityCritical AnomalySeverity = "critical"
)

// Anomaly is one finding of a detection pass over the record series. It is
// ephemeral: regenerated on every data change, never persisted.
type Anomaly struct {
	Severity  AnomalySeverity `json:"severity"`
	MetricKey string          `json:"metricKey"`
	Message   string          `json:"message"`

	// Favorable is a presentation hint: a revenue above its average is
	// growth, a cost above its average is an overrun. It does not affect
	// severity.
	Favorable bool `json:"favorable"`
}
