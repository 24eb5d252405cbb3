package domain

// Settings is the per-installation configuration owned by the user: company
// master data, the Ampel threshold table and the API key the external report
// layer uses. The core never calls the report API itself.
type Settings struct {
	CompanyName  string     `json:"companyName"`
	Industry     string     `json:"industry"`
	Currency     string     `json:"currency"`
	ReportAPIKey string     `json:"reportApiKey,omitempty"`
	Thresholds   Thresholds `json:"thresholds"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() *Settings {
	return &Settings{
		Currency:   "€",
		Thresholds: DefaultThresholds(),
	}
}

// EffectiveThresholds returns the configured threshold table, falling back
// to the defaults when the settings carry none.
func (s *Settings) EffectiveThresholds() Thresholds {
	if s == nil || len(s.Thresholds) == 0 {
		return DefaultThresholds()
	}
	return s.Thresholds
}
