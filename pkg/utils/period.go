package utils

import (
	"fmt"
	"time"
)

// PeriodLayout is the canonical YYYY-MM key for one calendar month. It is
// both the storage key and the chronological sort key (lexicographic order
// equals time order).
const PeriodLayout = "2006-01"

// ParsePeriod validates a YYYY-MM period string and returns its canonical
// form.
func ParsePeriod(period string) (string, error) {
	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return "", fmt.Errorf("invalid period %q, expected YYYY-MM: %w", period, err)
	}

	return t.Format(PeriodLayout), nil
}
