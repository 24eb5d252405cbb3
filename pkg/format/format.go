// Package format holds the locale-aware number formatting used across the
// dashboard, report summaries and anomaly messages. The output follows the
// German business convention (decimal comma, "T€"/"Mio. €" magnitude
// abbreviations) that the frontend renders verbatim.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder rendered for absent or non-finite values.
const Missing = "–"

var monthNames = [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}

// Currency formats a monetary amount, abbreviating to T€ above one thousand
// and Mio. € above one million.
func Currency(v float64) string {
	if !isFinite(v) {
		return Missing
	}

	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return decimalComma(v/1_000_000, 2) + " Mio. €"
	case abs >= 1_000:
		return decimalComma(v/1_000, 1) + " T€"
	default:
		return fmt.Sprintf("%.0f €", v)
	}
}

// Percent formats a percentage with one decimal place.
func Percent(v float64) string {
	if !isFinite(v) {
		return Missing
	}
	return decimalComma(v, 1) + " %"
}

// Number formats a plain number with thousands grouping and no decimals.
func Number(v float64) string {
	if !isFinite(v) {
		return Missing
	}
	return group(int64(math.Round(v)))
}

// Multiple formats a unitless multiple such as the capital turnover.
func Multiple(v float64) string {
	if !isFinite(v) {
		return Missing
	}
	return decimalComma(v, 2) + "×"
}

// Month renders a YYYY-MM period as a short label, e.g. "Sep 25".
func Month(period string) string {
	name, year, ok := splitPeriod(period)
	if !ok {
		return period
	}
	return fmt.Sprintf("%s %s", name, year[2:])
}

// MonthFull renders a YYYY-MM period with the full year, e.g. "Sep 2025".
func MonthFull(period string) string {
	name, year, ok := splitPeriod(period)
	if !ok {
		return period
	}
	return fmt.Sprintf("%s %s", name, year)
}

func splitPeriod(period string) (name, year string, ok bool) {
	parts := strings.SplitN(period, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 {
		return "", "", false
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return "", "", false
	}

	return monthNames[m-1], parts[0], true
}

func decimalComma(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	return strings.Replace(s, ".", ",", 1)
}

// group inserts a dot as thousands separator, de-DE style.
func group(n int64) string {
	s := strconv.FormatInt(n, 10)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
