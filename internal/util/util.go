package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CapitalizeWords upper-cases the first letter of every word and leaves the rest untouched.
func CapitalizeWords(phrase string) string {
	return cases.Title(language.Und, cases.NoLower).String(strings.TrimSpace(phrase))
}

// CapitalizeWordsPtr applies CapitalizeWords to an optional value.
func CapitalizeWordsPtr(phrase *string) *string {
	if phrase == nil {
		return nil
	}

	capitalized := CapitalizeWords(*phrase)

	return &capitalized
}

// FormatPriceRange renders "$min" when both ends match and "$min - $max" otherwise.
func FormatPriceRange(minPrice, maxPrice decimal.Decimal) string {
	if minPrice.Equal(maxPrice) {
		return "$" + minPrice.String()
	}

	return "$" + minPrice.String() + " - $" + maxPrice.String()
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
