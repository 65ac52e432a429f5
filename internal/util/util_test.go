package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCapitalizeWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phrase   string
		expected string
	}{
		{name: "lower case words", phrase: "12 main street", expected: "12 Main Street"},
		{name: "keeps inner capitals", phrase: "mcDonald road", expected: "McDonald Road"},
		{name: "trims surrounding space", phrase: "  new york ", expected: "New York"},
		{name: "empty", phrase: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CapitalizeWords(tt.phrase); got != tt.expected {
				t.Fatalf("CapitalizeWords(%q) = %q, want %q", tt.phrase, got, tt.expected)
			}
		})
	}
}

func TestCapitalizeWordsPtr(t *testing.T) {
	t.Parallel()

	if got := CapitalizeWordsPtr(nil); got != nil {
		t.Fatalf("CapitalizeWordsPtr(nil) = %q, want nil", *got)
	}

	line := "suite 4"
	if got := CapitalizeWordsPtr(&line); got == nil || *got != "Suite 4" {
		t.Fatalf("CapitalizeWordsPtr(%q) = %v, want Suite 4", line, got)
	}
}

func TestFormatPriceRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		minPrice string
		maxPrice string
		expected string
	}{
		{name: "single price", minPrice: "10", maxPrice: "10", expected: "$10"},
		{name: "equal with different scale", minPrice: "10.00", maxPrice: "10", expected: "$10"},
		{name: "range", minPrice: "10", maxPrice: "50", expected: "$10 - $50"},
		{name: "fractional range", minPrice: "2.50", maxPrice: "199.99", expected: "$2.5 - $199.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatPriceRange(decimal.RequireFromString(tt.minPrice), decimal.RequireFromString(tt.maxPrice))
			if got != tt.expected {
				t.Fatalf("FormatPriceRange(%s, %s) = %s, want %s", tt.minPrice, tt.maxPrice, got, tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
