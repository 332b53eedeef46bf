package parser

import (
	"strconv"
	"strings"
)

// NormalizeValue normalizes a raw cell value: trimmed, with empty or missing
// values collapsed to the "-" sentinel.
func NormalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	return value
}

// ParseNumber parses a numeric cell value. Thousands-separator commas are
// stripped; anything unparseable (or empty) yields 0.
func ParseNumber(value string) float64 {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if value == "" {
		return 0
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return n
}
