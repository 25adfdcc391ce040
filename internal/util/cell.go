package util

import (
	"strconv"
	"strings"
)

// CellAt returns the trimmed cell at idx, or "" when the column is not
// declared (-1) or the row is shorter than the layout expects.
func CellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ToFloat parses a numeric cell, falling back to def for empty or
// malformed values. Negative and fractional values pass through unchanged.
func ToFloat(value string, def float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}
