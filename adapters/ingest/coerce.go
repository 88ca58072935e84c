package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"

	"datalens/domain/table"
)

// missingMarkers are the cell spellings treated as the missing marker, after
// trimming and lowercasing.
var missingMarkers = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// dateFormats is the fixed set of accepted date/timestamp layouts. Order
// matters: the first layout that parses wins.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// CoerceCell deterministically converts one raw cell string into a typed
// value: missing marker, then number, then date, then text. Each cell is
// resolved exactly once here; everything downstream sees tagged values.
func CoerceCell(raw string) table.Value {
	cleaned := strings.TrimSpace(raw)
	if missingMarkers[strings.ToLower(cleaned)] {
		return table.NewMissingValue()
	}

	if n, ok := tryParseNumber(cleaned); ok {
		return table.NewNumberValue(n)
	}

	if t, ok := tryParseDate(cleaned); ok {
		return table.NewDateValue(t)
	}

	return table.NewTextValue(cleaned)
}

// tryParseNumber parses a numeric cell, tolerating accounting parentheses
// for negatives, common currency symbols, percent signs, and comma
// thousands separators.
func tryParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	cleaned := s
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "("), ")")
		negative = true
	}

	for _, symbol := range []string{"$", "€", "£", "¥"} {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	cleaned = strings.ReplaceAll(cleaned, "%", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}

	if negative {
		cleaned = "-" + cleaned
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// tryParseDate parses a date cell against the fixed format list.
func tryParseDate(s string) (time.Time, bool) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
