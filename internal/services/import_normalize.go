package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"vitale/internal/models"
)

// dateTimeLayouts are the timestamp shapes seen in wearable exports. A value
// longer than a bare day tries these in order before the textual fallback.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"02/01/2006 15:04:05",
}

// NormalizeDate reduces a raw date cell to a YYYY-MM-DD day string. Values
// longer than ten characters are parsed as timestamps and reduced to their
// day; when no known layout matches, the first ten characters are kept as-is.
// The second return reports whether the result is a valid calendar day, so a
// false flags rows the textual fallback could not rescue.
func NormalizeDate(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if len(value) > 10 {
		parsed := false
		for _, layout := range dateTimeLayouts {
			if ts, err := time.Parse(layout, value); err == nil {
				value = ts.Format(models.DayLayout)
				parsed = true
				break
			}
		}
		if !parsed {
			value = value[:10]
		}
	}

	_, err := time.Parse(models.DayLayout, value)
	return value, err == nil
}

// NormalizeSleepHours interprets raw sleep readings above 24 as minutes and
// converts them to hours. Anything at or below 24 already is hours; a
// borderline 24 stays 24.
func NormalizeSleepHours(raw float64) float64 {
	if raw > 24 {
		return raw / 60
	}
	return raw
}

// CoerceFloat reads a numeric cell best-effort. Empty, unparseable, and
// non-finite values all collapse to zero rather than failing the row.
func CoerceFloat(raw string) float64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

// CoerceInt truncates the float reading of a cell, so "11523.0" steps
// become 11523.
func CoerceInt(raw string) int {
	return int(CoerceFloat(raw))
}
