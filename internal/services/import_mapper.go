package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Canonical metric field names. A ColumnMapping keys on these.
const (
	FieldDate         = "date"
	FieldSteps        = "steps"
	FieldSleepHours   = "sleep_hours"
	FieldDeepSleepMin = "deep_sleep_min"
	FieldMinHeartRate = "min_heart_rate"
	FieldMaxHeartRate = "max_heart_rate"
	FieldBodyWeight   = "body_weight"
)

var (
	ErrEmptyFile           = errors.New("file has no header row")
	ErrNoRecognizedColumns = errors.New("no recognized columns in file")
)

// preferredHeaders maps each canonical field to the header name the wearable
// export usually carries for it.
var preferredHeaders = map[string]string{
	FieldDate:         "date",
	FieldSteps:        "steps",
	FieldSleepHours:   "totalSleep",
	FieldDeepSleepMin: "deepSleep",
	FieldMinHeartRate: "minHeartRate",
	FieldMaxHeartRate: "maxHeartRate",
	FieldBodyWeight:   "weight",
}

// canonicalFields fixes a stable order for reporting resolved columns.
var canonicalFields = []string{
	FieldDate,
	FieldSteps,
	FieldSleepHours,
	FieldDeepSleepMin,
	FieldMinHeartRate,
	FieldMaxHeartRate,
	FieldBodyWeight,
}

// MetricTable is a parsed tabular upload: the header row plus the data rows
// beneath it. Rows may be ragged, a short row simply lacks the trailing cells.
type MetricTable struct {
	Headers []string
	Rows    [][]string

	columns map[string]int
}

// ParseMetricTable reads a CSV upload into memory. The first record is taken
// as the header row. When two columns share a header the leftmost one wins.
func ParseMetricTable(reader io.Reader) (*MetricTable, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	headers := records[0]
	columns := make(map[string]int, len(headers))
	for index, header := range headers {
		name := strings.TrimSpace(header)
		if _, seen := columns[name]; !seen {
			columns[name] = index
		}
	}

	return &MetricTable{Headers: headers, Rows: records[1:], columns: columns}, nil
}

// HasHeader reports whether the table carries the named column.
func (table *MetricTable) HasHeader(header string) bool {
	_, ok := table.columns[header]
	return ok
}

// Cell returns the trimmed value under the named header for one row. The
// second return is false when the header is unknown or the row is too short
// to reach it.
func (table *MetricTable) Cell(row []string, header string) (string, bool) {
	index, ok := table.columns[header]
	if !ok || index >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[index]), true
}

// CellValue is Cell with absent cells collapsed to the empty string.
func (table *MetricTable) CellValue(row []string, header string) string {
	value, _ := table.Cell(row, header)
	return value
}

// ColumnMapping resolves canonical field names to the headers of a concrete
// upload. Fields whose header is missing from the table stay in the mapping;
// reads through them come back absent and coerce to zero downstream.
type ColumnMapping map[string]string

// ResolveColumns matches the preferred headers against a parsed table. Only
// the date field gets a fallback: when no column is literally named "date",
// the first header containing "date" or "time" (case-insensitive, in file
// order) is adopted instead. When not a single field resolves to a real
// column the upload is rejected with ErrNoRecognizedColumns.
func ResolveColumns(table *MetricTable) (ColumnMapping, error) {
	mapping := make(ColumnMapping, len(preferredHeaders))
	for field, header := range preferredHeaders {
		mapping[field] = header
	}

	if !table.HasHeader(mapping[FieldDate]) {
		for _, header := range table.Headers {
			name := strings.ToLower(strings.TrimSpace(header))
			if strings.Contains(name, "date") || strings.Contains(name, "time") {
				mapping[FieldDate] = strings.TrimSpace(header)
				break
			}
		}
	}

	for _, header := range mapping {
		if table.HasHeader(header) {
			return mapping, nil
		}
	}
	return nil, ErrNoRecognizedColumns
}

// RecognizedColumns lists the headers the mapping actually found in the
// table, in canonical field order. This is what an import preview shows.
func RecognizedColumns(table *MetricTable, mapping ColumnMapping) []string {
	recognized := make([]string, 0, len(canonicalFields))
	for _, field := range canonicalFields {
		if header := mapping[field]; table.HasHeader(header) {
			recognized = append(recognized, header)
		}
	}
	return recognized
}
