package services

import (
	"fmt"
	"io"

	"vitale/internal/models"
)

// MetricWriter is the slice of the metric repository the importer needs.
type MetricWriter interface {
	Upsert(metric *models.DailyMetric) (bool, error)
}

// InvalidDate reports one skipped row whose date cell survived neither
// timestamp parsing nor the textual fallback. Row is 1-based over the data
// rows, so row 1 is the line right under the header.
type InvalidDate struct {
	Row   int    `json:"row"`
	Value string `json:"value"`
}

// ImportReport summarizes one committed upload.
type ImportReport struct {
	Processed     int           `json:"processed"`
	Created       int           `json:"created"`
	Replaced      int           `json:"replaced"`
	SkippedNoDate int           `json:"skipped_no_date"`
	InvalidDates  []InvalidDate `json:"invalid_dates"`
}

// ImportService turns uploaded wearable exports into daily metric rows.
type ImportService struct {
	metrics MetricWriter
}

func NewImportService(metrics MetricWriter) *ImportService {
	return &ImportService{metrics: metrics}
}

// Stage parses an upload and resolves its columns without writing anything.
// The caller holds the returned table until the user confirms or abandons it.
func (service *ImportService) Stage(reader io.Reader) (*MetricTable, ColumnMapping, error) {
	table, err := ParseMetricTable(reader)
	if err != nil {
		return nil, nil, err
	}
	mapping, err := ResolveColumns(table)
	if err != nil {
		return nil, nil, err
	}
	return table, mapping, nil
}

// Commit normalizes every staged row and writes it keyed by calendar day.
// Rows the table has no date cell for are skipped silently; rows whose date
// cannot be validated are skipped and reported. Writes go row by row: a
// storage failure stops the batch and returns the report of what already
// landed together with the error, nothing is rolled back.
func (service *ImportService) Commit(table *MetricTable, mapping ColumnMapping) (*ImportReport, error) {
	report := &ImportReport{InvalidDates: []InvalidDate{}}

	dateHeader := mapping[FieldDate]
	for index, row := range table.Rows {
		rawDate, ok := table.Cell(row, dateHeader)
		if !ok {
			report.SkippedNoDate++
			continue
		}

		day, valid := NormalizeDate(rawDate)
		if !valid {
			report.InvalidDates = append(report.InvalidDates, InvalidDate{Row: index + 1, Value: rawDate})
			continue
		}

		metric := models.DailyMetric{
			Date:         day,
			Steps:        CoerceInt(table.CellValue(row, mapping[FieldSteps])),
			SleepHours:   NormalizeSleepHours(CoerceFloat(table.CellValue(row, mapping[FieldSleepHours]))),
			DeepSleepMin: CoerceInt(table.CellValue(row, mapping[FieldDeepSleepMin])),
			MinHeartRate: CoerceInt(table.CellValue(row, mapping[FieldMinHeartRate])),
			MaxHeartRate: CoerceInt(table.CellValue(row, mapping[FieldMaxHeartRate])),
			BodyWeight:   CoerceFloat(table.CellValue(row, mapping[FieldBodyWeight])),
		}

		created, err := service.metrics.Upsert(&metric)
		if err != nil {
			return report, fmt.Errorf("store metrics for %s: %w", day, err)
		}
		if created {
			report.Created++
		} else {
			report.Replaced++
		}
		report.Processed++
	}

	return report, nil
}
