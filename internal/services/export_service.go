package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"vitale/internal/models"
)

const mealExportTimestampLayout = "2006-01-02 15:04:05"

// MealExportHeaders is the column order of a meal export.
var MealExportHeaders = []string{"timestamp", "description", "kcal", "protein_g", "carbs_g", "fat_g"}

// MetricExportReader is the slice of the metric repository exports read.
type MetricExportReader interface {
	ListAll() ([]models.DailyMetric, error)
}

// MealExportReader is the slice of the meal repository exports read.
type MealExportReader interface {
	ListAll() ([]models.Meal, error)
}

// ExportService writes the stored tables back out as CSV. A metric export
// uses the importer's preferred headers, so a file exported here re-imports
// without any fallback mapping.
type ExportService struct {
	metrics MetricExportReader
	meals   MealExportReader
}

func NewExportService(metrics MetricExportReader, meals MealExportReader) *ExportService {
	return &ExportService{metrics: metrics, meals: meals}
}

// MetricExportHeaders is the header row of a metric export, the preferred
// import headers in canonical field order.
func MetricExportHeaders() []string {
	headers := make([]string, 0, len(canonicalFields))
	for _, field := range canonicalFields {
		headers = append(headers, preferredHeaders[field])
	}
	return headers
}

// MetricsCSV renders every stored daily metric, ascending by date.
func (service *ExportService) MetricsCSV() ([]byte, error) {
	metrics, err := service.metrics.ListAll()
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(MetricExportHeaders()); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}
	for _, metric := range metrics {
		row := []string{
			metric.Date,
			strconv.Itoa(metric.Steps),
			formatExportFloat(metric.SleepHours),
			strconv.Itoa(metric.DeepSleepMin),
			strconv.Itoa(metric.MinHeartRate),
			strconv.Itoa(metric.MaxHeartRate),
			formatExportFloat(metric.BodyWeight),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush export: %w", err)
	}
	return output.Bytes(), nil
}

// MealsCSV renders every stored meal, ascending by timestamp.
func (service *ExportService) MealsCSV() ([]byte, error) {
	meals, err := service.meals.ListAll()
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(MealExportHeaders); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}
	for _, meal := range meals {
		row := []string{
			meal.Timestamp.Format(mealExportTimestampLayout),
			meal.Description,
			formatExportFloat(meal.Kcal),
			formatExportFloat(meal.ProteinG),
			formatExportFloat(meal.CarbsG),
			formatExportFloat(meal.FatG),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush export: %w", err)
	}
	return output.Bytes(), nil
}

func formatExportFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
