package db

import (
	"gorm.io/gorm"

	"vitale/internal/models"
)

type DailyMetricRepository struct {
	database *gorm.DB
}

func NewDailyMetricRepository(database *gorm.DB) *DailyMetricRepository {
	return &DailyMetricRepository{database: database}
}

func (repo *DailyMetricRepository) FindByDate(day string) (models.DailyMetric, bool, error) {
	metric := models.DailyMetric{}
	result := repo.database.Where("date = ?", day).Limit(1).Find(&metric)
	if result.Error != nil {
		return models.DailyMetric{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMetric{}, false, nil
	}
	return metric, true, nil
}

// Upsert stores the metrics for metric.Date. An existing row for that day has
// every metric field replaced, never merged. It reports whether a new row was
// created.
func (repo *DailyMetricRepository) Upsert(metric *models.DailyMetric) (bool, error) {
	existing, found, err := repo.FindByDate(metric.Date)
	if err != nil {
		return false, err
	}
	if !found {
		return true, repo.database.Create(metric).Error
	}

	existing.Steps = metric.Steps
	existing.SleepHours = metric.SleepHours
	existing.DeepSleepMin = metric.DeepSleepMin
	existing.MinHeartRate = metric.MinHeartRate
	existing.MaxHeartRate = metric.MaxHeartRate
	existing.BodyWeight = metric.BodyWeight
	if err := repo.database.Save(&existing).Error; err != nil {
		return false, err
	}
	*metric = existing
	return false, nil
}

func (repo *DailyMetricRepository) ListAll() ([]models.DailyMetric, error) {
	metrics := make([]models.DailyMetric, 0)
	if err := repo.database.
		Order("date ASC, id ASC").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (repo *DailyMetricRepository) ListSinceDate(day string) ([]models.DailyMetric, error) {
	metrics := make([]models.DailyMetric, 0)
	if err := repo.database.
		Where("date >= ?", day).
		Order("date ASC, id ASC").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (repo *DailyMetricRepository) LatestWithBodyWeight() (models.DailyMetric, bool, error) {
	metric := models.DailyMetric{}
	result := repo.database.
		Where("body_weight > 0").
		Order("date DESC, id DESC").
		Limit(1).
		Find(&metric)
	if result.Error != nil {
		return models.DailyMetric{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMetric{}, false, nil
	}
	return metric, true, nil
}

type sleepAverageRow struct {
	AvgHours   float64 `gorm:"column:avg_hours"`
	SampleDays int64   `gorm:"column:sample_days"`
}

func (repo *DailyMetricRepository) AverageSleepSince(day string) (float64, int64, error) {
	row := sleepAverageRow{}
	if err := repo.database.Model(&models.DailyMetric{}).
		Select("COALESCE(AVG(sleep_hours), 0) AS avg_hours, COUNT(*) AS sample_days").
		Where("date >= ?", day).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.AvgHours, row.SampleDays, nil
}
