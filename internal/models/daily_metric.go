package models

import "time"

// DayLayout is the storage format for calendar days across all tables.
const DayLayout = "2006-01-02"

// DailyMetric holds one calendar day of wearable data. Date is unique:
// importing the same day again replaces every metric field, it never merges.
type DailyMetric struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         string    `gorm:"size:10;uniqueIndex;not null" json:"date"`
	Steps        int       `gorm:"not null;default:0" json:"steps"`
	SleepHours   float64   `gorm:"not null;default:0" json:"sleep_hours"`
	DeepSleepMin int       `gorm:"not null;default:0" json:"deep_sleep_min"`
	MinHeartRate int       `gorm:"not null;default:0" json:"min_heart_rate"`
	MaxHeartRate int       `gorm:"not null;default:0" json:"max_heart_rate"`
	BodyWeight   float64   `gorm:"not null;default:0" json:"body_weight"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
