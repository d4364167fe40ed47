package models

import "time"

type Workout struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"size:10;not null;index" json:"date"`
	SportType   string    `gorm:"not null" json:"sport_type"`
	DurationMin int       `gorm:"not null;default:0" json:"duration_min"`
	KcalBurned  float64   `gorm:"not null;default:0" json:"kcal_burned"`
	CreatedAt   time.Time `json:"-"`
}
