package models

import "time"

// Meal is a single eaten meal with the nutrition snapshot captured when the
// user confirmed it. Rows are insert-only: a stored meal is never updated.
type Meal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
	Description string    `gorm:"not null" json:"description"`
	Kcal        float64   `gorm:"not null;default:0" json:"kcal"`
	ProteinG    float64   `gorm:"not null;default:0" json:"protein_g"`
	CarbsG      float64   `gorm:"not null;default:0" json:"carbs_g"`
	FatG        float64   `gorm:"not null;default:0" json:"fat_g"`
	CreatedAt   time.Time `json:"-"`
}
