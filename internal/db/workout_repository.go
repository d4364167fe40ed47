package db

import (
	"gorm.io/gorm"

	"vitale/internal/models"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) Create(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}

func (repo *WorkoutRepository) ListSinceDate(day string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Where("date >= ?", day).
		Order("date DESC, id DESC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}
