package db

import "gorm.io/gorm"

type Repositories struct {
	Meals    *MealRepository
	Metrics  *DailyMetricRepository
	Workouts *WorkoutRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Meals:    NewMealRepository(database),
		Metrics:  NewDailyMetricRepository(database),
		Workouts: NewWorkoutRepository(database),
	}
}
