package services

import (
	"errors"
	"strings"
	"time"

	"vitale/internal/models"
)

const defaultWorkoutWindowDays = 30

var (
	ErrInvalidWorkoutDate = errors.New("workout date must be a valid YYYY-MM-DD day")
	ErrSportTypeRequired  = errors.New("sport type is required")
)

// WorkoutStore is the slice of the workout repository this service needs.
type WorkoutStore interface {
	Create(workout *models.Workout) error
	ListSinceDate(day string) ([]models.Workout, error)
}

// WorkoutInput is one manually entered training session.
type WorkoutInput struct {
	Date        string  `json:"date"`
	SportType   string  `json:"sport_type"`
	DurationMin int     `json:"duration_min"`
	KcalBurned  float64 `json:"kcal_burned"`
}

// WorkoutService records manual training entries and lists them back.
type WorkoutService struct {
	workouts WorkoutStore
	location *time.Location
}

func NewWorkoutService(workouts WorkoutStore, location *time.Location) *WorkoutService {
	if location == nil {
		location = time.Local
	}
	return &WorkoutService{workouts: workouts, location: location}
}

// LogWorkout validates and stores one session. The day must be a real
// calendar day and the sport must be named; the numeric fields are taken
// as given.
func (service *WorkoutService) LogWorkout(input WorkoutInput) (models.Workout, error) {
	day := strings.TrimSpace(input.Date)
	if _, err := time.Parse(models.DayLayout, day); err != nil {
		return models.Workout{}, ErrInvalidWorkoutDate
	}
	sport := strings.TrimSpace(input.SportType)
	if sport == "" {
		return models.Workout{}, ErrSportTypeRequired
	}

	workout := models.Workout{
		Date:        day,
		SportType:   sport,
		DurationMin: input.DurationMin,
		KcalBurned:  input.KcalBurned,
	}
	if err := service.workouts.Create(&workout); err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

// RecentWorkouts lists sessions from the trailing window, newest first.
func (service *WorkoutService) RecentWorkouts(now time.Time, days int) ([]models.Workout, error) {
	if days <= 0 {
		days = defaultWorkoutWindowDays
	}
	day := DateAtLocation(now, service.location).AddDate(0, 0, -days).Format(models.DayLayout)
	return service.workouts.ListSinceDate(day)
}
