package services

import (
	"strings"
	"time"

	"vitale/internal/models"
)

const defaultMealWindowDays = 30

// MealStore is the slice of the meal repository this service needs.
type MealStore interface {
	Create(meal *models.Meal) error
	ListRecent(cutoff time.Time) ([]models.Meal, error)
}

// MealService stores confirmed meals and reads them back for the journal.
type MealService struct {
	meals    MealStore
	location *time.Location
}

func NewMealService(meals MealStore, location *time.Location) *MealService {
	if location == nil {
		location = time.Local
	}
	return &MealService{meals: meals, location: location}
}

// ConfirmEstimate turns a staged estimate into a stored meal stamped with
// the confirmation time. When the analyzer produced no summary, the user's
// own words become the description.
func (service *MealService) ConfirmEstimate(estimate NutritionEstimate, sourceText string, now time.Time) (models.Meal, error) {
	description := strings.TrimSpace(estimate.Description)
	if description == "" {
		description = strings.TrimSpace(sourceText)
	}

	meal := models.Meal{
		Timestamp:   now.In(service.location),
		Description: description,
		Kcal:        estimate.Kcal,
		ProteinG:    estimate.ProteinG,
		CarbsG:      estimate.CarbsG,
		FatG:        estimate.FatG,
	}
	if err := service.meals.Create(&meal); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

// RecentMeals lists the journal for the trailing window, newest first.
func (service *MealService) RecentMeals(now time.Time, days int) ([]models.Meal, error) {
	if days <= 0 {
		days = defaultMealWindowDays
	}
	cutoff := DateAtLocation(now, service.location).AddDate(0, 0, -days)
	return service.meals.ListRecent(cutoff)
}
