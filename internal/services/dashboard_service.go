package services

import (
	"sort"
	"time"

	"vitale/internal/models"
)

const (
	// overviewWindowDays is the trailing window the aggregates read.
	overviewWindowDays = 30
	// seriesDays caps how many joined days the overview chart carries.
	seriesDays = 7
)

// MetricReader is the slice of the metric repository the dashboard needs.
type MetricReader interface {
	ListSinceDate(day string) ([]models.DailyMetric, error)
	LatestWithBodyWeight() (models.DailyMetric, bool, error)
	AverageSleepSince(day string) (float64, int64, error)
}

// MealReader is the slice of the meal repository the dashboard needs.
type MealReader interface {
	ListSince(cutoff time.Time) ([]models.Meal, error)
}

// DayPoint is one joined day of the overview series. Days appear when either
// side has data for them; the other side's fields stay zero.
type DayPoint struct {
	Date       string  `json:"date"`
	Kcal       float64 `json:"kcal"`
	Steps      int     `json:"steps"`
	SleepHours float64 `json:"sleep_hours"`
	BodyWeight float64 `json:"body_weight"`
}

// DailyKcal is the calorie total of one calendar day of meals.
type DailyKcal struct {
	Date string  `json:"date"`
	Kcal float64 `json:"kcal"`
}

// Overview carries the dashboard numbers. LatestWeight is nil when no
// positive body weight was ever recorded; SleepSampleDays tells an empty
// sleep window apart from a measured zero average.
type Overview struct {
	LatestWeight    *float64   `json:"latest_weight"`
	AvgSleepHours   float64    `json:"avg_sleep_hours"`
	SleepSampleDays int        `json:"sleep_sample_days"`
	Series          []DayPoint `json:"series"`
}

// DashboardService aggregates stored metrics and meals into the overview.
type DashboardService struct {
	metrics  MetricReader
	meals    MealReader
	location *time.Location
}

func NewDashboardService(metrics MetricReader, meals MealReader, location *time.Location) *DashboardService {
	if location == nil {
		location = time.Local
	}
	return &DashboardService{metrics: metrics, meals: meals, location: location}
}

// Overview computes the dashboard for the trailing 30 days as of now.
func (service *DashboardService) Overview(now time.Time) (Overview, error) {
	cutoffDay := DateAtLocation(now, service.location).
		AddDate(0, 0, -overviewWindowDays).
		Format(models.DayLayout)

	metrics, err := service.metrics.ListSinceDate(cutoffDay)
	if err != nil {
		return Overview{}, err
	}

	avgSleep, sampleDays, err := service.metrics.AverageSleepSince(cutoffDay)
	if err != nil {
		return Overview{}, err
	}

	latestWeight, err := service.latestWeight()
	if err != nil {
		return Overview{}, err
	}

	totals, err := service.DailyCalorieTotals(now, overviewWindowDays)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		LatestWeight:    latestWeight,
		AvgSleepHours:   avgSleep,
		SleepSampleDays: int(sampleDays),
		Series:          BuildDaySeries(metrics, totals, seriesDays),
	}, nil
}

func (service *DashboardService) latestWeight() (*float64, error) {
	metric, found, err := service.metrics.LatestWithBodyWeight()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	weight := metric.BodyWeight
	return &weight, nil
}

// DailyCalorieTotals sums meal calories per calendar day over the trailing
// window, ascending by day. Days without meals do not appear.
func (service *DashboardService) DailyCalorieTotals(now time.Time, days int) ([]DailyKcal, error) {
	if days <= 0 {
		days = overviewWindowDays
	}
	cutoff := DateAtLocation(now, service.location).AddDate(0, 0, -days)
	meals, err := service.meals.ListSince(cutoff)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]float64, len(meals))
	for _, meal := range meals {
		day := meal.Timestamp.In(service.location).Format(models.DayLayout)
		byDay[day] += meal.Kcal
	}

	totals := make([]DailyKcal, 0, len(byDay))
	for day, kcal := range byDay {
		totals = append(totals, DailyKcal{Date: day, Kcal: kcal})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals, nil
}

// BuildDaySeries outer-joins metric days with calorie totals, zero-filling
// whichever side is missing, and keeps the most recent maxDays distinct days
// in ascending order.
func BuildDaySeries(metrics []models.DailyMetric, totals []DailyKcal, maxDays int) []DayPoint {
	byDay := make(map[string]*DayPoint, len(metrics)+len(totals))
	for _, metric := range metrics {
		point := byDay[metric.Date]
		if point == nil {
			point = &DayPoint{Date: metric.Date}
			byDay[metric.Date] = point
		}
		point.Steps = metric.Steps
		point.SleepHours = metric.SleepHours
		point.BodyWeight = metric.BodyWeight
	}
	for _, total := range totals {
		point := byDay[total.Date]
		if point == nil {
			point = &DayPoint{Date: total.Date}
			byDay[total.Date] = point
		}
		point.Kcal = total.Kcal
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	if maxDays > 0 && len(days) > maxDays {
		days = days[len(days)-maxDays:]
	}

	series := make([]DayPoint, 0, len(days))
	for _, day := range days {
		series = append(series, *byDay[day])
	}
	return series
}
