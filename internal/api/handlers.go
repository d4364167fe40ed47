package api

import (
	"time"

	"gorm.io/gorm"

	"vitale/internal/credentials"
	"vitale/internal/db"
	"vitale/internal/services"
)

// MealAnalyzer turns a free-text meal description into a nutrition estimate.
// The concrete implementation talks to an external model; tests substitute
// their own.
type MealAnalyzer interface {
	Configured() bool
	AnalyzeMeal(text string) (services.NutritionEstimate, error)
}

type Handler struct {
	db           *gorm.DB
	credentials  credentials.Store
	analyzer     MealAnalyzer
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories
	meals        *services.MealService
	importer     *services.ImportService
	dashboard    *services.DashboardService
	workouts     *services.WorkoutService
	exporter     *services.ExportService
	pending      *services.PendingStore
	loginLimiter *attemptLimiter
}

type loginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type analyzeMealInput struct {
	Text string `json:"text" form:"text"`
}

type pendingTokenInput struct {
	Token string `json:"token" form:"token"`
}

func NewHandler(database *gorm.DB, store credentials.Store, analyzer MealAnalyzer, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		credentials:  store,
		analyzer:     analyzer,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		pending:      services.NewPendingStore(services.DefaultPendingTTL),
		loginLimiter: newAttemptLimiter(),
	}
	handler.wireServices()
	return handler
}

func (handler *Handler) wireServices() {
	handler.repositories = db.NewRepositories(handler.db)
	handler.meals = services.NewMealService(handler.repositories.Meals, handler.location)
	handler.importer = services.NewImportService(handler.repositories.Metrics)
	handler.dashboard = services.NewDashboardService(handler.repositories.Metrics, handler.repositories.Meals, handler.location)
	handler.workouts = services.NewWorkoutService(handler.repositories.Workouts, handler.location)
	handler.exporter = services.NewExportService(handler.repositories.Metrics, handler.repositories.Meals)
}
