package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"vitale/internal/services"
)

func (handler *Handler) AnalyzeMeal(c *fiber.Ctx) error {
	input := analyzeMealInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return apiError(c, fiber.StatusBadRequest, "meal text is required")
	}

	estimate, err := handler.analyzer.AnalyzeMeal(text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAnalyzerNotConfigured):
			return apiError(c, fiber.StatusServiceUnavailable, "nutrition analyzer is not configured")
		case errors.Is(err, services.ErrMalformedAnalysis):
			return apiError(c, fiber.StatusBadGateway, "malformed analysis response")
		default:
			return apiError(c, fiber.StatusBadGateway, "analysis failed")
		}
	}

	token := handler.pending.StageAnalysis(text, estimate, time.Now())
	return c.JSON(fiber.Map{
		"token":    token,
		"estimate": estimate,
	})
}

func (handler *Handler) ConfirmMeal(c *fiber.Ctx) error {
	input := pendingTokenInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	now := time.Now()
	estimate, sourceText, ok := handler.pending.TakeAnalysis(strings.TrimSpace(input.Token), now)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "pending analysis not found")
	}

	meal, err := handler.meals.ConfirmEstimate(estimate, sourceText, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store meal")
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

func (handler *Handler) CancelPendingMeal(c *fiber.Ctx) error {
	if !handler.pending.DropAnalysis(c.Params("token"), time.Now()) {
		return apiError(c, fiber.StatusNotFound, "pending analysis not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	meals, err := handler.meals.RecentMeals(time.Now(), c.QueryInt("days", 0))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meals")
	}
	return c.JSON(meals)
}

func (handler *Handler) DailyCalories(c *fiber.Ctx) error {
	totals, err := handler.dashboard.DailyCalorieTotals(time.Now(), c.QueryInt("days", 0))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch calorie totals")
	}
	return c.JSON(totals)
}
