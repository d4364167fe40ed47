package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"vitale/internal/services"
)

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	input := services.WorkoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	workout, err := handler.workouts.LogWorkout(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWorkoutDate) || errors.Is(err, services.ErrSportTypeRequired) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to store workout")
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	workouts, err := handler.workouts.RecentWorkouts(time.Now(), c.QueryInt("days", 0))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch workouts")
	}
	return c.JSON(workouts)
}
