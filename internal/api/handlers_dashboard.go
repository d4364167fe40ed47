package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) DashboardOverview(c *fiber.Ctx) error {
	overview, err := handler.dashboard.Overview(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build overview")
	}
	return c.JSON(overview)
}
