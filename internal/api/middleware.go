package api

import "github.com/gofiber/fiber/v2"

const (
	authCookieName = "vitale_auth"
	contextUserKey = "current_user"
)

func currentUsername(c *fiber.Ctx) (string, bool) {
	username, ok := c.Locals(contextUserKey).(string)
	return username, ok
}
