package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseUserID resolves the authenticated subject set by the auth
// middleware. Absence is reported, not escalated; mutation handlers turn it
// into a uniform "Not authenticated" failure before any store call.
func parseUserID(c *fiber.Ctx) (int64, error) {
	userIDValue := c.Locals("user_id")
	userIDStr, ok := userIDValue.(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}

func notAuthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "Not authenticated",
	})
}
