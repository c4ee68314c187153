package middlewares

import (
	"betpix/models"

	"github.com/gofiber/fiber/v2"
)

// AdminAuthMiddleware runs after UserAuthMiddleware and rejects non-admins.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok || user.RoleID != models.RoleAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "ADMIN_ONLY",
		})
	}
	return c.Next()
}
