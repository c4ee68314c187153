package middlewares

import (
	"strings"

	"betpix/database"
	"betpix/helpers"
	"betpix/models"

	"github.com/gofiber/fiber/v2"
)

func UserAuthMiddleware(c *fiber.Ctx) error {
	token := c.Get("X-Api-Token")
	if token == "" {
		auth := c.Get("Authorization")
		token = strings.TrimPrefix(auth, "Bearer ")
	}
	if token == "" {
		return helpers.JSONError(c, "API_TOKEN_REQUIRED")
	}

	var user models.User
	if err := database.DB.Where("api_token = ? AND is_active = true", token).First(&user).Error; err != nil {
		return helpers.JSONError(c, "INVALID_API_TOKEN")
	}

	c.Locals("user", user)
	return c.Next()
}
