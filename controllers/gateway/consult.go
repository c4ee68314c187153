package gateway

import (
	"log"

	"betpix/database"
	"betpix/helpers"
	"betpix/services"

	pix "betpix/gateway"

	"github.com/gofiber/fiber/v2"
)

// ConsultStatus runs one batch of provider status checks over the recent
// pending transactions and returns the per-id statuses.
func ConsultStatus(c *fiber.Ctx) error {
	consult := services.NewConsult(database.DB, pix.FromDB(database.DB))

	statuses, err := consult.Run(services.ConsultLimit, services.ConsultWindow)
	if err != nil {
		log.Printf("❌ Consult batch failed: %v", err)
		return helpers.JSONServerError(c, "CONSULT_FAILED")
	}

	if len(statuses) == 0 {
		return helpers.JSONSuccess(c, "No pending transactions to consult", fiber.Map{})
	}

	out := fiber.Map{}
	for externalID, status := range statuses {
		out[externalID] = fiber.Map{"status": status}
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
