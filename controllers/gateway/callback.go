package gateway

import (
	"errors"
	"log"

	"betpix/database"
	"betpix/helpers"
	"betpix/models"
	"betpix/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type callbackRequest struct {
	IDTransaction     string `json:"idTransaction" form:"idTransaction"`
	TypeTransaction   string `json:"typeTransaction" form:"typeTransaction"`
	StatusTransaction string `json:"statusTransaction" form:"statusTransaction"`
}

// Callback is the provider's deposit webhook. Settlement is idempotent, so a
// replayed notification is a no-op.
func Callback(c *fiber.Ctx) error {
	var req callbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_PAYLOAD")
	}
	if req.IDTransaction == "" {
		return helpers.JSONError(c, "MISSING_TRANSACTION_ID")
	}

	log.Printf("✅ [pix] callback received for %s, status %s", req.IDTransaction, req.StatusTransaction)

	switch req.StatusTransaction {
	case "PAID", "PAID_OUT", "PAYMENT_ACCEPT":
		settled, err := services.NewSettlement(database.DB).Finalize(req.IDTransaction)
		if err != nil {
			return helpers.JSONServerError(c, "SETTLEMENT_FAILED")
		}
		return helpers.JSONSuccess(c, "Callback processed", fiber.Map{
			"settled": settled,
		})
	}

	return helpers.JSONSuccess(c, "Callback ignored", fiber.Map{
		"status": req.StatusTransaction,
	})
}

// PaymentCallback is the provider's payout webhook: it confirms or cancels a
// cash-out previously sent by the withdrawal approval flow.
func PaymentCallback(c *fiber.Ctx) error {
	var req callbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_PAYLOAD")
	}
	if req.IDTransaction == "" {
		return helpers.JSONError(c, "MISSING_TRANSACTION_ID")
	}

	switch req.StatusTransaction {
	case "PAID_OUT", "PAYMENT_ACCEPT":
		// The approval flow already flipped the row when the provider said
		// OK; this webhook only acknowledges that the payout settled.
		var withdrawal models.Withdrawal
		if err := database.DB.Where("payment_id = ?", req.IDTransaction).
			First(&withdrawal).Error; err != nil {
			log.Printf("⚠️  Payout confirmation for unknown payment_id %s", req.IDTransaction)
			return helpers.JSONError(c, "WITHDRAWAL_NOT_FOUND")
		}
		return helpers.JSONSuccess(c, "Payout confirmed", fiber.Map{
			"withdrawal_id": withdrawal.ID,
			"status":        withdrawal.Status,
		})

	case "CANCELED", "CHARGEBACK":
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var withdrawal models.Withdrawal
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("payment_id = ? AND status <> ?", req.IDTransaction, models.StatusCanceled).
				First(&withdrawal).Error; err != nil {
				return err
			}

			if err := tx.Model(&withdrawal).Update("status", models.StatusCanceled).Error; err != nil {
				return err
			}

			return tx.Model(&models.Wallet{}).
				Where("user_id = ?", withdrawal.UserID).
				UpdateColumn("balance", gorm.Expr("balance + ?", withdrawal.Amount)).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helpers.JSONError(c, "WITHDRAWAL_NOT_FOUND")
			}
			return helpers.JSONServerError(c, "FAILED_TO_CANCEL_WITHDRAWAL")
		}
		return helpers.JSONSuccess(c, "Payout canceled and refunded", nil)
	}

	return helpers.JSONSuccess(c, "Callback ignored", fiber.Map{
		"status": req.StatusTransaction,
	})
}
