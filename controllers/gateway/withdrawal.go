package gateway

import (
	"errors"
	"log"

	"betpix/database"
	"betpix/helpers"
	"betpix/models"

	pix "betpix/gateway"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApproveWithdrawal sends the PIX cash-out for a pending withdrawal. The
// provider call happens first; only an OK answer flips the row, under a row
// lock so a double-click cannot pay twice.
func ApproveWithdrawal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_WITHDRAWAL_ID")
	}
	if c.Params("action") != "approve" {
		return helpers.JSONError(c, "INVALID_ACTION")
	}

	var withdrawal models.Withdrawal
	if err := database.DB.Where("id = ? AND status = ?", id, models.StatusPending).
		First(&withdrawal).Error; err != nil {
		return helpers.JSONError(c, "WITHDRAWAL_NOT_FOUND_OR_NOT_PENDING")
	}

	client := pix.FromDB(database.DB)
	paymentID, err := client.PixCashOut(withdrawal.PixKey, withdrawal.PixType, withdrawal.Amount)
	if err != nil {
		log.Printf("❌ Cashout failed for withdrawal %d: %v", withdrawal.ID, err)
		return helpers.JSONServerError(c, "CASHOUT_FAILED")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var locked models.Withdrawal
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ?", withdrawal.ID, models.StatusPending).
			First(&locked).Error; err != nil {
			return err
		}
		return tx.Model(&locked).Updates(map[string]any{
			"status":     models.StatusPaid,
			"payment_id": paymentID,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, "WITHDRAWAL_ALREADY_PROCESSED")
		}
		return helpers.JSONServerError(c, "FAILED_TO_UPDATE_WITHDRAWAL")
	}

	return helpers.JSONSuccess(c, "Withdrawal paid", fiber.Map{
		"withdrawal_id": withdrawal.ID,
		"payment_id":    paymentID,
	})
}

// CancelWithdrawal marks a pending withdrawal canceled and refunds the
// reserved amount, in one transaction.
func CancelWithdrawal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_WITHDRAWAL_ID")
	}
	if c.Params("action") != "cancel" {
		return helpers.JSONError(c, "INVALID_ACTION")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var withdrawal models.Withdrawal
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ?", id, models.StatusPending).
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
			return helpers.JSONError(c, "WITHDRAWAL_NOT_FOUND_OR_NOT_PENDING")
		}
		log.Printf("❌ Failed to cancel withdrawal %d: %v", id, err)
		return helpers.JSONServerError(c, "FAILED_TO_CANCEL_WITHDRAWAL")
	}

	return helpers.JSONSuccess(c, "Withdrawal canceled and refunded", fiber.Map{
		"withdrawal_id": id,
	})
}
