package wallet

import (
	"errors"
	"log"

	"betpix/database"
	"betpix/helpers"
	"betpix/models"
	"betpix/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errInsufficientBalance = errors.New("insufficient balance")

type WithdrawRequest struct {
	Amount  float64 `json:"amount"`
	PixKey  string  `json:"pix_key"`
	PixType string  `json:"pix_type"`
}

// RequestWithdrawal debits the wallet up front and queues a pending
// withdrawal for admin approval. The debit and the withdrawal row commit
// together; an admin cancel refunds the debit.
func RequestWithdrawal(c *fiber.Ctx) error {
	var req WithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	errs := map[string]string{}
	if req.Amount <= 0 {
		errs["amount"] = "amount must be positive"
	}
	if req.PixKey == "" {
		errs["pix_key"] = "pix_key is required"
	}
	if req.PixType == "" {
		errs["pix_type"] = "pix_type is required"
	}
	if len(errs) > 0 {
		return helpers.JSONValidation(c, errs)
	}

	reference := uuid.New().String()

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var userWallet models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", user.ID).
			First(&userWallet).Error; err != nil {
			return err
		}

		if userWallet.Balance < req.Amount {
			return errInsufficientBalance
		}

		if err := tx.Model(&userWallet).
			UpdateColumn("balance", gorm.Expr("balance - ?", req.Amount)).Error; err != nil {
			return err
		}

		withdrawal := models.Withdrawal{
			UserID:    user.ID,
			Amount:    req.Amount,
			PixKey:    req.PixKey,
			PixType:   req.PixType,
			Currency:  userWallet.Currency,
			Symbol:    userWallet.Symbol,
			Reference: reference,
			Status:    models.StatusPending,
		}
		if err := tx.Create(&withdrawal).Error; err != nil {
			return err
		}

		return services.NewNotifier().NewWithdrawal(tx, user.Name, req.Amount, reference)
	})
	if err != nil {
		if errors.Is(err, errInsufficientBalance) {
			return helpers.JSONError(c, "INSUFFICIENT_BALANCE")
		}
		log.Printf("❌ Withdrawal request failed for user %d: %v", user.ID, err)
		return helpers.JSONServerError(c, "FAILED_TO_CREATE_WITHDRAWAL")
	}

	return helpers.JSONSuccess(c, "Withdrawal requested", fiber.Map{
		"reference": reference,
		"amount":    req.Amount,
	})
}
