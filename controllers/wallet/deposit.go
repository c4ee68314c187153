package wallet

import (
	"fmt"
	"log"

	"betpix/database"
	"betpix/gateway"
	"betpix/helpers"
	"betpix/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DepositRequest struct {
	Amount float64 `json:"amount"`
	CPF    string  `json:"cpf"`
}

// RequestDeposit asks the provider for a PIX QR code and records the
// transaction/deposit pair in pending state under one database transaction.
func RequestDeposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	var setting models.Setting
	if err := database.DB.First(&setting).Error; err != nil {
		return helpers.JSONServerError(c, "SETTINGS_NOT_CONFIGURED")
	}

	errs := map[string]string{}
	if req.Amount < setting.MinDeposit || req.Amount > setting.MaxDeposit {
		errs["amount"] = fmt.Sprintf("amount must be between %.2f and %.2f",
			setting.MinDeposit, setting.MaxDeposit)
	}
	if helpers.OnlyDigits(req.CPF) == "" {
		errs["cpf"] = "cpf is required"
	}
	if len(errs) > 0 {
		return helpers.JSONValidation(c, errs)
	}

	var userWallet models.Wallet
	if err := database.DB.Where("user_id = ?", user.ID).First(&userWallet).Error; err != nil {
		return helpers.JSONServerError(c, "WALLET_NOT_FOUND")
	}

	client := gateway.FromDB(database.DB)
	qr, err := client.RequestQRCode(gateway.QRCodeRequest{
		Name:        user.Name,
		Document:    helpers.OnlyDigits(req.CPF),
		Phone:       helpers.OnlyDigits(user.Phone),
		Email:       user.Email,
		Amount:      req.Amount,
		Description: "PIX deposit",
	})
	if err != nil {
		log.Printf("❌ QR code request failed for user %d: %v", user.ID, err)
		return helpers.JSONServerError(c, "GATEWAY_UNAVAILABLE")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		trx := models.Transaction{
			PaymentID:     qr.ReferenceCode,
			UserID:        user.ID,
			PaymentMethod: "pix",
			Price:         req.Amount,
			Currency:      setting.CurrencyCode,
			Status:        models.StatusPending,
			ExternalID:    qr.ReferenceCode,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		deposit := models.Deposit{
			PaymentID:  qr.ReferenceCode,
			UserID:     user.ID,
			Amount:     req.Amount,
			Type:       "pix",
			Currency:   userWallet.Currency,
			Symbol:     userWallet.Symbol,
			Status:     models.StatusPending,
			ExternalID: qr.ReferenceCode,
		}
		return tx.Create(&deposit).Error
	})
	if err != nil {
		log.Printf("❌ Failed to record deposit for user %d: %v", user.ID, err)
		return helpers.JSONServerError(c, "FAILED_TO_RECORD_DEPOSIT")
	}

	return helpers.JSONSuccess(c, "QR code generated successfully", fiber.Map{
		"transaction_id": qr.ReferenceCode,
		"qrcode":         qr.QRCode,
		"external_id":    qr.ReferenceCode,
	})
}
