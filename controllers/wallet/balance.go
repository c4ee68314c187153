package wallet

import (
	"betpix/database"
	"betpix/helpers"
	"betpix/models"

	"github.com/gofiber/fiber/v2"
)

func CheckBalance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	var userWallet models.Wallet
	if err := database.DB.Where("user_id = ?", user.ID).First(&userWallet).Error; err != nil {
		return helpers.JSONError(c, "WALLET_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Wallet balance", fiber.Map{
		"balance":                  helpers.FormatFloat(userWallet.Balance, 2),
		"balance_bonus":            helpers.FormatFloat(userWallet.BalanceBonus, 2),
		"balance_bonus_rollover":   helpers.FormatFloat(userWallet.BalanceBonusRollover, 2),
		"balance_deposit_rollover": helpers.FormatFloat(userWallet.BalanceDepositRollover, 2),
		"refer_rewards":            helpers.FormatFloat(userWallet.ReferRewards, 2),
		"total":                    helpers.FormatFloat(userWallet.Total(), 2),
		"currency":                 userWallet.Currency,
		"symbol":                   userWallet.Symbol,
	})
}
