package routes

import (
	gatewayctl "betpix/controllers/gateway"
	"betpix/controllers/user"
	"betpix/controllers/wallet"
	"betpix/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", user.Register)

	walletroutes := app.Group("/wallet", middlewares.UserAuthMiddleware)
	walletroutes.Get("/balance", wallet.CheckBalance)
	walletroutes.Post("/deposit", wallet.RequestDeposit)
	walletroutes.Post("/withdraw", wallet.RequestWithdrawal)

	// provider webhooks + status polling
	app.Post("/suitpay/consult-status-transaction", gatewayctl.ConsultStatus)
	app.Post("/suitpay/callback", gatewayctl.Callback)
	app.Post("/suitpay/payment", gatewayctl.PaymentCallback)

	adminroutes := app.Group("/suitpay", middlewares.UserAuthMiddleware, middlewares.AdminAuthMiddleware)
	adminroutes.Get("/withdrawal/:id/:action", gatewayctl.ApproveWithdrawal)
	adminroutes.Get("/cancelwithdrawal/:id/:action", gatewayctl.CancelWithdrawal)
}
