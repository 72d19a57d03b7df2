package routes

import (
	"playwin/controllers/auth"
	"playwin/controllers/bid"
	"playwin/controllers/commission"
	"playwin/controllers/game"
	"playwin/controllers/user"
	"playwin/controllers/wallet"
	"playwin/controllers/withdrawal"
	"playwin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authroutes := app.Group("/api/auth")
	authroutes.Post("/login", auth.Login)
	authroutes.Post("/user-login", auth.UserLogin)
	authroutes.Post("/change-password", middlewares.JWTAuth, auth.ChangePassword)
	authroutes.Get("/validate", middlewares.JWTAuth, auth.ValidateToken)

	userroutes := app.Group("/api/users", middlewares.JWTAuth)
	userroutes.Get("/me", user.Me)
	userroutes.Post("/", middlewares.RequirePermission("users:create"), user.CreateUser)
	userroutes.Get("/", middlewares.RequirePermission("users:list"), user.ListUsers)

	gameroutes := app.Group("/api/games", middlewares.JWTAuth)
	gameroutes.Get("/", game.ListGames)
	gameroutes.Get("/:id", game.GetGame)
	gameroutes.Post("/", middlewares.RequirePermission("games:create"), game.CreateGame)
	gameroutes.Post("/:id/declare-winner", middlewares.RequirePermission("games:declare"), game.DeclareWinner)
	gameroutes.Post("/override", middlewares.RequirePermission("games:override"), game.OverrideResult)

	bidroutes := app.Group("/api/bids", middlewares.JWTAuth)
	bidroutes.Post("/", middlewares.RequirePermission("bids:place"), bid.PlaceBid)
	bidroutes.Get("/", bid.ListMyBids)
	bidroutes.Get("/game/:gameId", middlewares.RequirePermission("bids:list-game"), bid.ListGameBids)

	walletroutes := app.Group("/api/wallet", middlewares.JWTAuth)
	walletroutes.Get("/me", wallet.MyWallet)
	walletroutes.Get("/transactions", wallet.ListTransactions)
	walletroutes.Get("/", middlewares.RequirePermission("wallet:list"), wallet.ListWallets)
	walletroutes.Post("/recharge", middlewares.RequirePermission("wallet:recharge"), wallet.Recharge)
	walletroutes.Post("/manual-debit", middlewares.RequirePermission("wallet:manual-debit"), wallet.ManualDebit)

	wdroutes := app.Group("/api/wallet/withdrawals", middlewares.JWTAuth)
	wdroutes.Post("/", middlewares.RequirePermission("withdrawals:request"), withdrawal.Request)
	wdroutes.Get("/", withdrawal.List)
	wdroutes.Post("/:id/approve", middlewares.RequirePermission("withdrawals:review"), withdrawal.Approve)
	wdroutes.Post("/:id/reject", middlewares.RequirePermission("withdrawals:review"), withdrawal.Reject)
	wdroutes.Post("/:id/complete", middlewares.RequirePermission("withdrawals:review"), withdrawal.Complete)

	commissionroutes := app.Group("/api/commission", middlewares.JWTAuth)
	commissionroutes.Get("/", commission.GetSettings)
	commissionroutes.Put("/", middlewares.RequirePermission("commission:update"), commission.UpdateSettings)
	commissionroutes.Get("/history", middlewares.RequirePermission("commission:history"), commission.History)
}
