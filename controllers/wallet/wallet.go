package wallet

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/middlewares"
	"playwin/models"
	"playwin/services"

	"github.com/gofiber/fiber/v2"
)

// Amount is paise; AmountRupees is the dashboard's decimal form ("99.50")
// and takes precedence when set.
type RechargeRequest struct {
	UserID       uint   `json:"user_id"`
	Amount       int64  `json:"amount"`
	AmountRupees string `json:"amount_rupees"`
	WalletType   string `json:"wallet_type"`
	Note         string `json:"note"`
}

func walletPayload(w *models.Wallet) fiber.Map {
	return fiber.Map{
		"user_id":      w.UserID,
		"main":         w.Main,
		"bonus":        w.Bonus,
		"main_rupees":  helpers.PaiseToRupees(w.Main),
		"bonus_rupees": helpers.PaiseToRupees(w.Bonus),
	}
}

func Recharge(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	var req RechargeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	amount, err := helpers.ParseAmount(req.Amount, req.AmountRupees)
	if err != nil {
		return helpers.JSONError(c, "INVALID_AMOUNT")
	}
	if req.UserID == 0 || amount <= 0 {
		return helpers.JSONError(c, "USER_ID_AND_VALID_AMOUNT_REQUIRED")
	}

	w, err := services.Recharge(database.DB, actor, req.UserID, amount, req.WalletType, req.Note)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Wallet recharged", walletPayload(w))
}

func ManualDebit(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	var req RechargeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	amount, err := helpers.ParseAmount(req.Amount, req.AmountRupees)
	if err != nil {
		return helpers.JSONError(c, "INVALID_AMOUNT")
	}
	if req.UserID == 0 || amount <= 0 {
		return helpers.JSONError(c, "USER_ID_AND_VALID_AMOUNT_REQUIRED")
	}

	w, err := services.ManualDebit(database.DB, actor, req.UserID, amount, req.WalletType, req.Note)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Manual debit successful", walletPayload(w))
}

func MyWallet(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	w, err := services.GetOrCreateWallet(database.DB, actor.ID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Wallet", walletPayload(w))
}

func ListTransactions(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	targetUserID := uint(c.QueryInt("user_id"))
	txns, err := services.ListTransactions(database.DB, actor, targetUserID, 100)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Wallet transactions", txns)
}

func ListWallets(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	wallets, err := services.ListWallets(database.DB, actor)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Wallets", wallets)
}
