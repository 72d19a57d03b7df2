package withdrawal

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/middlewares"
	"playwin/models"
	"playwin/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Amount is paise; AmountRupees is the decimal form and takes precedence
// when set.
type RequestWithdrawalRequest struct {
	Amount       int64  `json:"amount"`
	AmountRupees string `json:"amount_rupees"`
	WalletType   string `json:"wallet_type"`
	Note         string `json:"note"`
}

func Request(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	var req RequestWithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	amount, err := helpers.ParseAmount(req.Amount, req.AmountRupees)
	if err != nil {
		return helpers.JSONError(c, "INVALID_AMOUNT")
	}

	w, err := services.RequestWithdrawal(database.DB, actor.ID, amount, req.WalletType, req.Note)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONCreated(c, "Withdrawal requested", w)
}

func List(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	withdrawals, err := services.ListWithdrawals(database.DB, actor, 100)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Withdrawals", withdrawals)
}

func Approve(c *fiber.Ctx) error {
	return resolve(c, services.ApproveWithdrawal, "Withdrawal approved")
}

func Reject(c *fiber.Ctx) error {
	return resolve(c, services.RejectWithdrawal, "Withdrawal rejected")
}

func Complete(c *fiber.Ctx) error {
	return resolve(c, services.CompleteWithdrawal, "Withdrawal completed")
}

func resolve(c *fiber.Ctx, fn func(db *gorm.DB, processorID, withdrawalID uint) (*models.Withdrawal, error), message string) error {
	actor := middlewares.Actor(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_WITHDRAWAL_ID")
	}

	w, err := fn(database.DB, actor.ID, uint(id))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, message, w)
}
