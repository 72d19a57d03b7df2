package commission

import (
	"fmt"

	"playwin/database"
	"playwin/helpers"
	"playwin/middlewares"
	"playwin/services"

	"github.com/gofiber/fiber/v2"
)

// GetSettings returns the active settings, seeding the defaults on first
// call.
func GetSettings(c *fiber.Ctx) error {
	settings, err := services.EnsureDefaultSettings(database.DB)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Commission settings", settings)
}

type UpdateSettingsRequest struct {
	AgentCommissionPercentage int64 `json:"agent_commission_percentage"`
	WinnerPayoutPercentage    int64 `json:"winner_payout_percentage"`
	AdminFeePercentage        int64 `json:"admin_fee_percentage"`
	MinBetAmount              int64 `json:"min_bet_amount"`
	MaxBetAmount              int64 `json:"max_bet_amount"`
}

func UpdateSettings(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	settings, err := services.UpdateSettings(database.DB, services.SettingsInput{
		AgentCommissionPercentage: req.AgentCommissionPercentage,
		WinnerPayoutPercentage:    req.WinnerPayoutPercentage,
		AdminFeePercentage:        req.AdminFeePercentage,
		MinBetAmount:              req.MinBetAmount,
		MaxBetAmount:              req.MaxBetAmount,
		UpdatedBy:                 fmt.Sprintf("Admin (%d)", actor.ID),
	})
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Commission settings updated", settings)
}

func History(c *fiber.Ctx) error {
	history, err := services.SettingsHistory(database.DB, 20)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Commission settings history", history)
}
