package helpers

import (
	"errors"

	"playwin/services"

	"github.com/gofiber/fiber/v2"
)

var errorCodes = []struct {
	err    error
	status int
	code   string
}{
	{services.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{services.ErrInvalidAmount, fiber.StatusBadRequest, "INVALID_AMOUNT"},
	{services.ErrInvalidNumber, fiber.StatusBadRequest, "INVALID_NUMBER"},
	{services.ErrInvalidWalletType, fiber.StatusBadRequest, "INVALID_WALLET_TYPE"},
	{services.ErrInsufficientBalance, fiber.StatusBadRequest, "INSUFFICIENT_BALANCE"},
	{services.ErrInsufficientInitiatorBalance, fiber.StatusBadRequest, "INSUFFICIENT_INITIATOR_BALANCE"},
	{services.ErrBelowMinimum, fiber.StatusBadRequest, "AMOUNT_BELOW_MINIMUM"},
	{services.ErrAboveMaximum, fiber.StatusBadRequest, "AMOUNT_ABOVE_MAXIMUM"},
	{services.ErrGameNotOpen, fiber.StatusBadRequest, "GAME_NOT_OPEN"},
	{services.ErrGameExists, fiber.StatusConflict, "GAME_ALREADY_EXISTS"},
	{services.ErrNoCommissionSettings, fiber.StatusPreconditionFailed, "COMMISSION_SETTINGS_NOT_FOUND"},
	{services.ErrPercentagesExceed, fiber.StatusBadRequest, "PERCENTAGES_EXCEED_100"},
	{services.ErrBetRangeInvalid, fiber.StatusBadRequest, "INVALID_BET_RANGE"},
	{services.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{services.ErrAccountInactive, fiber.StatusForbidden, "ACCOUNT_NOT_ACTIVE"},
	{services.ErrAlreadyProcessed, fiber.StatusConflict, "ALREADY_PROCESSED"},
}

// ServiceError maps a service failure onto its stable code. Unknown errors
// come back as a bare 500; internals are never echoed to the client.
func ServiceError(c *fiber.Ctx, err error) error {
	for _, m := range errorCodes {
		if errors.Is(err, m.err) {
			return JSONErrorStatus(c, m.status, m.code)
		}
	}
	return JSONErrorStatus(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
}
