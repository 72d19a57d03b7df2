package services

import "errors"

// Stable failure classes surfaced to the HTTP layer. Rejections never leave
// partial state behind; anything raised mid-transaction rolls back.
var (
	ErrNotFound                     = errors.New("record not found")
	ErrInvalidAmount                = errors.New("invalid amount")
	ErrInvalidNumber                = errors.New("bid number must be between 1 and 12")
	ErrInvalidWalletType            = errors.New("invalid wallet type")
	ErrInsufficientBalance          = errors.New("insufficient balance")
	ErrInsufficientInitiatorBalance = errors.New("insufficient initiator balance")
	ErrBelowMinimum                 = errors.New("amount below minimum")
	ErrAboveMaximum                 = errors.New("amount above maximum")
	ErrGameNotOpen                  = errors.New("game not open")
	ErrGameExists                   = errors.New("game already exists for this window")
	ErrNoCommissionSettings         = errors.New("commission settings not configured")
	ErrPercentagesExceed            = errors.New("total percentages cannot exceed 100")
	ErrBetRangeInvalid              = errors.New("minimum bet must be less than maximum bet")
	ErrForbidden                    = errors.New("not allowed")
	ErrInvalidCredentials           = errors.New("invalid credentials")
	ErrAccountInactive              = errors.New("account not active")
	ErrAlreadyProcessed             = errors.New("already processed")
)
