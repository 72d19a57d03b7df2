package game

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/middlewares"
	"playwin/services"

	"github.com/gofiber/fiber/v2"
)

type CreateGameRequest struct {
	TimeWindow string `json:"time_window"`
}

func CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TimeWindow == "" {
		return helpers.JSONError(c, "TIME_WINDOW_REQUIRED")
	}

	game, err := services.CreateGame(database.DB, req.TimeWindow)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONCreated(c, "Game created", game)
}

func ListGames(c *fiber.Ctx) error {
	games, err := services.ListGames(database.DB, c.Query("status"), 100)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Games", games)
}

func GetGame(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_GAME_ID")
	}
	game, err := services.GetGame(database.DB, uint(id))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Game", game)
}

type DeclareWinnerRequest struct {
	WinnerNumber int `json:"winner_number"`
}

func DeclareWinner(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_GAME_ID")
	}
	var req DeclareWinnerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	result, err := services.DeclareWinner(database.DB, actor.ID, uint(id), req.WinnerNumber)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Winner declared successfully", result)
}

type OverrideResultRequest struct {
	GameID           uint   `json:"game_id"`
	WinnerNumber     int    `json:"winner_number"`
	ManualWinners    []uint `json:"manual_winners"`
	Note             string `json:"note"`
	PayoutMultiplier int64  `json:"payout_multiplier"`
}

// OverrideResult records a manual winner decision; the settlement sweep
// applies it when the game's window expires.
func OverrideResult(c *fiber.Ctx) error {
	var req OverrideResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.GameID == 0 {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}

	override, err := services.RecordOverride(database.DB,
		req.GameID, req.WinnerNumber, req.ManualWinners, req.Note, req.PayoutMultiplier)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONCreated(c, "Result override recorded", override)
}
