package bid

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/middlewares"
	"playwin/models"
	"playwin/services"

	"github.com/gofiber/fiber/v2"
)

type PlaceBidRequest struct {
	GameID    uint  `json:"game_id"`
	BidNumber int   `json:"bid_number"`
	BidAmount int64 `json:"bid_amount"`
}

func PlaceBid(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	var req PlaceBidRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.GameID == 0 {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}

	placed, err := services.PlaceBid(database.DB, actor.ID, req.GameID, req.BidNumber, req.BidAmount)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONCreated(c, "Bid placed", placed)
}

func ListMyBids(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	var (
		bids []models.Bid
		err  error
	)
	switch actor.Role {
	case models.RoleAgent:
		bids, err = services.ListAgentBids(database.DB, actor.ID, 100)
	default:
		bids, err = services.ListUserBids(database.DB, actor.ID, 100)
	}
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Bids", bids)
}

func ListGameBids(c *fiber.Ctx) error {
	gameID, err := c.ParamsInt("gameId")
	if err != nil || gameID <= 0 {
		return helpers.JSONError(c, "INVALID_GAME_ID")
	}
	bids, err := services.ListGameBids(database.DB, uint(gameID))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Bids", bids)
}
