package user

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/middlewares"
	"playwin/services"

	"github.com/gofiber/fiber/v2"
)

type CreateUserRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	AssignedAgentID *uint  `json:"assigned_agent_id"`
}

func CreateUser(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	created, err := services.CreateUser(database.DB, services.CreateUserInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		Role:            req.Role,
		AssignedAgentID: req.AssignedAgentID,
		CreatedByID:     actor.ID,
	})
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONCreated(c, "User created", created)
}

func ListUsers(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	users, err := services.ListUsers(database.DB, actor, 100)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Users", users)
}

func Me(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)
	return helpers.JSONSuccess(c, "Profile", actor)
}
