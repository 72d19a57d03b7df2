package auth

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/middlewares"
	"playwin/models"
	"playwin/services"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func userPayload(u *models.User) fiber.Map {
	return fiber.Map{
		"id":        u.ID,
		"full_name": u.FullName,
		"email":     u.Email,
		"game_id":   u.GameID,
		"role":      u.Role,
	}
}

// Login is the dashboard login, restricted to admin and agent accounts.
func Login(c *fiber.Ctx) error {
	return login(c, func(role string) bool {
		return role == models.RoleAdmin || role == models.RoleAgent
	})
}

// UserLogin is the player login.
func UserLogin(c *fiber.Ctx) error {
	return login(c, func(role string) bool {
		return role == models.RoleUser
	})
}

func login(c *fiber.Ctx, roleAllowed func(string) bool) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Identifier == "" || len(req.Password) < 6 {
		return helpers.JSONError(c, "IDENTIFIER_AND_PASSWORD_REQUIRED")
	}

	user, err := services.Authenticate(database.DB, req.Identifier, req.Password)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	if !roleAllowed(user.Role) {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ROLE_NOT_ALLOWED")
	}

	token, err := middlewares.SignToken(user)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "TOKEN_SIGNING_FAILED")
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"token":                token,
		"must_change_password": user.MustChangePassword,
		"user":                 userPayload(user),
	})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func ChangePassword(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if err := services.ChangePassword(database.DB, actor.ID, req.OldPassword, req.NewPassword); err != nil {
		return helpers.ServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "Password changed", nil)
}

func ValidateToken(c *fiber.Ctx) error {
	actor := middlewares.Actor(c)
	return helpers.JSONSuccess(c, "Token valid", fiber.Map{
		"valid": true,
		"user":  userPayload(actor),
	})
}
