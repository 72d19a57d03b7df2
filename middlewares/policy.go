package middlewares

import (
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
)

// Capability table: one place to read what each role may do, instead of
// role conditionals scattered through handlers.
var rolePermissions = map[string]map[string]bool{
	models.RoleAdmin: {
		"users:create":        true,
		"users:list":          true,
		"games:create":        true,
		"games:declare":       true,
		"games:override":      true,
		"bids:list-game":      true,
		"wallet:recharge":     true,
		"wallet:manual-debit": true,
		"wallet:list":         true,
		"withdrawals:review":  true,
		"commission:update":   true,
		"commission:history":  true,
	},
	models.RoleAgent: {
		"users:list":         true,
		"wallet:recharge":    true,
		"wallet:list":        true,
		"withdrawals:review": true,
	},
	models.RoleUser: {
		"bids:place":          true,
		"withdrawals:request": true,
	},
}

func Can(role, action string) bool {
	return rolePermissions[role][action]
}

// RequirePermission gates a route on the capability table. Runs after
// JWTAuth.
func RequirePermission(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := Actor(c)
		if actor == nil || !Can(actor.Role, action) {
			return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "FORBIDDEN")
		}
		return c.Next()
	}
}
