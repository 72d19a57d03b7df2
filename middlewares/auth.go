package middlewares

import (
	"os"
	"strings"
	"time"

	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID             uint   `json:"uid"`
	Role               string `json:"role"`
	GameID             string `json:"game_id"`
	MustChangePassword bool   `json:"must_change_password"`
	jwt.RegisteredClaims
}

const tokenTTL = 7 * 24 * time.Hour

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func SignToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:             user.ID,
		Role:               user.Role,
		GameID:             user.GameID,
		MustChangePassword: user.MustChangePassword,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// JWTAuth validates the bearer token and loads the actor onto the request.
func JWTAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "NO_TOKEN")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
	if err != nil || !token.Valid {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_TOKEN")
	}

	var actor models.User
	if err := database.DB.First(&actor, claims.UserID).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_TOKEN")
	}
	if actor.Status != models.UserStatusActive {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ACCOUNT_NOT_ACTIVE")
	}

	c.Locals("actor", actor)
	return c.Next()
}

func Actor(c *fiber.Ctx) *models.User {
	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return nil
	}
	return &actor
}
