package models

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
	RoleUser  = "user"
)

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
	UserStatusBanned   = "banned"
)

type User struct {
	gorm.Model

	FullName           string `gorm:"size:128" json:"full_name"`
	Email              string `gorm:"uniqueIndex;size:128" json:"email"`
	Phone              string `gorm:"uniqueIndex;size:16" json:"phone"`
	GameID             string `gorm:"uniqueIndex;size:16" json:"game_id"`
	PasswordHash       string `gorm:"size:128" json:"-"`
	Role               string `gorm:"size:8;index" json:"role"`
	Status             string `gorm:"size:16;default:active" json:"status"`
	AssignedAgentID    *uint  `gorm:"index" json:"assigned_agent_id"`
	CreatedByID        uint   `json:"created_by_id"`
	MustChangePassword bool   `json:"must_change_password"`
}

var phoneRe = regexp.MustCompile(`^(\+91)?[6-9]\d{9}$`)

func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

var nonDigitRe = regexp.MustCompile(`\D`)

// GameID is the login handle players type at the kiosk: first four letters
// of the name plus the last five digits of the phone number.
func GenerateGameID(fullName, phone string) string {
	namePart := strings.ToUpper(strings.ReplaceAll(fullName, " ", ""))
	if len(namePart) > 4 {
		namePart = namePart[:4]
	}
	digits := nonDigitRe.ReplaceAllString(phone, "")
	if len(digits) > 5 {
		digits = digits[len(digits)-5:]
	}
	return namePart + digits
}
