package services

import (
	"errors"
	"strings"

	"playwin/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateUserInput struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	Role            string
	AssignedAgentID *uint
	CreatedByID     uint
}

// CreateUser registers an agent or player. The gameId login handle is
// derived from name and phone; first login forces a password change.
func CreateUser(db *gorm.DB, in CreateUserInput) (*models.User, error) {
	if len(in.FullName) < 2 || !models.ValidPhone(in.Phone) || len(in.Password) < 6 {
		return nil, ErrInvalidCredentials
	}
	if in.Role != models.RoleAgent && in.Role != models.RoleUser {
		return nil, ErrForbidden
	}
	if in.Role == models.RoleUser && in.AssignedAgentID != nil {
		var agent models.User
		if err := db.Where("id = ? AND role = ?", *in.AssignedAgentID, models.RoleAgent).First(&agent).Error; err != nil {
			return nil, ErrNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FullName:           in.FullName,
		Email:              strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:              in.Phone,
		GameID:             models.GenerateGameID(in.FullName, in.Phone),
		PasswordHash:       string(hash),
		Role:               in.Role,
		Status:             models.UserStatusActive,
		AssignedAgentID:    in.AssignedAgentID,
		CreatedByID:        in.CreatedByID,
		MustChangePassword: true,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGameExists
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate resolves an email or gameId plus password to an active user.
func Authenticate(db *gorm.DB, identifier, password string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ? OR game_id = ?",
		strings.ToLower(identifier), strings.ToUpper(identifier)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Status != models.UserStatusActive {
		return nil, ErrAccountInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func ChangePassword(db *gorm.DB, userID uint, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrInvalidCredentials
	}
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.MustChangePassword = false
	return db.Save(&user).Error
}

func GetUser(db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func ListUsers(db *gorm.DB, viewer *models.User, limit int) ([]models.User, error) {
	q := db.Order("created_at DESC").Limit(limit)
	switch viewer.Role {
	case models.RoleAdmin:
	case models.RoleAgent:
		q = q.Where("assigned_agent_id = ?", viewer.ID)
	default:
		return nil, ErrForbidden
	}
	var users []models.User
	err := q.Find(&users).Error
	return users, err
}

// EnsureAdmin bootstraps the platform admin account from the environment on
// first run.
func EnsureAdmin(db *gorm.DB, email, phone, password string) error {
	if email == "" || password == "" {
		return nil
	}
	var existing models.User
	err := db.Where("role = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		FullName:     "Platform Admin",
		Email:        strings.ToLower(email),
		Phone:        phone,
		GameID:       models.GenerateGameID("Platform Admin", phone),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
	}
	return db.Create(&admin).Error
}
