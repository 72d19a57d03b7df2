package services_test

import (
	"fmt"
	"strings"
	"testing"

	"playwin/database"
	"playwin/models"
	"playwin/services"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database. Each test gets its own
// shared-cache name so parallel tests never see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

var testUserSeq int

func newTestUser(t *testing.T, db *gorm.DB, role string, assignedAgentID *uint) *models.User {
	t.Helper()
	testUserSeq++
	user := models.User{
		FullName:        fmt.Sprintf("Test %s %d", role, testUserSeq),
		Email:           fmt.Sprintf("%s%d@example.com", role, testUserSeq),
		Phone:           fmt.Sprintf("+9198765%05d", testUserSeq),
		GameID:          fmt.Sprintf("TEST%05d", testUserSeq),
		PasswordHash:    "x",
		Role:            role,
		Status:          models.UserStatusActive,
		AssignedAgentID: assignedAgentID,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// fundWallet credits the user's main balance through the ledger.
func fundWallet(t *testing.T, db *gorm.DB, userID uint, amount int64) {
	t.Helper()
	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := services.Credit(tx, services.LedgerEntry{
			UserID:        userID,
			InitiatorRole: models.RoleAdmin,
			Amount:        amount,
			WalletType:    models.WalletMain,
			TrxType:       models.TrxRecharge,
			Note:          "test funding",
		})
		return err
	})
	require.NoError(t, err)
}

func walletBalance(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	wallet, err := services.GetOrCreateWallet(db, userID)
	require.NoError(t, err)
	return wallet.Main
}

func seedDefaultSettings(t *testing.T, db *gorm.DB) *models.CommissionSettings {
	t.Helper()
	s, err := services.EnsureDefaultSettings(db)
	require.NoError(t, err)
	return s
}
