package database

import (
	"fmt"
	"os"
	"strconv"

	"playwin/models"
	"playwin/utils/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Log.Fatalf("failed to connect to database: %v", err)
	}

	DB = db
	logger.Info("connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if err != nil {
		logger.Infof("invalid value for DB_AUTO_MIGRATE: %q", autoMigrateEnv)
	}

	if autoMigrate {
		if err := Migrate(DB); err != nil {
			logger.Log.Fatalf("failed to auto-migrate database: %v", err)
		}
		logger.Info("auto migration completed")
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.Game{},
		&models.Bid{},
		&models.Counter{},
		&models.ManualOverride{},
		&models.CommissionSettings{},
		&models.Withdrawal{},
	)
}

// LockForUpdate adds a SELECT ... FOR UPDATE clause on dialects that support
// it. SQLite (used by the test suite) has no row locks and rejects the
// syntax; its single-writer file lock serializes writes anyway.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
