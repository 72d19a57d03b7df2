package services

import (
	"errors"
	"time"

	"playwin/models"

	"gorm.io/gorm"
)

const windowLength = 30 * time.Minute

// WindowKey floors t to the nearest half-hour boundary, which is the
// canonical identifier of a betting window.
func WindowKey(t time.Time) string {
	return t.UTC().Truncate(windowLength).Format(time.RFC3339)
}

// CreateGame opens a new betting window. The unique index on time_window is
// the real duplicate guard; the pre-check just gives a clean error.
func CreateGame(db *gorm.DB, timeWindow string) (*models.Game, error) {
	var existing models.Game
	err := db.Where("time_window = ?", timeWindow).First(&existing).Error
	if err == nil {
		return nil, ErrGameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	game := models.Game{
		TimeWindow: timeWindow,
		Status:     models.GameStatusOpen,
		TotalPool:  0,
	}
	if err := db.Create(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGameExists
		}
		return nil, err
	}
	return &game, nil
}

// OpenCurrentWindow creates the game for the window containing now, if it
// does not exist. Safe to call repeatedly.
func OpenCurrentWindow(db *gorm.DB, now time.Time) (*models.Game, error) {
	game, err := CreateGame(db, WindowKey(now))
	if errors.Is(err, ErrGameExists) {
		return nil, nil
	}
	return game, err
}

func GetGame(db *gorm.DB, gameID uint) (*models.Game, error) {
	var game models.Game
	if err := db.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

func ListGames(db *gorm.DB, status string, limit int) ([]models.Game, error) {
	q := db.Order("created_at DESC").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var games []models.Game
	err := q.Find(&games).Error
	return games, err
}
