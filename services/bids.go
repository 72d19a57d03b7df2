package services

import (
	"errors"
	"fmt"

	"playwin/database"
	"playwin/models"

	"gorm.io/gorm"
)

const bidSequenceCounter = "bid_sequence"

// nextBidSequence increments the global bid counter under a row lock so the
// sequence stays strictly monotonic across concurrent callers.
func nextBidSequence(tx *gorm.DB) (int64, error) {
	var counter models.Counter
	err := database.LockForUpdate(tx).Where("name = ?", bidSequenceCounter).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.Counter{Name: bidSequenceCounter}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	counter.Sequence++
	if err := tx.Save(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Sequence, nil
}

// PlaceBid stakes amount paise on a number in an open game. The wallet
// debit, sequence assignment, bid row and pool increment commit as one unit
// or not at all.
func PlaceBid(db *gorm.DB, userID, gameID uint, number int, amount int64) (*models.Bid, error) {
	if number < models.MinBidNumber || number > models.MaxBidNumber {
		return nil, ErrInvalidNumber
	}
	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	var bid *models.Bid
	err := db.Transaction(func(tx *gorm.DB) error {
		if settings, err := CurrentSettings(tx); err == nil {
			if amount < settings.MinBetAmount {
				return ErrBelowMinimum
			}
			if amount > settings.MaxBetAmount {
				return ErrAboveMaximum
			}
		} else if !errors.Is(err, ErrNoCommissionSettings) {
			return err
		}

		var game models.Game
		if err := database.LockForUpdate(tx).First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if game.Status != models.GameStatusOpen {
			return ErrGameNotOpen
		}

		if _, err := Debit(tx, LedgerEntry{
			UserID:        userID,
			InitiatorID:   &userID,
			InitiatorRole: models.RoleUser,
			Amount:        amount,
			WalletType:    models.WalletMain,
			TrxType:       models.TrxDebit,
			Note:          fmt.Sprintf("Bid on number %d for game %s", number, game.TimeWindow),
		}); err != nil {
			return err
		}

		seq, err := nextBidSequence(tx)
		if err != nil {
			return err
		}

		bid = &models.Bid{
			UserID:    userID,
			GameID:    gameID,
			BidNumber: number,
			Sequence:  seq,
			BidAmount: amount,
		}
		if err := tx.Create(bid).Error; err != nil {
			return err
		}

		return tx.Model(&game).
			Update("total_pool", gorm.Expr("total_pool + ?", amount)).Error
	})
	if err != nil {
		return nil, err
	}
	return bid, nil
}

// AggregateByNumber groups a game's bids by chosen number, in placement
// order within each bucket. Settlement walks this 1..12.
func AggregateByNumber(db *gorm.DB, gameID uint) (map[int][]models.Bid, error) {
	var bids []models.Bid
	if err := db.Where("game_id = ?", gameID).Order("id").Find(&bids).Error; err != nil {
		return nil, err
	}
	byNumber := make(map[int][]models.Bid)
	for _, b := range bids {
		byNumber[b.BidNumber] = append(byNumber[b.BidNumber], b)
	}
	return byNumber, nil
}

func ListUserBids(db *gorm.DB, userID uint, limit int) ([]models.Bid, error) {
	var bids []models.Bid
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&bids).Error
	return bids, err
}

// ListAgentBids returns bids placed by the agent's assigned users.
func ListAgentBids(db *gorm.DB, agentID uint, limit int) ([]models.Bid, error) {
	var bids []models.Bid
	err := db.Where("user_id IN (?)",
		db.Model(&models.User{}).Select("id").Where("assigned_agent_id = ?", agentID),
	).Order("created_at DESC").Limit(limit).Find(&bids).Error
	return bids, err
}

func ListGameBids(db *gorm.DB, gameID uint) ([]models.Bid, error) {
	var bids []models.Bid
	err := db.Where("game_id = ?", gameID).Order("created_at DESC").Find(&bids).Error
	return bids, err
}
