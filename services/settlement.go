package services

import (
	"errors"
	"fmt"
	"time"

	"playwin/database"
	"playwin/models"
	"playwin/utils/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Games still open this long after their window start are picked up by the
// settlement sweep.
const settlementCutoff = 25 * time.Minute

type WinnerDetail struct {
	UserID       uint   `json:"user_id"`
	UserName     string `json:"user_name"`
	BidAmount    int64  `json:"bid_amount"`
	PayoutAmount int64  `json:"payout_amount"`
}

type AgentCommissionDetail struct {
	AgentID          uint   `json:"agent_id"`
	AgentName        string `json:"agent_name"`
	CommissionAmount int64  `json:"commission_amount"`
}

// SettlementResult is the full breakdown returned by DeclareWinner.
// RemainingAmount is the integer-division leftover of the winner payout
// pool; it is reported but deliberately credited nowhere.
type SettlementResult struct {
	Game             *models.Game            `json:"game"`
	TotalPool        int64                   `json:"total_pool"`
	Split            PoolSplit               `json:"split"`
	TotalWinners     int                     `json:"total_winners"`
	PayoutPerWinner  int64                   `json:"payout_per_winner"`
	RemainingAmount  int64                   `json:"remaining_amount"`
	Winners          []WinnerDetail          `json:"winners"`
	AgentCommissions []AgentCommissionDetail `json:"agent_commissions"`
}

// finalizeGame is the single status mutation point. The conditional WHERE
// makes the open→result transition a compare-and-set: whichever of the
// sweep and the admin declaration loses the race sees zero rows affected
// and rolls back without side effects.
func finalizeGame(tx *gorm.DB, gameID uint, resultNumber *int) error {
	res := tx.Model(&models.Game{}).
		Where("id = ? AND status = ?", gameID, models.GameStatusOpen).
		Updates(map[string]any{
			"status":        models.GameStatusResult,
			"result_number": resultNumber,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGameNotOpen
	}
	return nil
}

// DeclareWinner settles a game by admin decision, applying the full
// commission split: winners share the winner payout pool equally, each
// winner's assigned agent earns a cut of that winner's payout, and the
// platform keeps the fee plus all rounding.
func DeclareWinner(db *gorm.DB, adminID, gameID uint, winnerNumber int) (*SettlementResult, error) {
	if winnerNumber < models.MinBidNumber || winnerNumber > models.MaxBidNumber {
		return nil, ErrInvalidNumber
	}

	var result *SettlementResult
	err := db.Transaction(func(tx *gorm.DB) error {
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

		settings, err := CurrentSettings(tx)
		if err != nil {
			return err
		}
		split := SplitPool(game.TotalPool, settings)

		var winningBids []models.Bid
		if err := tx.Where("game_id = ? AND bid_number = ?", gameID, winnerNumber).
			Order("id").Find(&winningBids).Error; err != nil {
			return err
		}

		totalWinners := len(winningBids)
		var payoutPerWinner, remaining int64
		if totalWinners > 0 {
			payoutPerWinner = split.WinnerPayoutAmount / int64(totalWinners)
			remaining = split.WinnerPayoutAmount % int64(totalWinners)
		} else {
			remaining = split.WinnerPayoutAmount
		}

		refID := uuid.New().String()
		winners := make([]WinnerDetail, 0, totalWinners)
		agentTotals := make(map[uint]int64)
		var agentOrder []uint

		for _, bid := range winningBids {
			var user models.User
			if err := tx.First(&user, bid.UserID).Error; err != nil {
				return err
			}

			if payoutPerWinner > 0 {
				if _, err := Credit(tx, LedgerEntry{
					UserID:        user.ID,
					InitiatorID:   &adminID,
					InitiatorRole: models.RoleAdmin,
					Amount:        payoutPerWinner,
					WalletType:    models.WalletMain,
					TrxType:       models.TrxBonus,
					Note:          fmt.Sprintf("Winner payout for game %d", gameID),
					RefID:         refID,
				}); err != nil {
					return err
				}
			}
			winners = append(winners, WinnerDetail{
				UserID:       user.ID,
				UserName:     user.FullName,
				BidAmount:    bid.BidAmount,
				PayoutAmount: payoutPerWinner,
			})

			if user.AssignedAgentID != nil {
				agentID := *user.AssignedAgentID
				cut := payoutPerWinner * settings.AgentCommissionPercentage / 100
				if _, seen := agentTotals[agentID]; !seen {
					agentOrder = append(agentOrder, agentID)
				}
				agentTotals[agentID] += cut
			}
		}

		agentDetails := make([]AgentCommissionDetail, 0, len(agentOrder))
		for _, agentID := range agentOrder {
			total := agentTotals[agentID]
			if total <= 0 {
				continue
			}
			if _, err := Credit(tx, LedgerEntry{
				UserID:        agentID,
				InitiatorID:   &adminID,
				InitiatorRole: models.RoleAdmin,
				Amount:        total,
				WalletType:    models.WalletMain,
				TrxType:       models.TrxBonus,
				Note:          fmt.Sprintf("Agent commission for game %d", gameID),
				RefID:         refID,
			}); err != nil {
				return err
			}
			var agent models.User
			if err := tx.First(&agent, agentID).Error; err != nil {
				return err
			}
			agentDetails = append(agentDetails, AgentCommissionDetail{
				AgentID:          agentID,
				AgentName:        agent.FullName,
				CommissionAmount: total,
			})
		}

		if err := finalizeGame(tx, gameID, &winnerNumber); err != nil {
			return err
		}

		audit := models.ManualOverride{
			GameID:           gameID,
			WinnerNumber:     winnerNumber,
			PayoutMultiplier: 1,
			Note: fmt.Sprintf("Winner declared by admin. %d winners, %d paise each. Agent commission %d paise total.",
				totalWinners, payoutPerWinner, split.AgentCommissionAmount),
		}
		if err := audit.SetManualWinners(nil); err != nil {
			return err
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		game.Status = models.GameStatusResult
		game.ResultNumber = &winnerNumber
		result = &SettlementResult{
			Game:             &game,
			TotalPool:        game.TotalPool,
			Split:            split,
			TotalWinners:     totalWinners,
			PayoutPerWinner:  payoutPerWinner,
			RemainingAmount:  remaining,
			Winners:          winners,
			AgentCommissions: agentDetails,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordOverride registers a manual winner decision for the settlement
// sweep to honor. It does not pay anything itself: if the game is still
// open the next sweep applies the override, otherwise the row stands as an
// audit/compensation note.
func RecordOverride(db *gorm.DB, gameID uint, winnerNumber int, manualWinners []uint, note string, multiplier int64) (*models.ManualOverride, error) {
	if winnerNumber < models.MinBidNumber || winnerNumber > models.MaxBidNumber {
		return nil, ErrInvalidNumber
	}
	if multiplier <= 0 {
		multiplier = models.DefaultPayoutMultiplier
	}
	if _, err := GetGame(db, gameID); err != nil {
		return nil, err
	}

	override := models.ManualOverride{
		GameID:           gameID,
		WinnerNumber:     winnerNumber,
		PayoutMultiplier: multiplier,
		Note:             note,
	}
	if err := override.SetManualWinners(manualWinners); err != nil {
		return nil, err
	}
	if err := db.Create(&override).Error; err != nil {
		return nil, err
	}
	return &override, nil
}

// SweepExpiredGames settles every open game whose window started at least
// 25 minutes ago. Each game settles in its own transaction; one failure
// does not block the rest of the batch.
func SweepExpiredGames(db *gorm.DB, now time.Time) (int, error) {
	cutoff := now.Add(-settlementCutoff)
	var games []models.Game
	if err := db.Where("status = ? AND created_at <= ?", models.GameStatusOpen, cutoff).
		Order("id").Find(&games).Error; err != nil {
		return 0, err
	}

	settled := 0
	for i := range games {
		err := db.Transaction(func(tx *gorm.DB) error {
			return settleGame(tx, games[i].ID)
		})
		if errors.Is(err, ErrGameNotOpen) {
			// lost the race to an admin declaration; nothing to do
			continue
		}
		if err != nil {
			logger.Errorf("settlement failed for game %d: %v", games[i].ID, err)
			continue
		}
		settled++
	}
	return settled, nil
}

func settleGame(tx *gorm.DB, gameID uint) error {
	var game models.Game
	if err := database.LockForUpdate(tx).First(&game, gameID).Error; err != nil {
		return err
	}
	if game.Status != models.GameStatusOpen {
		return ErrGameNotOpen
	}

	var override models.ManualOverride
	err := tx.Where("game_id = ?", gameID).Order("id").First(&override).Error
	switch {
	case err == nil:
		return applyOverride(tx, &game, &override)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return applyAutoResult(tx, &game)
	default:
		return err
	}
}

// applyOverride pays each listed winner who actually bid the winning number
// their stake times the override multiplier, with no commission split.
func applyOverride(tx *gorm.DB, game *models.Game, override *models.ManualOverride) error {
	winnerIDs, err := override.ManualWinnerIDs()
	if err != nil {
		return err
	}

	multiplier := override.PayoutMultiplier
	if multiplier <= 0 {
		multiplier = models.DefaultPayoutMultiplier
	}

	for _, userID := range winnerIDs {
		var bid models.Bid
		err := tx.Where("game_id = ? AND user_id = ? AND bid_number = ?",
			game.ID, userID, override.WinnerNumber).Order("id").First(&bid).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := payoutWinner(tx, userID, bid.BidAmount*multiplier, game.ID); err != nil {
			return err
		}
	}

	if err := finalizeGame(tx, game.ID, &override.WinnerNumber); err != nil {
		return err
	}
	logger.Infof("manual override applied for game %d, number %d", game.ID, override.WinnerNumber)
	return nil
}

// applyAutoResult scans numbers 1..12 and picks the first with exactly one
// bidder whose doubled stake the pool can cover. The winner gets a flat 2x;
// no qualifying number settles the game with no payout.
func applyAutoResult(tx *gorm.DB, game *models.Game) error {
	byNumber, err := AggregateByNumber(tx, game.ID)
	if err != nil {
		return err
	}

	for n := models.MinBidNumber; n <= models.MaxBidNumber; n++ {
		bids := byNumber[n]
		if len(bids) != 1 {
			continue
		}
		bid := bids[0]
		if bid.BidAmount*2 > game.TotalPool {
			continue
		}
		if err := payoutWinner(tx, bid.UserID, bid.BidAmount*2, game.ID); err != nil {
			return err
		}
		if err := finalizeGame(tx, game.ID, &bid.BidNumber); err != nil {
			return err
		}
		logger.Infof("auto result for game %d: number %d, user %d", game.ID, n, bid.UserID)
		return nil
	}

	if err := finalizeGame(tx, game.ID, nil); err != nil {
		return err
	}
	logger.Infof("no winner for game %d, pool retained", game.ID)
	return nil
}

func payoutWinner(tx *gorm.DB, userID uint, amount int64, gameID uint) error {
	_, err := Credit(tx, LedgerEntry{
		UserID:        userID,
		InitiatorRole: models.RoleAdmin,
		Amount:        amount,
		WalletType:    models.WalletMain,
		TrxType:       models.TrxBonus,
		Note:          fmt.Sprintf("Game win payout for game %d", gameID),
	})
	return err
}
