package services

import (
	"errors"
	"fmt"

	"playwin/models"

	"gorm.io/gorm"
)

// Recharge minimums in paise: ₹1000 for agents, ₹500 for users.
const (
	minAgentRecharge = 100000
	minUserRecharge  = 50000
)

// Recharge credits a wallet on behalf of an admin or agent. Admins can fund
// anyone from thin air; agents fund only their assigned users, and the
// amount moves out of the agent's own main balance first.
func Recharge(db *gorm.DB, initiator *models.User, targetUserID uint, amount int64, walletType, note string) (*models.Wallet, error) {
	if amount < 1 {
		return nil, ErrInvalidAmount
	}
	if walletType != models.WalletMain && walletType != models.WalletBonus {
		return nil, ErrInvalidWalletType
	}

	var target models.User
	if err := db.First(&target, targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch initiator.Role {
	case models.RoleAdmin:
		if target.Role == models.RoleAgent && amount < minAgentRecharge {
			return nil, ErrBelowMinimum
		}
		if target.Role == models.RoleUser && amount < minUserRecharge {
			return nil, ErrBelowMinimum
		}
	case models.RoleAgent:
		if target.Role != models.RoleUser {
			return nil, ErrForbidden
		}
		if target.AssignedAgentID == nil || *target.AssignedAgentID != initiator.ID {
			return nil, ErrForbidden
		}
		if amount < minUserRecharge {
			return nil, ErrBelowMinimum
		}
	default:
		return nil, ErrForbidden
	}

	var wallet *models.Wallet
	err := db.Transaction(func(tx *gorm.DB) error {
		if initiator.Role == models.RoleAgent {
			if _, err := Debit(tx, LedgerEntry{
				UserID:        initiator.ID,
				InitiatorID:   &initiator.ID,
				InitiatorRole: models.RoleAgent,
				Amount:        amount,
				WalletType:    models.WalletMain,
				TrxType:       models.TrxDebit,
				Note:          fmt.Sprintf("Recharge to user %d", targetUserID),
			}); err != nil {
				if errors.Is(err, ErrInsufficientBalance) {
					return ErrInsufficientInitiatorBalance
				}
				return err
			}
		}

		var err error
		wallet, err = Credit(tx, LedgerEntry{
			UserID:        targetUserID,
			InitiatorID:   &initiator.ID,
			InitiatorRole: initiator.Role,
			Amount:        amount,
			WalletType:    walletType,
			TrxType:       models.TrxRecharge,
			Note:          note,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// ManualDebit is the admin's compensating adjustment.
func ManualDebit(db *gorm.DB, initiator *models.User, targetUserID uint, amount int64, walletType, note string) (*models.Wallet, error) {
	if initiator.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if note == "" {
		note = "Manual debit by admin"
	}

	var wallet *models.Wallet
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		wallet, err = Debit(tx, LedgerEntry{
			UserID:        targetUserID,
			InitiatorID:   &initiator.ID,
			InitiatorRole: initiator.Role,
			Amount:        amount,
			WalletType:    walletType,
			TrxType:       models.TrxDebit,
			Note:          note,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// ListTransactions returns the audit trail the viewer is allowed to see:
// users their own rows, agents their own plus their assigned users', admins
// everything (optionally filtered to one user).
func ListTransactions(db *gorm.DB, viewer *models.User, targetUserID uint, limit int) ([]models.WalletTransaction, error) {
	q := db.Order("created_at DESC").Limit(limit)

	switch viewer.Role {
	case models.RoleUser:
		q = q.Where("user_id = ?", viewer.ID)
	case models.RoleAgent:
		if targetUserID != 0 {
			var target models.User
			if err := db.First(&target, targetUserID).Error; err != nil {
				return nil, ErrNotFound
			}
			if target.AssignedAgentID == nil || *target.AssignedAgentID != viewer.ID {
				return nil, ErrForbidden
			}
			q = q.Where("user_id = ?", targetUserID)
		} else {
			q = q.Where("user_id = ? OR user_id IN (?)", viewer.ID,
				db.Model(&models.User{}).Select("id").Where("assigned_agent_id = ?", viewer.ID))
		}
	case models.RoleAdmin:
		if targetUserID != 0 {
			q = q.Where("user_id = ?", targetUserID)
		}
	default:
		return nil, ErrForbidden
	}

	var txns []models.WalletTransaction
	err := q.Find(&txns).Error
	return txns, err
}

func ListWallets(db *gorm.DB, viewer *models.User) ([]models.Wallet, error) {
	q := db.Order("updated_at DESC")
	switch viewer.Role {
	case models.RoleAdmin:
	case models.RoleAgent:
		q = q.Where("user_id IN (?)",
			db.Model(&models.User{}).Select("id").Where("assigned_agent_id = ?", viewer.ID))
	default:
		return nil, ErrForbidden
	}
	var wallets []models.Wallet
	err := q.Find(&wallets).Error
	return wallets, err
}
