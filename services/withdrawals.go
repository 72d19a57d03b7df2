package services

import (
	"errors"

	"playwin/database"
	"playwin/models"

	"gorm.io/gorm"
)

// RequestWithdrawal debits the wallet immediately and files a pending
// withdrawal. Rejection later refunds the hold.
func RequestWithdrawal(db *gorm.DB, userID uint, amount int64, walletType, note string) (*models.Withdrawal, error) {
	if amount < 1 {
		return nil, ErrInvalidAmount
	}
	if note == "" {
		note = "Withdrawal request"
	}

	var withdrawal *models.Withdrawal
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := Debit(tx, LedgerEntry{
			UserID:        userID,
			InitiatorID:   &userID,
			InitiatorRole: models.RoleUser,
			Amount:        amount,
			WalletType:    walletType,
			TrxType:       models.TrxDebit,
			Note:          note,
		}); err != nil {
			return err
		}

		withdrawal = &models.Withdrawal{
			UserID:     userID,
			Amount:     amount,
			WalletType: walletType,
			Status:     models.WithdrawalPending,
			Note:       note,
		}
		return tx.Create(withdrawal).Error
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func ApproveWithdrawal(db *gorm.DB, processorID, withdrawalID uint) (*models.Withdrawal, error) {
	return resolveWithdrawal(db, processorID, withdrawalID, models.WithdrawalApproved, false)
}

// RejectWithdrawal releases the hold back to the wallet it came from.
func RejectWithdrawal(db *gorm.DB, processorID, withdrawalID uint) (*models.Withdrawal, error) {
	return resolveWithdrawal(db, processorID, withdrawalID, models.WithdrawalRejected, true)
}

func CompleteWithdrawal(db *gorm.DB, processorID, withdrawalID uint) (*models.Withdrawal, error) {
	return resolveWithdrawal(db, processorID, withdrawalID, models.WithdrawalCompleted, false)
}

func resolveWithdrawal(db *gorm.DB, processorID, withdrawalID uint, status string, refund bool) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := database.LockForUpdate(tx).First(&withdrawal, withdrawalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		// completed may follow approved; everything else needs pending
		if withdrawal.Status != models.WithdrawalPending &&
			!(status == models.WithdrawalCompleted && withdrawal.Status == models.WithdrawalApproved) {
			return ErrAlreadyProcessed
		}

		withdrawal.Status = status
		withdrawal.ProcessedByID = &processorID
		if err := tx.Save(&withdrawal).Error; err != nil {
			return err
		}

		if refund {
			if _, err := Credit(tx, LedgerEntry{
				UserID:        withdrawal.UserID,
				InitiatorID:   &processorID,
				InitiatorRole: models.RoleAdmin,
				Amount:        withdrawal.Amount,
				WalletType:    withdrawal.WalletType,
				TrxType:       models.TrxRefund,
				Note:          "Withdrawal rejected, amount refunded",
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func ListWithdrawals(db *gorm.DB, viewer *models.User, limit int) ([]models.Withdrawal, error) {
	q := db.Order("created_at DESC").Limit(limit)
	switch viewer.Role {
	case models.RoleUser:
		q = q.Where("user_id = ?", viewer.ID)
	case models.RoleAgent:
		q = q.Where("user_id IN (?)",
			db.Model(&models.User{}).Select("id").Where("assigned_agent_id = ?", viewer.ID))
	case models.RoleAdmin:
	default:
		return nil, ErrForbidden
	}
	var withdrawals []models.Withdrawal
	err := q.Find(&withdrawals).Error
	return withdrawals, err
}
