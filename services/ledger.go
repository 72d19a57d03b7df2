package services

import (
	"errors"

	"playwin/database"
	"playwin/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerEntry describes one wallet mutation. Amount is always positive
// paise; Credit and Debit pick the direction.
type LedgerEntry struct {
	UserID        uint
	InitiatorID   *uint
	InitiatorRole string
	Amount        int64
	WalletType    string
	TrxType       string
	Note          string
	RefID         string
}

// Credit adds to one of the wallet's balances and appends the audit row.
// Must run inside the caller's transaction.
func Credit(tx *gorm.DB, e LedgerEntry) (*models.Wallet, error) {
	return applyLedger(tx, e, +1)
}

// Debit removes from one of the wallet's balances, rejecting any mutation
// that would take it negative. Must run inside the caller's transaction.
func Debit(tx *gorm.DB, e LedgerEntry) (*models.Wallet, error) {
	return applyLedger(tx, e, -1)
}

func applyLedger(tx *gorm.DB, e LedgerEntry, sign int64) (*models.Wallet, error) {
	if e.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if e.WalletType != models.WalletMain && e.WalletType != models.WalletBonus {
		return nil, ErrInvalidWalletType
	}

	wallet, err := lockWallet(tx, e.UserID)
	if err != nil {
		return nil, err
	}

	var before, after int64
	switch e.WalletType {
	case models.WalletMain:
		before = wallet.Main
		after = before + sign*e.Amount
		wallet.Main = after
	case models.WalletBonus:
		before = wallet.Bonus
		after = before + sign*e.Amount
		wallet.Bonus = after
	}
	if after < 0 {
		return nil, ErrInsufficientBalance
	}

	if err := tx.Save(wallet).Error; err != nil {
		return nil, err
	}

	refID := e.RefID
	if refID == "" {
		refID = uuid.New().String()
	}
	trx := models.WalletTransaction{
		UserID:        e.UserID,
		InitiatorID:   e.InitiatorID,
		InitiatorRole: e.InitiatorRole,
		Amount:        e.Amount,
		WalletType:    e.WalletType,
		TrxType:       e.TrxType,
		BalanceBefore: before,
		BalanceAfter:  after,
		Note:          e.Note,
		RefID:         refID,
	}
	if err := tx.Create(&trx).Error; err != nil {
		return nil, err
	}

	return wallet, nil
}

// lockWallet fetches the wallet row FOR UPDATE, creating it lazily on first
// use so recharges and payouts work for users who never held funds.
func lockWallet(tx *gorm.DB, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := database.LockForUpdate(tx).Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.Wallet{UserID: userID}
		if err := tx.Create(&wallet).Error; err != nil {
			return nil, err
		}
		return &wallet, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetOrCreateWallet is the read-side counterpart used by balance endpoints.
func GetOrCreateWallet(db *gorm.DB, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := db.Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.Wallet{UserID: userID}
		if err := db.Create(&wallet).Error; err != nil {
			return nil, err
		}
		return &wallet, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
