package services_test

import (
	"testing"

	"playwin/models"
	"playwin/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreditCreatesWalletLazily(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, models.RoleUser, nil)

	err := db.Transaction(func(tx *gorm.DB) error {
		wallet, err := services.Credit(tx, services.LedgerEntry{
			UserID:        u.ID,
			InitiatorRole: models.RoleAdmin,
			Amount:        500,
			WalletType:    models.WalletMain,
			TrxType:       models.TrxRecharge,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(500), wallet.Main)
		assert.Equal(t, int64(0), wallet.Bonus)
		return nil
	})
	require.NoError(t, err)

	var trx models.WalletTransaction
	require.NoError(t, db.Where("user_id = ?", u.ID).First(&trx).Error)
	assert.Equal(t, models.TrxRecharge, trx.TrxType)
	assert.Equal(t, int64(0), trx.BalanceBefore)
	assert.Equal(t, int64(500), trx.BalanceAfter)
	assert.NotEmpty(t, trx.RefID)
}

func TestDebitNeverGoesNegative(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, u.ID, 100)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := services.Debit(tx, services.LedgerEntry{
			UserID:        u.ID,
			InitiatorRole: models.RoleAdmin,
			Amount:        101,
			WalletType:    models.WalletMain,
			TrxType:       models.TrxDebit,
		})
		return err
	})
	assert.ErrorIs(t, err, services.ErrInsufficientBalance)
	assert.Equal(t, int64(100), walletBalance(t, db, u.ID), "rejected debit must not move the balance")

	var count int64
	require.NoError(t, db.Model(&models.WalletTransaction{}).
		Where("user_id = ? AND trx_type = ?", u.ID, models.TrxDebit).Count(&count).Error)
	assert.Zero(t, count, "rejected debit must not write an audit row")
}

func TestBalancesAreIndependent(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, models.RoleUser, nil)

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := services.Credit(tx, services.LedgerEntry{
			UserID: u.ID, InitiatorRole: models.RoleAdmin,
			Amount: 300, WalletType: models.WalletBonus, TrxType: models.TrxBonus,
		}); err != nil {
			return err
		}
		// main holds nothing; bonus funds must not cover a main debit
		_, err := services.Debit(tx, services.LedgerEntry{
			UserID: u.ID, InitiatorRole: models.RoleAdmin,
			Amount: 100, WalletType: models.WalletMain, TrxType: models.TrxDebit,
		})
		return err
	})
	assert.ErrorIs(t, err, services.ErrInsufficientBalance)
}

func TestLedgerRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, models.RoleUser, nil)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := services.Credit(tx, services.LedgerEntry{
			UserID: u.ID, InitiatorRole: models.RoleAdmin,
			Amount: 0, WalletType: models.WalletMain, TrxType: models.TrxRecharge,
		})
		return err
	})
	assert.ErrorIs(t, err, services.ErrInvalidAmount)

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := services.Credit(tx, services.LedgerEntry{
			UserID: u.ID, InitiatorRole: models.RoleAdmin,
			Amount: 10, WalletType: "escrow", TrxType: models.TrxRecharge,
		})
		return err
	})
	assert.ErrorIs(t, err, services.ErrInvalidWalletType)
}

func TestEveryMutationWritesOneAuditRow(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, models.RoleUser, nil)

	fundWallet(t, db, u.ID, 1000)
	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := services.Debit(tx, services.LedgerEntry{
			UserID: u.ID, InitiatorRole: models.RoleUser,
			Amount: 400, WalletType: models.WalletMain, TrxType: models.TrxDebit,
		})
		return err
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.WalletTransaction{}).
		Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, int64(600), walletBalance(t, db, u.ID))
}
