package services_test

import (
	"testing"

	"playwin/models"
	"playwin/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWithdrawalHoldsFunds(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, u.ID, 1000)

	w, err := services.RequestWithdrawal(db, u.ID, 400, models.WalletMain, "")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalPending, w.Status)
	assert.Equal(t, int64(600), walletBalance(t, db, u.ID))
}

func TestRequestWithdrawalInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, u.ID, 100)

	_, err := services.RequestWithdrawal(db, u.ID, 400, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrInsufficientBalance)
	assert.Equal(t, int64(100), walletBalance(t, db, u.ID))

	var count int64
	require.NoError(t, db.Model(&models.Withdrawal{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRejectWithdrawalRefunds(t *testing.T) {
	db := newTestDB(t)
	admin := newTestUser(t, db, models.RoleAdmin, nil)
	u := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, u.ID, 1000)

	w, err := services.RequestWithdrawal(db, u.ID, 400, models.WalletMain, "")
	require.NoError(t, err)

	rejected, err := services.RejectWithdrawal(db, admin.ID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalRejected, rejected.Status)
	require.NotNil(t, rejected.ProcessedByID)
	assert.Equal(t, admin.ID, *rejected.ProcessedByID)
	assert.Equal(t, int64(1000), walletBalance(t, db, u.ID))

	var refund models.WalletTransaction
	require.NoError(t, db.Where("user_id = ? AND trx_type = ?", u.ID, models.TrxRefund).First(&refund).Error)
	assert.Equal(t, int64(400), refund.Amount)
}

func TestWithdrawalLifecycle(t *testing.T) {
	db := newTestDB(t)
	admin := newTestUser(t, db, models.RoleAdmin, nil)
	u := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, u.ID, 1000)

	w, err := services.RequestWithdrawal(db, u.ID, 400, models.WalletMain, "")
	require.NoError(t, err)

	approved, err := services.ApproveWithdrawal(db, admin.ID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalApproved, approved.Status)

	// approval holds the debit; only rejection refunds
	assert.Equal(t, int64(600), walletBalance(t, db, u.ID))

	completed, err := services.CompleteWithdrawal(db, admin.ID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalCompleted, completed.Status)

	_, err = services.RejectWithdrawal(db, admin.ID, w.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyProcessed)
	assert.Equal(t, int64(600), walletBalance(t, db, u.ID))
}

func TestWithdrawalDoubleProcess(t *testing.T) {
	db := newTestDB(t)
	admin := newTestUser(t, db, models.RoleAdmin, nil)
	u := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, u.ID, 1000)

	w, err := services.RequestWithdrawal(db, u.ID, 400, models.WalletMain, "")
	require.NoError(t, err)

	_, err = services.RejectWithdrawal(db, admin.ID, w.ID)
	require.NoError(t, err)

	_, err = services.RejectWithdrawal(db, admin.ID, w.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyProcessed)
	assert.Equal(t, int64(1000), walletBalance(t, db, u.ID), "refund must happen once")

	_, err = services.CompleteWithdrawal(db, admin.ID, w.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyProcessed)
}

func TestListWithdrawalsScoping(t *testing.T) {
	db := newTestDB(t)
	agent := newTestUser(t, db, models.RoleAgent, nil)
	mine := newTestUser(t, db, models.RoleUser, &agent.ID)
	other := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, mine.ID, 1000)
	fundWallet(t, db, other.ID, 1000)

	_, err := services.RequestWithdrawal(db, mine.ID, 100, models.WalletMain, "")
	require.NoError(t, err)
	_, err = services.RequestWithdrawal(db, other.ID, 100, models.WalletMain, "")
	require.NoError(t, err)

	rows, err := services.ListWithdrawals(db, agent, 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].UserID)

	rows, err = services.ListWithdrawals(db, other, 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, other.ID, rows[0].UserID)
}
