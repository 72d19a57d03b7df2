package services_test

import (
	"testing"

	"playwin/models"
	"playwin/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRechargeMinimums(t *testing.T) {
	db := newTestDB(t)
	admin := newTestUser(t, db, models.RoleAdmin, nil)
	agent := newTestUser(t, db, models.RoleAgent, nil)
	user := newTestUser(t, db, models.RoleUser, nil)

	// minimums are rupee-scale: ₹1000 for agents, ₹500 for users
	_, err := services.Recharge(db, admin, agent.ID, 99999, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrBelowMinimum)
	_, err = services.Recharge(db, admin, user.ID, 49999, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrBelowMinimum)

	wallet, err := services.Recharge(db, admin, agent.ID, 100000, models.WalletMain, "float")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), wallet.Main)

	wallet, err = services.Recharge(db, admin, user.ID, 50000, models.WalletMain, "")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), wallet.Main)
}

func TestAgentRechargeMovesFloat(t *testing.T) {
	db := newTestDB(t)
	agent := newTestUser(t, db, models.RoleAgent, nil)
	user := newTestUser(t, db, models.RoleUser, &agent.ID)
	fundWallet(t, db, agent.ID, 200000)

	wallet, err := services.Recharge(db, agent, user.ID, 50000, models.WalletMain, "")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), wallet.Main)
	assert.Equal(t, int64(150000), walletBalance(t, db, agent.ID))
}

func TestAgentRechargeInsufficientFloat(t *testing.T) {
	db := newTestDB(t)
	agent := newTestUser(t, db, models.RoleAgent, nil)
	user := newTestUser(t, db, models.RoleUser, &agent.ID)
	fundWallet(t, db, agent.ID, 10000)

	_, err := services.Recharge(db, agent, user.ID, 50000, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrInsufficientInitiatorBalance)
	assert.Equal(t, int64(10000), walletBalance(t, db, agent.ID))
	assert.Zero(t, walletBalance(t, db, user.ID))
}

func TestAgentRechargeOnlyAssignedUsers(t *testing.T) {
	db := newTestDB(t)
	agent := newTestUser(t, db, models.RoleAgent, nil)
	otherAgent := newTestUser(t, db, models.RoleAgent, nil)
	stranger := newTestUser(t, db, models.RoleUser, &otherAgent.ID)
	unassigned := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, agent.ID, 500000)

	_, err := services.Recharge(db, agent, stranger.ID, 50000, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrForbidden)
	_, err = services.Recharge(db, agent, unassigned.ID, 50000, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrForbidden)
	_, err = services.Recharge(db, agent, otherAgent.ID, 100000, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.Equal(t, int64(500000), walletBalance(t, db, agent.ID))
}

func TestUserCannotRecharge(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, models.RoleUser, nil)
	target := newTestUser(t, db, models.RoleUser, nil)

	_, err := services.Recharge(db, u, target.ID, 50000, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestManualDebit(t *testing.T) {
	db := newTestDB(t)
	admin := newTestUser(t, db, models.RoleAdmin, nil)
	agent := newTestUser(t, db, models.RoleAgent, nil)
	u := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, u.ID, 1000)

	wallet, err := services.ManualDebit(db, admin, u.ID, 300, models.WalletMain, "adjustment")
	require.NoError(t, err)
	assert.Equal(t, int64(700), wallet.Main)

	_, err = services.ManualDebit(db, agent, u.ID, 300, models.WalletMain, "")
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestListTransactionsScoping(t *testing.T) {
	db := newTestDB(t)
	agent := newTestUser(t, db, models.RoleAgent, nil)
	mine := newTestUser(t, db, models.RoleUser, &agent.ID)
	other := newTestUser(t, db, models.RoleUser, nil)
	fundWallet(t, db, mine.ID, 100)
	fundWallet(t, db, other.ID, 200)

	rows, err := services.ListTransactions(db, mine, 0, 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].UserID)

	rows, err = services.ListTransactions(db, agent, 0, 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].UserID)

	_, err = services.ListTransactions(db, agent, other.ID, 50)
	assert.ErrorIs(t, err, services.ErrForbidden)
}
