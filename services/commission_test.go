package services_test

import (
	"math/rand"
	"testing"

	"playwin/models"
	"playwin/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPoolDeterminism(t *testing.T) {
	settings := &models.CommissionSettings{
		AgentCommissionPercentage: 5,
		WinnerPayoutPercentage:    80,
		AdminFeePercentage:        15,
	}

	split := services.SplitPool(1000, settings)
	assert.Equal(t, int64(50), split.AgentCommissionAmount)
	assert.Equal(t, int64(800), split.WinnerPayoutAmount)
	assert.Equal(t, int64(150), split.AdminFeeAmount)
}

func TestSplitPoolConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		agentPct := rng.Int63n(101)
		winnerPct := rng.Int63n(101 - agentPct)
		settings := &models.CommissionSettings{
			AgentCommissionPercentage: agentPct,
			WinnerPayoutPercentage:    winnerPct,
			AdminFeePercentage:        100 - agentPct - winnerPct,
		}
		pool := rng.Int63n(10_000_000)

		split := services.SplitPool(pool, settings)
		require.Equal(t, pool, split.AgentCommissionAmount+split.WinnerPayoutAmount+split.AdminFeeAmount,
			"pool=%d agent=%d winner=%d", pool, agentPct, winnerPct)
		require.GreaterOrEqual(t, split.AgentCommissionAmount, int64(0))
		require.GreaterOrEqual(t, split.WinnerPayoutAmount, int64(0))
		require.GreaterOrEqual(t, split.AdminFeeAmount, int64(0))
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	db := newTestDB(t)

	_, err := services.UpdateSettings(db, services.SettingsInput{
		AgentCommissionPercentage: 30,
		WinnerPayoutPercentage:    60,
		AdminFeePercentage:        20,
		MinBetAmount:              10,
		MaxBetAmount:              100,
	})
	assert.ErrorIs(t, err, services.ErrPercentagesExceed)

	_, err = services.UpdateSettings(db, services.SettingsInput{
		AgentCommissionPercentage: 5,
		WinnerPayoutPercentage:    80,
		AdminFeePercentage:        15,
		MinBetAmount:              100,
		MaxBetAmount:              100,
	})
	assert.ErrorIs(t, err, services.ErrBetRangeInvalid)
}

func TestSettingsAppendOnly(t *testing.T) {
	db := newTestDB(t)
	seedDefaultSettings(t, db)

	updated, err := services.UpdateSettings(db, services.SettingsInput{
		AgentCommissionPercentage: 10,
		WinnerPayoutPercentage:    70,
		AdminFeePercentage:        20,
		MinBetAmount:              5000,
		MaxBetAmount:              500000,
		UpdatedBy:                 "Admin (1)",
	})
	require.NoError(t, err)

	current, err := services.CurrentSettings(db)
	require.NoError(t, err)
	assert.Equal(t, updated.ID, current.ID)
	assert.Equal(t, int64(10), current.AgentCommissionPercentage)

	history, err := services.SettingsHistory(db, 20)
	require.NoError(t, err)
	assert.Len(t, history, 2, "old settings rows must be preserved")
}

func TestCurrentSettingsMissing(t *testing.T) {
	db := newTestDB(t)
	_, err := services.CurrentSettings(db)
	assert.ErrorIs(t, err, services.ErrNoCommissionSettings)
}
