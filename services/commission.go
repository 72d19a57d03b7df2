package services

import (
	"errors"

	"playwin/models"

	"gorm.io/gorm"
)

// PoolSplit is the three-way division of a settled pool. The admin fee
// absorbs all floor-rounding, so the three always sum to the pool exactly.
type PoolSplit struct {
	AgentCommissionAmount int64 `json:"agent_commission_amount"`
	WinnerPayoutAmount    int64 `json:"winner_payout_amount"`
	AdminFeeAmount        int64 `json:"admin_fee_amount"`
}

func SplitPool(totalPool int64, s *models.CommissionSettings) PoolSplit {
	agent := totalPool * s.AgentCommissionPercentage / 100
	winner := totalPool * s.WinnerPayoutPercentage / 100
	return PoolSplit{
		AgentCommissionAmount: agent,
		WinnerPayoutAmount:    winner,
		AdminFeeAmount:        totalPool - agent - winner,
	}
}

// CurrentSettings returns the most recently created settings row. Settings
// are append-only; history stays queryable forever.
func CurrentSettings(db *gorm.DB) (*models.CommissionSettings, error) {
	var s models.CommissionSettings
	if err := db.Order("created_at DESC, id DESC").First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCommissionSettings
		}
		return nil, err
	}
	return &s, nil
}

// EnsureDefaultSettings seeds the 5/80/15 split with a ₹10–₹10000 bet range
// (bet amounts are paise) if no settings row exists yet.
func EnsureDefaultSettings(db *gorm.DB) (*models.CommissionSettings, error) {
	s, err := CurrentSettings(db)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrNoCommissionSettings) {
		return nil, err
	}
	seeded := models.CommissionSettings{
		AgentCommissionPercentage: 5,
		WinnerPayoutPercentage:    80,
		AdminFeePercentage:        15,
		MinBetAmount:              1000,
		MaxBetAmount:              1000000,
		UpdatedBy:                 "System",
	}
	if err := db.Create(&seeded).Error; err != nil {
		return nil, err
	}
	return &seeded, nil
}

type SettingsInput struct {
	AgentCommissionPercentage int64
	WinnerPayoutPercentage    int64
	AdminFeePercentage        int64
	MinBetAmount              int64
	MaxBetAmount              int64
	UpdatedBy                 string
}

// UpdateSettings appends a new settings row after validating it. Existing
// rows are never touched.
func UpdateSettings(db *gorm.DB, in SettingsInput) (*models.CommissionSettings, error) {
	for _, pct := range []int64{in.AgentCommissionPercentage, in.WinnerPayoutPercentage, in.AdminFeePercentage} {
		if pct < 0 || pct > 100 {
			return nil, ErrPercentagesExceed
		}
	}
	if in.AgentCommissionPercentage+in.WinnerPayoutPercentage+in.AdminFeePercentage > 100 {
		return nil, ErrPercentagesExceed
	}
	if in.MinBetAmount < 1 || in.MaxBetAmount < 1 || in.MinBetAmount >= in.MaxBetAmount {
		return nil, ErrBetRangeInvalid
	}

	s := models.CommissionSettings{
		AgentCommissionPercentage: in.AgentCommissionPercentage,
		WinnerPayoutPercentage:    in.WinnerPayoutPercentage,
		AdminFeePercentage:        in.AdminFeePercentage,
		MinBetAmount:              in.MinBetAmount,
		MaxBetAmount:              in.MaxBetAmount,
		UpdatedBy:                 in.UpdatedBy,
	}
	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func SettingsHistory(db *gorm.DB, limit int) ([]models.CommissionSettings, error) {
	var history []models.CommissionSettings
	err := db.Order("created_at DESC, id DESC").Limit(limit).Find(&history).Error
	return history, err
}
