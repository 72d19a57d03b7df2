package models

import "gorm.io/gorm"

// Settings rows are append-only; the row with the highest CreatedAt is the
// active configuration. Amounts are paise, percentages whole numbers.
type CommissionSettings struct {
	gorm.Model

	AgentCommissionPercentage int64  `json:"agent_commission_percentage"`
	WinnerPayoutPercentage    int64  `json:"winner_payout_percentage"`
	AdminFeePercentage        int64  `json:"admin_fee_percentage"`
	MinBetAmount              int64  `json:"min_bet_amount"`
	MaxBetAmount              int64  `json:"max_bet_amount"`
	UpdatedBy                 string `gorm:"size:64" json:"updated_by"`
}
