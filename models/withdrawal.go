package models

import "gorm.io/gorm"

const (
	WithdrawalPending   = "pending"
	WithdrawalApproved  = "approved"
	WithdrawalRejected  = "rejected"
	WithdrawalCompleted = "completed"
)

type Withdrawal struct {
	gorm.Model

	UserID        uint   `gorm:"index" json:"user_id"`
	Amount        int64  `json:"amount"`
	WalletType    string `gorm:"size:8" json:"wallet_type"`
	Status        string `gorm:"size:16;index;default:pending" json:"status"`
	Note          string `gorm:"size:255" json:"note"`
	ProcessedByID *uint  `json:"processed_by_id"`
}
