package models

import "gorm.io/gorm"

const (
	WalletMain  = "main"
	WalletBonus = "bonus"
)

const (
	TrxRecharge = "recharge"
	TrxDebit    = "debit"
	TrxRefund   = "refund"
	TrxBonus    = "bonus"
)

// Balances are paise. Both must stay non-negative; every mutation goes
// through services.Ledger and writes exactly one WalletTransaction.
type Wallet struct {
	gorm.Model

	UserID uint  `gorm:"uniqueIndex" json:"user_id"`
	Main   int64 `json:"main"`
	Bonus  int64 `json:"bonus"`
}

type WalletTransaction struct {
	gorm.Model

	UserID        uint   `gorm:"index" json:"user_id"`
	InitiatorID   *uint  `gorm:"index" json:"initiator_id"`
	InitiatorRole string `gorm:"size:8" json:"initiator_role"`
	Amount        int64  `json:"amount"`
	WalletType    string `gorm:"size:8" json:"wallet_type"`
	TrxType       string `gorm:"size:16;index" json:"trx_type"`
	BalanceBefore int64  `json:"balance_before"`
	BalanceAfter  int64  `json:"balance_after"`
	Note          string `gorm:"size:255" json:"note"`
	RefID         string `gorm:"size:64;index" json:"ref_id"`
}
