package models

import "gorm.io/gorm"

const (
	GameStatusOpen   = "open"
	GameStatusResult = "result"
)

const (
	MinBidNumber = 1
	MaxBidNumber = 12
)

// TimeWindow is the RFC3339 start of the 30-minute betting window. The
// unique index is what makes scheduler re-creation a no-op.
type Game struct {
	gorm.Model

	TimeWindow   string `gorm:"uniqueIndex;size:32" json:"time_window"`
	Status       string `gorm:"size:8;index" json:"status"`
	TotalPool    int64  `json:"total_pool"`
	ResultNumber *int   `json:"result_number"`
}

type Bid struct {
	gorm.Model

	UserID    uint  `gorm:"index" json:"user_id"`
	GameID    uint  `gorm:"index" json:"game_id"`
	BidNumber int   `gorm:"index" json:"bid_number"`
	Sequence  int64 `gorm:"uniqueIndex" json:"sequence"`
	BidAmount int64 `json:"bid_amount"`
}

type Counter struct {
	gorm.Model

	Name     string `gorm:"uniqueIndex;size:32"`
	Sequence int64
}
