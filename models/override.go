package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultPayoutMultiplier = 2

// ManualOverride pins the winning number for a game ahead of the settlement
// sweep. ManualWinners is a JSON array of user IDs; only listed users who
// actually bid the winning number get paid.
type ManualOverride struct {
	gorm.Model

	GameID           uint           `gorm:"index" json:"game_id"`
	WinnerNumber     int            `json:"winner_number"`
	ManualWinners    datatypes.JSON `json:"manual_winners"`
	PayoutMultiplier int64          `gorm:"default:2" json:"payout_multiplier"`
	Note             string         `gorm:"size:255" json:"note"`
}

func (m *ManualOverride) SetManualWinners(ids []uint) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	m.ManualWinners = datatypes.JSON(raw)
	return nil
}

func (m *ManualOverride) ManualWinnerIDs() ([]uint, error) {
	if len(m.ManualWinners) == 0 {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal(m.ManualWinners, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
