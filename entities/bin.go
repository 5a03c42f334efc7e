package entities

import (
	"encoding/json"
	"time"
)

// BinEntry is a soft-delete snapshot. Data holds the full original record as
// JSON, including its old id; restore re-inserts it under a fresh id.
type BinEntry struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Source    string          `gorm:"size:100;not null" json:"source"`
	DeletedAt time.Time       `gorm:"column:deletedAt;autoCreateTime" json:"deletedAt"`
	Data      json.RawMessage `gorm:"type:text;not null" json:"data"`
}

func (BinEntry) TableName() string { return "bin" }
