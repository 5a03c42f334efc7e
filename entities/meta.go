package entities

import "time"

// Meta carries the identity columns shared by every content record:
// an auto-assigned id and a server-set creation timestamp.
type Meta struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// ResetForInsert clears the identity columns so the store assigns fresh ones.
// Used on create (clients must not pick ids) and on restore from the bin.
func (m *Meta) ResetForInsert() {
	m.ID = 0
	m.CreatedAt = time.Time{}
}
