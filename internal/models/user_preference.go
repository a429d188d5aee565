package models

import "time"

// UserPreference is a per-user key-value row for UI state such as card
// expand/collapse, kept server-side behind an explicit store instead of
// ambient browser storage.
type UserPreference struct {
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	Key       string    `gorm:"primarykey;type:varchar(255)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
