package models

import (
	"time"

	"gorm.io/gorm"
)

type Attorney struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Position    string         `gorm:"type:varchar(255)" json:"position"`
	LawFirmID   uint64         `gorm:"not null;index" json:"law_firm_id"`
	Initials    string         `gorm:"type:varchar(8)" json:"initials"`
	AvatarColor string         `gorm:"type:varchar(20)" json:"avatar_color"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	LawFirm LawFirm `gorm:"foreignKey:LawFirmID" json:"law_firm,omitempty"`
}
