package models

import (
	"time"

	"gorm.io/gorm"
)

type LawFirm struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Specialty string         `gorm:"type:varchar(255)" json:"specialty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Attorneys []Attorney `gorm:"foreignKey:LawFirmID" json:"attorneys,omitempty"`
}
