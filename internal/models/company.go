package models

import (
	"time"

	"gorm.io/gorm"
)

type Company struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Sector    string         `gorm:"type:varchar(255)" json:"sector"`
	BCVTeam   []string       `gorm:"serializer:json" json:"bcv_team"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Deals []Deal `gorm:"foreignKey:CompanyID" json:"deals,omitempty"`
}
