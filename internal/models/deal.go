package models

import (
	"time"

	"gorm.io/gorm"
)

type DealStatus string

const (
	DealStatusPipeline DealStatus = "pipeline"
	DealStatusActive   DealStatus = "active"
	DealStatusClosing  DealStatus = "closing"
	DealStatusClosed   DealStatus = "closed"
)

type Deal struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	ReferenceCode string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference_code"`
	CompanyID     uint64         `gorm:"not null;index" json:"company_id"`
	Round         string         `gorm:"type:varchar(50)" json:"round"`
	Amount        int64          `json:"amount"`
	Status        DealStatus     `gorm:"type:varchar(20);not null;default:'pipeline'" json:"status"`
	LeadInvestor  string         `gorm:"type:varchar(255)" json:"lead_investor"`
	CreatorID     uint64         `gorm:"not null" json:"creator_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Company  Company       `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Creator  User          `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Tasks    []Task        `gorm:"foreignKey:DealID" json:"tasks,omitempty"`
	Counsels []DealCounsel `gorm:"foreignKey:DealID" json:"counsels,omitempty"`
}
