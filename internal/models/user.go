package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	FullName     string         `gorm:"type:varchar(255);not null" json:"full_name"`
	Initials     string         `gorm:"type:varchar(8)" json:"initials"`
	AvatarColor  string         `gorm:"type:varchar(20)" json:"avatar_color"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
