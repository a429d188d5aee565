package models

import "time"

// CustomAssignee is an ad-hoc external party assignable to tasks without a
// user, attorney, or firm record.
type CustomAssignee struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
