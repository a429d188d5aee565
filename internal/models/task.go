package models

import (
	"time"

	"github.com/dealdesk/deal-management-api/internal/assignee"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusUrgent     TaskStatus = "urgent"
)

// Next returns the status reached by one click of the status cycle:
// open, in-progress, completed, back to open. Urgent drops back to open.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskStatusOpen:
		return TaskStatusInProgress
	case TaskStatusInProgress:
		return TaskStatusCompleted
	default:
		return TaskStatusOpen
	}
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted, TaskStatusUrgent:
		return true
	}
	return false
}

type TaskType string

const (
	TaskTypeInternal TaskType = "internal"
	TaskTypeExternal TaskType = "external"
)

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	return t == TaskTypeInternal || t == TaskTypeExternal
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	DealID      uint64     `gorm:"not null;index" json:"deal_id"`
	DueDate     *time.Time `json:"due_date"`
	TaskType    TaskType   `gorm:"type:varchar(20);not null;default:'internal'" json:"task_type"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`

	// The four mutually exclusive assignee slots; written only through
	// assignee.ApplySelection.
	assignee.Ref `gorm:"embedded"`

	CreatorID uint64         `gorm:"not null" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Deal    Deal `gorm:"foreignKey:DealID" json:"deal,omitempty"`
	Creator User `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}
