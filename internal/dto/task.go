package dto

import (
	"time"

	"github.com/dealdesk/deal-management-api/internal/assignee"
	"github.com/dealdesk/deal-management-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Initials    string `json:"initials"`
	AvatarColor string `json:"avatar_color"`
}

// TaskDTO represents a task in API responses. Assignee is the resolved
// variant of the four foreign-key slots, AssigneeLabel its display name.
type TaskDTO struct {
	ID            uint64             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	DealID        uint64             `json:"deal_id"`
	DueDate       *time.Time         `json:"due_date"`
	TaskType      models.TaskType    `json:"task_type"`
	Status        models.TaskStatus  `json:"status"`
	Assignee      *assignee.Assignee `json:"assignee"`
	AssigneeLabel string             `json:"assignee_label"`
	CreatorID     uint64             `json:"creator_id"`
	Creator       *UserDTO           `json:"creator,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Username:    user.Username,
		FullName:    user.FullName,
		Initials:    user.Initials,
		AvatarColor: user.AvatarColor,
	}
}

// ToTaskDTO converts a Task model to TaskDTO, resolving the assignee
// against the given directory
func ToTaskDTO(task models.Task, dir assignee.Directory) TaskDTO {
	dto := TaskDTO{
		ID:            task.ID,
		Name:          task.Name,
		Description:   task.Description,
		DealID:        task.DealID,
		DueDate:       task.DueDate,
		TaskType:      task.TaskType,
		Status:        task.Status,
		Assignee:      assignee.Resolve(task.Ref, dir),
		AssigneeLabel: assignee.LabelFor(task.Ref, dir),
		CreatorID:     task.CreatorID,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}

	// Include creator if preloaded
	if task.Creator.ID != 0 {
		creator := ToUserDTO(task.Creator)
		dto.Creator = &creator
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks against one directory snapshot
func ToTaskDTOs(tasks []models.Task, dir assignee.Directory) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task, dir)
	}
	return dtos
}
