package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dealdesk/deal-management-api/internal/assignee"
	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskNameRequired   = errors.New("task name is required")
	ErrTaskNameEmpty      = errors.New("task name cannot be empty")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrInvalidTaskType    = errors.New("invalid task type")
	ErrAssigneeNotFound   = errors.New("selected assignee does not exist")
	ErrInvalidAssigneeKind = errors.New("invalid assignee kind")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	dealRepo repository.DealRepository
	dir      *DirectoryService
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, dealRepo repository.DealRepository, dir *DirectoryService) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		dealRepo: dealRepo,
		dir:      dir,
	}
}

// AssigneeSelection is the user's pick from one of the four directories.
type AssigneeSelection struct {
	Kind assignee.Kind `json:"kind"`
	ID   uint64        `json:"id"`
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	DealID        *uint64
	Status        *models.TaskStatus
	TaskType      *models.TaskType
	AssigneeID    *uint64
	DueToday      bool
	SortByDueDate bool
	Page          int
	PageSize      int
}

// CreateTaskInput represents input for creating a task. Quick-add sends
// only a name and deal; everything else gets defaults.
type CreateTaskInput struct {
	Name        string
	Description string
	DealID      uint64
	DueDate     *time.Time
	TaskType    models.TaskType
	Status      models.TaskStatus
	Assignee    *AssigneeSelection
	CreatorID   uint64
}

// UpdateTaskInput represents input for updating a task. SetAssignee marks
// that the assignee slots should be rewritten, with a nil Assignee meaning
// unassign.
type UpdateTaskInput struct {
	Name         *string
	Description  *string
	Status       *models.TaskStatus
	TaskType     *models.TaskType
	DueDate      *time.Time
	ClearDueDate bool
	SetAssignee  bool
	Assignee     *AssigneeSelection
}

// ListTasks returns tasks matching the provided filters
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, int64, error) {
	filter := repository.TaskFilter{
		DealID:        input.DealID,
		Status:        input.Status,
		TaskType:      input.TaskType,
		AssigneeID:    input.AssigneeID,
		Page:          input.Page,
		PageSize:      input.PageSize,
		SortByDueDate: input.SortByDueDate,
	}

	if input.DueToday {
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)
		filter.DueDateFrom = &startOfDay
		filter.DueDateTo = &endOfDay
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// GetTask returns a task with related data
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Creator", "Deal")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// CreateTask creates a new task, applying quick-add defaults
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTaskNameRequired
	}

	if _, err := s.dealRepo.FindByID(input.DealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to verify deal: %w", err)
	}

	if input.Status == "" {
		input.Status = models.TaskStatusOpen
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidTaskStatus
	}
	if input.TaskType == "" {
		input.TaskType = models.TaskTypeInternal
	}
	if !input.TaskType.Valid() {
		return nil, ErrInvalidTaskType
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		DealID:      input.DealID,
		DueDate:     input.DueDate,
		TaskType:    input.TaskType,
		Status:      input.Status,
		CreatorID:   input.CreatorID,
	}

	if input.Assignee != nil {
		ref, err := s.refForSelection(input.Assignee)
		if err != nil {
			return nil, err
		}
		task.Ref = ref
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Creator", "Deal")
}

// UpdateTask updates an existing task field by field
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrTaskNameEmpty
		}
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	if input.TaskType != nil {
		if !input.TaskType.Valid() {
			return nil, ErrInvalidTaskType
		}
		task.TaskType = *input.TaskType
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.SetAssignee {
		ref, err := s.refForSelection(input.Assignee)
		if err != nil {
			return nil, err
		}
		task.Ref = ref
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Creator", "Deal")
}

// DeleteTask deletes a task
func (s *TaskService) DeleteTask(taskID uint64) error {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// CycleStatus advances a task one step through the status cycle
func (s *TaskService) CycleStatus(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Status = task.Status.Next()

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to cycle status: %w", err)
	}

	return task, nil
}

// refForSelection validates a selection against the directories and converts
// it to the exclusive slot set. Every write of the four assignee fields goes
// through assignee.ApplySelection here and nowhere else.
func (s *TaskService) refForSelection(sel *AssigneeSelection) (assignee.Ref, error) {
	if sel == nil {
		return assignee.ApplySelection(nil), nil
	}

	dir, err := s.dir.Snapshot()
	if err != nil {
		return assignee.Ref{}, fmt.Errorf("failed to load directories: %w", err)
	}

	resolved := assignee.Assignee{Kind: sel.Kind, ID: sel.ID}
	switch sel.Kind {
	case assignee.KindUser:
		if _, ok := dir.Users[sel.ID]; !ok {
			return assignee.Ref{}, ErrAssigneeNotFound
		}
	case assignee.KindCustom:
		if _, ok := dir.CustomAssignees[sel.ID]; !ok {
			return assignee.Ref{}, ErrAssigneeNotFound
		}
	case assignee.KindLawFirm:
		if _, ok := dir.LawFirms[sel.ID]; !ok {
			return assignee.Ref{}, ErrAssigneeNotFound
		}
	case assignee.KindAttorney:
		attorney, ok := dir.Attorneys[sel.ID]
		if !ok {
			return assignee.Ref{}, ErrAssigneeNotFound
		}
		resolved.LawFirmID = attorney.LawFirmID
	default:
		return assignee.Ref{}, ErrInvalidAssigneeKind
	}

	return assignee.ApplySelection(&resolved), nil
}
