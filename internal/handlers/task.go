package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dealdesk/deal-management-api/internal/dto"
	apierrors "github.com/dealdesk/deal-management-api/internal/errors"
	"github.com/dealdesk/deal-management-api/internal/middleware"
	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/services"
	"github.com/dealdesk/deal-management-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
	dirService  *services.DirectoryService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, dirService *services.DirectoryService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		dirService:  dirService,
	}
}

// ListTasks returns tasks with optional filters:
// deal_id, status, task_type, assignee_id, due_today, sort=due_date
func (h *TaskHandler) ListTasks(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)
	input := services.ListTasksInput{
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if dealIDStr := c.Query("deal_id"); dealIDStr != "" {
		dealID, err := strconv.ParseUint(dealIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid deal_id")
			return
		}
		input.DealID = &dealID
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TaskStatus(statusStr)
		if !status.Valid() {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		input.Status = &status
	}
	if typeStr := c.Query("task_type"); typeStr != "" {
		taskType := models.TaskType(typeStr)
		if !taskType.Valid() {
			apierrors.BadRequest(c, "Invalid task_type")
			return
		}
		input.TaskType = &taskType
	}
	if assigneeStr := c.Query("assignee_id"); assigneeStr != "" {
		assigneeID, err := strconv.ParseUint(assigneeStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid assignee_id")
			return
		}
		input.AssigneeID = &assigneeID
	}
	input.DueToday = c.Query("due_today") == "true"
	input.SortByDueDate = c.Query("sort") == "due_date"

	tasks, total, err := h.taskService.ListTasks(input)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	dir, err := h.dirService.Snapshot()
	if err != nil {
		apierrors.InternalError(c, "Failed to load directories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks, dir),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTask returns the task loaded by RequireTaskAccess, with its assignee
// resolved.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	dir, err := h.dirService.Snapshot()
	if err != nil {
		apierrors.InternalError(c, "Failed to load directories")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task, dir))
}

// CreateTask creates a new task. Quick-add sends only name and deal_id.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Name        string                      `json:"name" binding:"required"`
		Description string                      `json:"description"`
		DealID      uint64                      `json:"deal_id" binding:"required"`
		DueDate     *time.Time                  `json:"due_date"`
		TaskType    models.TaskType             `json:"task_type"`
		Status      models.TaskStatus           `json:"status"`
		Assignee    *services.AssigneeSelection `json:"assignee"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		DealID:      req.DealID,
		DueDate:     req.DueDate,
		TaskType:    req.TaskType,
		Status:      req.Status,
		Assignee:    req.Assignee,
		CreatorID:   userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	dir, err := h.dirService.Snapshot()
	if err != nil {
		apierrors.InternalError(c, "Failed to load directories")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task, dir))
}

// UpdateTask applies a partial update. Field presence matters: an absent
// "assignee" leaves the assignment alone, an explicit null unassigns.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	type UpdateTaskRequest struct {
		Name        *string            `json:"name"`
		Description *string            `json:"description"`
		Status      *models.TaskStatus `json:"status"`
		TaskType    *models.TaskType   `json:"task_type"`
		DueDate     json.RawMessage    `json:"due_date"`
		Assignee    json.RawMessage    `json:"assignee"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		TaskType:    req.TaskType,
	}

	if len(req.DueDate) > 0 {
		if string(req.DueDate) == "null" {
			input.ClearDueDate = true
		} else {
			var dueDate time.Time
			if err := json.Unmarshal(req.DueDate, &dueDate); err != nil {
				apierrors.BadRequest(c, "Invalid due_date")
				return
			}
			input.DueDate = &dueDate
		}
	}

	if len(req.Assignee) > 0 {
		input.SetAssignee = true
		if string(req.Assignee) != "null" {
			var sel services.AssigneeSelection
			if err := json.Unmarshal(req.Assignee, &sel); err != nil {
				apierrors.BadRequest(c, "Invalid assignee")
				return
			}
			input.Assignee = &sel
		}
	}

	updated, err := h.taskService.UpdateTask(task.ID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	dir, err := h.dirService.Snapshot()
	if err != nil {
		apierrors.InternalError(c, "Failed to load directories")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated, dir))
}

// DeleteTask deletes a task. Deletion is immediate and irreversible.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	if err := h.taskService.DeleteTask(task.ID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// CycleStatus advances a task one step through the status cycle.
func (h *TaskHandler) CycleStatus(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	updated, err := h.taskService.CycleStatus(task.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	dir, err := h.dirService.Snapshot()
	if err != nil {
		apierrors.InternalError(c, "Failed to load directories")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated, dir))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrDealNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskNameRequired),
		errors.Is(err, services.ErrTaskNameEmpty),
		errors.Is(err, services.ErrInvalidTaskStatus),
		errors.Is(err, services.ErrInvalidTaskType),
		errors.Is(err, services.ErrAssigneeNotFound),
		errors.Is(err, services.ErrInvalidAssigneeKind):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
