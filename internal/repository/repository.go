package repository

import (
	"time"

	"github.com/dealdesk/deal-management-api/internal/counsel"
	"github.com/dealdesk/deal-management-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete soft deletes a task
	Delete(id uint64) error

	// CountByStatus counts a deal's tasks grouped by status
	CountByStatus(dealID uint64) (map[models.TaskStatus]int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	DealID        *uint64
	Status        *models.TaskStatus
	TaskType      *models.TaskType
	AssigneeID    *uint64
	DueDateFrom   *time.Time
	DueDateTo     *time.Time
	SortByDueDate bool
	Page          int
	PageSize      int
}

// DealRepository defines the interface for deal data access
type DealRepository interface {
	// Create creates a new deal
	Create(deal *models.Deal) error

	// FindByID finds a deal by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Deal, error)

	// List retrieves deals with filtering and pagination
	List(filter DealFilter) ([]models.Deal, int64, error)

	// Update updates a deal
	Update(deal *models.Deal) error

	// UpdateWithTeam updates a deal and its company's team in one transaction
	UpdateWithTeam(deal *models.Deal, team []string) error

	// Delete soft deletes a deal and its tasks
	Delete(id uint64) error
}

// DealFilter holds filtering options for listing deals
type DealFilter struct {
	CompanyID *uint64
	Status    *models.DealStatus
	Page      int
	PageSize  int
}

// CounselRepository defines the interface for deal-counsel data access
type CounselRepository interface {
	// ListByDeal lists all counsel rows for a deal
	ListByDeal(dealID uint64, preload ...string) ([]models.DealCounsel, error)

	// ListByDealAndRole lists counsel rows for one role on a deal
	ListByDealAndRole(dealID uint64, role models.CounselRole) ([]models.DealCounsel, error)

	// ReplaceForRole replaces every counsel row for a (deal, role) pair with
	// the given entries, as delete-then-insert in one transaction
	ReplaceForRole(dealID uint64, role models.CounselRole, entries []counsel.Entry) error
}

// DirectoryRepository defines the interface for assignee directory access
type DirectoryRepository interface {
	// ListUsers lists all internal users
	ListUsers() ([]models.User, error)

	// ListCustomAssignees lists all ad-hoc external assignees
	ListCustomAssignees() ([]models.CustomAssignee, error)

	// CreateCustomAssignee creates an ad-hoc external assignee
	CreateCustomAssignee(ca *models.CustomAssignee) error

	// ListLawFirms lists all law firms
	ListLawFirms() ([]models.LawFirm, error)

	// ListAttorneys lists all attorneys
	ListAttorneys() ([]models.Attorney, error)

	// ListAttorneysByFirm lists the attorneys of one firm
	ListAttorneysByFirm(lawFirmID uint64) ([]models.Attorney, error)
}

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	// FindByID finds a company by ID
	FindByID(id uint64) (*models.Company, error)

	// Update updates a company
	Update(company *models.Company) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// PreferenceStore is the explicit key-value store for per-user UI state.
type PreferenceStore interface {
	// Get returns the stored value for a key, or ("", nil) when unset
	Get(userID uint64, key string) (string, error)

	// Set upserts the value for a key
	Set(userID uint64, key, value string) error
}
