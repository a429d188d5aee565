package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dealdesk/deal-management-api/internal/assignee"
	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/repository"
)

var ErrCustomAssigneeNameRequired = errors.New("custom assignee name is required")

// DirectoryService serves the assignee directories: internal users, custom
// assignees, law firms, and attorneys.
type DirectoryService struct {
	dirRepo repository.DirectoryRepository
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(dirRepo repository.DirectoryRepository) *DirectoryService {
	return &DirectoryService{
		dirRepo: dirRepo,
	}
}

// ListUsers returns all internal users.
func (s *DirectoryService) ListUsers() ([]models.User, error) {
	users, err := s.dirRepo.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListCustomAssignees returns all ad-hoc external assignees.
func (s *DirectoryService) ListCustomAssignees() ([]models.CustomAssignee, error) {
	assignees, err := s.dirRepo.ListCustomAssignees()
	if err != nil {
		return nil, fmt.Errorf("failed to list custom assignees: %w", err)
	}
	return assignees, nil
}

// CreateCustomAssignee creates an ad-hoc external assignee.
func (s *DirectoryService) CreateCustomAssignee(name string) (*models.CustomAssignee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCustomAssigneeNameRequired
	}

	ca := &models.CustomAssignee{Name: name}
	if err := s.dirRepo.CreateCustomAssignee(ca); err != nil {
		return nil, fmt.Errorf("failed to create custom assignee: %w", err)
	}
	return ca, nil
}

// ListLawFirms returns all law firms.
func (s *DirectoryService) ListLawFirms() ([]models.LawFirm, error) {
	firms, err := s.dirRepo.ListLawFirms()
	if err != nil {
		return nil, fmt.Errorf("failed to list law firms: %w", err)
	}
	return firms, nil
}

// ListAttorneysByFirm returns the attorneys of one firm.
func (s *DirectoryService) ListAttorneysByFirm(lawFirmID uint64) ([]models.Attorney, error) {
	attorneys, err := s.dirRepo.ListAttorneysByFirm(lawFirmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attorneys: %w", err)
	}
	return attorneys, nil
}

// Snapshot loads every directory into an assignee.Directory for resolution.
// The directories are small (one firm's worth of people per deal), so a full
// load per request is fine.
func (s *DirectoryService) Snapshot() (assignee.Directory, error) {
	users, err := s.dirRepo.ListUsers()
	if err != nil {
		return assignee.Directory{}, fmt.Errorf("failed to load users: %w", err)
	}
	customs, err := s.dirRepo.ListCustomAssignees()
	if err != nil {
		return assignee.Directory{}, fmt.Errorf("failed to load custom assignees: %w", err)
	}
	firms, err := s.dirRepo.ListLawFirms()
	if err != nil {
		return assignee.Directory{}, fmt.Errorf("failed to load law firms: %w", err)
	}
	attorneys, err := s.dirRepo.ListAttorneys()
	if err != nil {
		return assignee.Directory{}, fmt.Errorf("failed to load attorneys: %w", err)
	}

	userRecords := make([]assignee.UserRecord, len(users))
	for i, u := range users {
		userRecords[i] = assignee.UserRecord{
			ID:          u.ID,
			FullName:    u.FullName,
			Initials:    u.Initials,
			AvatarColor: u.AvatarColor,
		}
	}

	customRecords := make([]assignee.CustomRecord, len(customs))
	for i, c := range customs {
		customRecords[i] = assignee.CustomRecord{ID: c.ID, Name: c.Name}
	}

	firmRecords := make([]assignee.FirmRecord, len(firms))
	for i, f := range firms {
		firmRecords[i] = assignee.FirmRecord{ID: f.ID, Name: f.Name, Specialty: f.Specialty}
	}

	attorneyRecords := make([]assignee.AttorneyRecord, len(attorneys))
	for i, a := range attorneys {
		attorneyRecords[i] = assignee.AttorneyRecord{
			ID:          a.ID,
			Name:        a.Name,
			Position:    a.Position,
			LawFirmID:   a.LawFirmID,
			Initials:    a.Initials,
			AvatarColor: a.AvatarColor,
		}
	}

	return assignee.NewDirectory(userRecords, customRecords, firmRecords, attorneyRecords), nil
}
