package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDealNotFound      = errors.New("deal not found")
	ErrDealNameRequired  = errors.New("deal name is required")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrInvalidDealStatus = errors.New("invalid deal status")
)

// DealService handles deal business logic
type DealService struct {
	dealRepo    repository.DealRepository
	taskRepo    repository.TaskRepository
	counselRepo repository.CounselRepository
	companyRepo repository.CompanyRepository
}

// NewDealService creates a new DealService
func NewDealService(dealRepo repository.DealRepository, taskRepo repository.TaskRepository, counselRepo repository.CounselRepository, companyRepo repository.CompanyRepository) *DealService {
	return &DealService{
		dealRepo:    dealRepo,
		taskRepo:    taskRepo,
		counselRepo: counselRepo,
		companyRepo: companyRepo,
	}
}

// CreateDealInput represents input for creating a deal
type CreateDealInput struct {
	Name         string
	CompanyID    uint64
	Round        string
	Amount       int64
	Status       models.DealStatus
	LeadInvestor string
	CreatorID    uint64
}

// UpdateDealInput represents input for updating a deal. A non-nil Team also
// rewrites the company's team in the same transaction as the deal fields.
type UpdateDealInput struct {
	Name         *string
	Round        *string
	Amount       *int64
	Status       *models.DealStatus
	LeadInvestor *string
	Team         *[]string
}

// ListDeals returns deals matching the filter
func (s *DealService) ListDeals(filter repository.DealFilter) ([]models.Deal, int64, error) {
	deals, total, err := s.dealRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}
	return deals, total, nil
}

// GetDeal returns a deal with related data
func (s *DealService) GetDeal(dealID uint64) (*models.Deal, error) {
	deal, err := s.dealRepo.FindByID(dealID, "Company", "Creator")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to find deal: %w", err)
	}
	return deal, nil
}

// CreateDeal creates a new deal with a generated reference code
func (s *DealService) CreateDeal(input CreateDealInput) (*models.Deal, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrDealNameRequired
	}

	if _, err := s.companyRepo.FindByID(input.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	if input.Status == "" {
		input.Status = models.DealStatusPipeline
	}
	if !validDealStatus(input.Status) {
		return nil, ErrInvalidDealStatus
	}

	deal := &models.Deal{
		Name:          input.Name,
		ReferenceCode: uuid.NewString(),
		CompanyID:     input.CompanyID,
		Round:         input.Round,
		Amount:        input.Amount,
		Status:        input.Status,
		LeadInvestor:  input.LeadInvestor,
		CreatorID:     input.CreatorID,
	}

	if err := s.dealRepo.Create(deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	return s.dealRepo.FindByID(deal.ID, "Company", "Creator")
}

// UpdateDeal updates deal fields, and the company team when provided. Deal
// and team changes commit together or not at all.
func (s *DealService) UpdateDeal(dealID uint64, input UpdateDealInput) (*models.Deal, error) {
	deal, err := s.dealRepo.FindByID(dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to find deal: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrDealNameRequired
		}
		deal.Name = *input.Name
	}
	if input.Round != nil {
		deal.Round = *input.Round
	}
	if input.Amount != nil {
		deal.Amount = *input.Amount
	}
	if input.Status != nil {
		if !validDealStatus(*input.Status) {
			return nil, ErrInvalidDealStatus
		}
		deal.Status = *input.Status
	}
	if input.LeadInvestor != nil {
		deal.LeadInvestor = *input.LeadInvestor
	}

	if input.Team != nil {
		err = s.dealRepo.UpdateWithTeam(deal, *input.Team)
	} else {
		err = s.dealRepo.Update(deal)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}

	return s.dealRepo.FindByID(deal.ID, "Company", "Creator")
}

// DeleteDeal deletes a deal and its dependents
func (s *DealService) DeleteDeal(dealID uint64) error {
	if _, err := s.dealRepo.FindByID(dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDealNotFound
		}
		return fmt.Errorf("failed to find deal: %w", err)
	}

	if err := s.dealRepo.Delete(dealID); err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}

	return nil
}

// DealStats summarizes a deal's task progress
type DealStats struct {
	Total       int64 `json:"total"`
	Open        int64 `json:"open"`
	InProgress  int64 `json:"in_progress"`
	Completed   int64 `json:"completed"`
	Urgent      int64 `json:"urgent"`
	ProgressPct int   `json:"progress_pct"`
}

// Stats computes the task progress summary for a deal
func (s *DealService) Stats(dealID uint64) (*DealStats, error) {
	if _, err := s.dealRepo.FindByID(dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to find deal: %w", err)
	}

	counts, err := s.taskRepo.CountByStatus(dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	stats := &DealStats{
		Open:       counts[models.TaskStatusOpen],
		InProgress: counts[models.TaskStatusInProgress],
		Completed:  counts[models.TaskStatusCompleted],
		Urgent:     counts[models.TaskStatusUrgent],
	}
	stats.Total = stats.Open + stats.InProgress + stats.Completed + stats.Urgent
	if stats.Total > 0 {
		stats.ProgressPct = int(stats.Completed * 100 / stats.Total)
	}

	return stats, nil
}

func validDealStatus(status models.DealStatus) bool {
	switch status {
	case models.DealStatusPipeline, models.DealStatusActive, models.DealStatusClosing, models.DealStatusClosed:
		return true
	}
	return false
}
