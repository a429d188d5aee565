package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/repository"
	"gorm.io/gorm"
)

var ErrCompanyNameRequired = errors.New("company name is required")

// CompanyService handles company business logic
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// UpdateCompanyInput represents input for updating a company
type UpdateCompanyInput struct {
	Name    *string
	Sector  *string
	BCVTeam *[]string
}

// GetCompany returns a company by ID
func (s *CompanyService) GetCompany(companyID uint64) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return company, nil
}

// UpdateCompany updates company fields, including the investment team
func (s *CompanyService) UpdateCompany(companyID uint64, input UpdateCompanyInput) (*models.Company, error) {
	company, err := s.GetCompany(companyID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrCompanyNameRequired
		}
		company.Name = *input.Name
	}
	if input.Sector != nil {
		company.Sector = *input.Sector
	}
	if input.BCVTeam != nil {
		company.BCVTeam = *input.BCVTeam
	}

	if err := s.companyRepo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return company, nil
}
