package repository

import (
	"github.com/dealdesk/deal-management-api/internal/models"
	"gorm.io/gorm"
)

// GormDirectoryRepository is a GORM implementation of DirectoryRepository
type GormDirectoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository creates a new DirectoryRepository
func NewDirectoryRepository(db *gorm.DB) DirectoryRepository {
	return &GormDirectoryRepository{db: db}
}

// ListUsers lists all internal users
func (r *GormDirectoryRepository) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("full_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListCustomAssignees lists all ad-hoc external assignees
func (r *GormDirectoryRepository) ListCustomAssignees() ([]models.CustomAssignee, error) {
	var assignees []models.CustomAssignee
	if err := r.db.Order("name ASC").Find(&assignees).Error; err != nil {
		return nil, err
	}
	return assignees, nil
}

// CreateCustomAssignee creates an ad-hoc external assignee
func (r *GormDirectoryRepository) CreateCustomAssignee(ca *models.CustomAssignee) error {
	return r.db.Create(ca).Error
}

// ListLawFirms lists all law firms
func (r *GormDirectoryRepository) ListLawFirms() ([]models.LawFirm, error) {
	var firms []models.LawFirm
	if err := r.db.Order("name ASC").Find(&firms).Error; err != nil {
		return nil, err
	}
	return firms, nil
}

// ListAttorneys lists all attorneys
func (r *GormDirectoryRepository) ListAttorneys() ([]models.Attorney, error) {
	var attorneys []models.Attorney
	if err := r.db.Order("name ASC").Find(&attorneys).Error; err != nil {
		return nil, err
	}
	return attorneys, nil
}

// ListAttorneysByFirm lists the attorneys of one firm
func (r *GormDirectoryRepository) ListAttorneysByFirm(lawFirmID uint64) ([]models.Attorney, error) {
	var attorneys []models.Attorney
	err := r.db.
		Where("law_firm_id = ?", lawFirmID).
		Order("name ASC").
		Find(&attorneys).Error
	if err != nil {
		return nil, err
	}
	return attorneys, nil
}
