package repository

import (
	"github.com/dealdesk/deal-management-api/internal/database"
	"github.com/dealdesk/deal-management-api/internal/models"
	"gorm.io/gorm"
)

// GormDealRepository is a GORM implementation of DealRepository
type GormDealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new DealRepository
func NewDealRepository(db *gorm.DB) DealRepository {
	return &GormDealRepository{db: db}
}

// Create creates a new deal
func (r *GormDealRepository) Create(deal *models.Deal) error {
	return r.db.Create(deal).Error
}

// FindByID finds a deal by ID with optional preloading
func (r *GormDealRepository) FindByID(id uint64, preload ...string) (*models.Deal, error) {
	var deal models.Deal
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&deal, id).Error; err != nil {
		return nil, err
	}

	return &deal, nil
}

// List retrieves deals with filtering and pagination
func (r *GormDealRepository) List(filter DealFilter) ([]models.Deal, int64, error) {
	var deals []models.Deal

	query := r.db.Model(&models.Deal{})

	if filter.CompanyID != nil {
		query = query.Where("deals.company_id = ?", *filter.CompanyID)
	}
	if filter.Status != nil {
		query = query.Where("deals.status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("deals.created_at DESC").
		Scopes(database.Paginate(filter.Page, filter.PageSize))

	if err := listQuery.Preload("Company").Find(&deals).Error; err != nil {
		return nil, 0, err
	}

	return deals, total, nil
}

// Update updates a deal
func (r *GormDealRepository) Update(deal *models.Deal) error {
	return r.db.Save(deal).Error
}

// UpdateWithTeam updates a deal and its company's team in one transaction,
// so a team-write failure cannot leave the deal half saved.
func (r *GormDealRepository) UpdateWithTeam(deal *models.Deal, team []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(deal).Error; err != nil {
			return err
		}

		return tx.Model(&models.Company{}).
			Where("id = ?", deal.CompanyID).
			Update("bcv_team", team).Error
	})
}

// Delete soft deletes a deal along with its tasks and counsel rows
func (r *GormDealRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deal_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("deal_id = ?", id).Delete(&models.DealCounsel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Deal{}, id).Error
	})
}
