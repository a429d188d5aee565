package repository

import (
	"github.com/dealdesk/deal-management-api/internal/counsel"
	"github.com/dealdesk/deal-management-api/internal/models"
	"gorm.io/gorm"
)

// GormCounselRepository is a GORM implementation of CounselRepository
type GormCounselRepository struct {
	db *gorm.DB
}

// NewCounselRepository creates a new CounselRepository
func NewCounselRepository(db *gorm.DB) CounselRepository {
	return &GormCounselRepository{db: db}
}

// ListByDeal lists all counsel rows for a deal
func (r *GormCounselRepository) ListByDeal(dealID uint64, preload ...string) ([]models.DealCounsel, error) {
	var rows []models.DealCounsel
	query := r.db.Where("deal_id = ?", dealID)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByDealAndRole lists counsel rows for one role on a deal
func (r *GormCounselRepository) ListByDealAndRole(dealID uint64, role models.CounselRole) ([]models.DealCounsel, error) {
	var rows []models.DealCounsel
	err := r.db.
		Where("deal_id = ? AND role = ?", dealID, role).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceForRole replaces every counsel row for a (deal, role) pair. The
// replace is delete-then-insert inside one transaction: every call fully
// supersedes the previous set, there is no partial update.
func (r *GormCounselRepository) ReplaceForRole(dealID uint64, role models.CounselRole, entries []counsel.Entry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deal_id = ? AND role = ?", dealID, role).
			Delete(&models.DealCounsel{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}

		rows := make([]models.DealCounsel, len(entries))
		for i, e := range entries {
			rows[i] = models.DealCounsel{
				DealID:     dealID,
				Role:       role,
				LawFirmID:  e.LawFirmID,
				AttorneyID: e.AttorneyID,
			}
		}

		return tx.Create(&rows).Error
	})
}
