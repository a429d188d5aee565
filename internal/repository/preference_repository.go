package repository

import (
	"errors"

	"github.com/dealdesk/deal-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPreferenceStore is a GORM implementation of PreferenceStore
type GormPreferenceStore struct {
	db *gorm.DB
}

// NewPreferenceStore creates a new PreferenceStore
func NewPreferenceStore(db *gorm.DB) PreferenceStore {
	return &GormPreferenceStore{db: db}
}

// Get returns the stored value for a key, or ("", nil) when unset
func (s *GormPreferenceStore) Get(userID uint64, key string) (string, error) {
	var pref models.UserPreference
	err := s.db.
		Where("user_id = ? AND `key` = ?", userID, key).
		First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return pref.Value, nil
}

// Set upserts the value for a key
func (s *GormPreferenceStore) Set(userID uint64, key, value string) error {
	pref := models.UserPreference{
		UserID: userID,
		Key:    key,
		Value:  value,
	}

	return s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
}
