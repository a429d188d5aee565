package services

import (
	"errors"
	"fmt"

	"github.com/dealdesk/deal-management-api/internal/counsel"
	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidCounselRole = errors.New("invalid counsel role")

// CounselService handles deal-counsel business logic: reading the persisted
// rows, serving the editable working set, and the bulk role replace.
type CounselService struct {
	counselRepo repository.CounselRepository
	dealRepo    repository.DealRepository
	logger      *zap.Logger
}

// NewCounselService creates a new CounselService
func NewCounselService(counselRepo repository.CounselRepository, dealRepo repository.DealRepository, logger *zap.Logger) *CounselService {
	return &CounselService{
		counselRepo: counselRepo,
		dealRepo:    dealRepo,
		logger:      logger,
	}
}

// ListByDeal returns a deal's counsel rows with firm and attorney data
func (s *CounselService) ListByDeal(dealID uint64) ([]models.DealCounsel, error) {
	if err := s.ensureDealExists(dealID); err != nil {
		return nil, err
	}

	rows, err := s.counselRepo.ListByDeal(dealID, "LawFirm", "Attorney")
	if err != nil {
		return nil, fmt.Errorf("failed to list counsel: %w", err)
	}
	return rows, nil
}

// WorkingSet flattens the persisted rows for one role into the editable
// entry list the reconciler operates on.
func (s *CounselService) WorkingSet(dealID uint64, role models.CounselRole) ([]counsel.Entry, error) {
	if !role.Valid() {
		return nil, ErrInvalidCounselRole
	}
	if err := s.ensureDealExists(dealID); err != nil {
		return nil, err
	}

	rows, err := s.counselRepo.ListByDealAndRole(dealID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to load counsel rows: %w", err)
	}

	entries := make([]counsel.Entry, len(rows))
	for i, row := range rows {
		entries[i] = counsel.Entry{
			LawFirmID:  row.LawFirmID,
			AttorneyID: row.AttorneyID,
		}
	}
	return entries, nil
}

// ReplaceInput represents a bulk replacement of one role's counsel set
type ReplaceInput struct {
	DealID  uint64
	Role    models.CounselRole
	Entries []counsel.RawEntry
}

// Replace validates the submitted working set and replaces every row for
// the (deal, role) pair. Entries the validator cannot coerce are dropped,
// not rejected; the drop is logged since the submitter is not told.
func (s *CounselService) Replace(input ReplaceInput) ([]models.DealCounsel, error) {
	if !input.Role.Valid() {
		return nil, ErrInvalidCounselRole
	}
	if err := s.ensureDealExists(input.DealID); err != nil {
		return nil, err
	}

	entries := counsel.Validate(input.Entries)
	if dropped := len(input.Entries) - len(entries); dropped > 0 {
		s.logger.Warn("dropped counsel entries with unparseable ids",
			zap.Uint64("deal_id", input.DealID),
			zap.String("role", string(input.Role)),
			zap.Int("dropped", dropped),
		)
	}

	if err := s.counselRepo.ReplaceForRole(input.DealID, input.Role, entries); err != nil {
		return nil, fmt.Errorf("failed to replace counsel: %w", err)
	}

	rows, err := s.counselRepo.ListByDealAndRole(input.DealID, input.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to reload counsel: %w", err)
	}
	return rows, nil
}

func (s *CounselService) ensureDealExists(dealID uint64) error {
	if _, err := s.dealRepo.FindByID(dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDealNotFound
		}
		return fmt.Errorf("failed to verify deal: %w", err)
	}
	return nil
}
