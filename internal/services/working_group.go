package services

import (
	"fmt"

	"github.com/dealdesk/deal-management-api/internal/counsel"
	"github.com/dealdesk/deal-management-api/internal/models"
)

// WorkingGroupAttorney is one named attorney within a counsel group
type WorkingGroupAttorney struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// WorkingGroupFirm is one law firm's block in the working group, with its
// attorneys and whether the firm appears without a named attorney
type WorkingGroupFirm struct {
	LawFirmID uint64                 `json:"law_firm_id"`
	Name      string                 `json:"name"`
	Specialty string                 `json:"specialty"`
	FirmOnly  bool                   `json:"firm_only"`
	Attorneys []WorkingGroupAttorney `json:"attorneys"`
}

// WorkingGroup aggregates the deal's lead investor, investment team, and
// counsel grouped by role and firm
type WorkingGroup struct {
	LeadInvestor string                                    `json:"lead_investor"`
	Team         []string                                  `json:"team"`
	Counsel      map[models.CounselRole][]WorkingGroupFirm `json:"counsel"`
}

// WorkingGroup builds the working-group view of a deal
func (s *DealService) WorkingGroup(dealID uint64) (*WorkingGroup, error) {
	deal, err := s.GetDeal(dealID)
	if err != nil {
		return nil, err
	}

	rows, err := s.counselRepo.ListByDeal(dealID, "LawFirm", "Attorney")
	if err != nil {
		return nil, fmt.Errorf("failed to list counsel: %w", err)
	}

	group := &WorkingGroup{
		LeadInvestor: deal.LeadInvestor,
		Team:         deal.Company.BCVTeam,
		Counsel:      make(map[models.CounselRole][]WorkingGroupFirm),
	}

	byRole := make(map[models.CounselRole][]models.DealCounsel)
	for _, row := range rows {
		byRole[row.Role] = append(byRole[row.Role], row)
	}

	for role, roleRows := range byRole {
		entries := make([]counsel.Entry, len(roleRows))
		firms := make(map[uint64]models.LawFirm, len(roleRows))
		attorneys := make(map[uint64]models.Attorney)
		for i, row := range roleRows {
			entries[i] = counsel.Entry{LawFirmID: row.LawFirmID, AttorneyID: row.AttorneyID}
			firms[row.LawFirmID] = row.LawFirm
			if row.Attorney != nil {
				attorneys[row.Attorney.ID] = *row.Attorney
			}
		}

		for firmID, g := range counsel.GroupByFirm(entries) {
			firm := WorkingGroupFirm{
				LawFirmID: firmID,
				Name:      firms[firmID].Name,
				Specialty: firms[firmID].Specialty,
				FirmOnly:  g.FirmOnly,
				Attorneys: make([]WorkingGroupAttorney, 0, len(g.AttorneyIDs)),
			}
			for _, attorneyID := range g.AttorneyIDs {
				a := attorneys[attorneyID]
				firm.Attorneys = append(firm.Attorneys, WorkingGroupAttorney{
					ID:       attorneyID,
					Name:     a.Name,
					Position: a.Position,
				})
			}
			group.Counsel[role] = append(group.Counsel[role], firm)
		}
	}

	return group, nil
}
