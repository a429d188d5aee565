package models

import "time"

type CounselRole string

const (
	CounselRoleLead       CounselRole = "Lead Counsel"
	CounselRoleSupporting CounselRole = "Supporting"
	CounselRoleSpecialty  CounselRole = "Specialty Counsel"
)

// Valid reports whether r is one of the known counsel roles.
func (r CounselRole) Valid() bool {
	switch r {
	case CounselRoleLead, CounselRoleSupporting, CounselRoleSpecialty:
		return true
	}
	return false
}

// DealCounsel is one firm+attorney+role row for a deal. Rows are never
// edited individually; the whole set for a (deal, role) pair is replaced in
// bulk, so the model carries no soft delete.
type DealCounsel struct {
	ID         uint64      `gorm:"primarykey" json:"id"`
	DealID     uint64      `gorm:"not null;index" json:"deal_id"`
	Role       CounselRole `gorm:"type:varchar(50);not null" json:"role"`
	LawFirmID  uint64      `gorm:"not null" json:"law_firm_id"`
	AttorneyID *uint64     `json:"attorney_id"`
	CreatedAt  time.Time   `json:"created_at"`

	// Relations
	LawFirm  LawFirm   `gorm:"foreignKey:LawFirmID" json:"law_firm,omitempty"`
	Attorney *Attorney `gorm:"foreignKey:AttorneyID" json:"attorney,omitempty"`
}
