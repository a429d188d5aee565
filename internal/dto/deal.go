package dto

import (
	"time"

	"github.com/dealdesk/deal-management-api/internal/models"
)

// CompanyDTO represents a company in API responses
type CompanyDTO struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Sector  string   `json:"sector"`
	BCVTeam []string `json:"bcv_team"`
}

// DealDTO represents a deal in API responses
type DealDTO struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	ReferenceCode string            `json:"reference_code"`
	CompanyID     uint64            `json:"company_id"`
	Round         string            `json:"round"`
	Amount        int64             `json:"amount"`
	Status        models.DealStatus `json:"status"`
	LeadInvestor  string            `json:"lead_investor"`
	Company       *CompanyDTO       `json:"company,omitempty"`
	Creator       *UserDTO          `json:"creator,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// CounselRowDTO represents one persisted counsel row in API responses
type CounselRowDTO struct {
	ID         uint64             `json:"id"`
	DealID     uint64             `json:"deal_id"`
	Role       models.CounselRole `json:"role"`
	LawFirmID  uint64             `json:"law_firm_id"`
	AttorneyID *uint64            `json:"attorney_id"`
	LawFirm    *LawFirmDTO        `json:"law_firm,omitempty"`
	Attorney   *AttorneyDTO       `json:"attorney,omitempty"`
}

// LawFirmDTO represents a law firm in API responses
type LawFirmDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// AttorneyDTO represents an attorney in API responses
type AttorneyDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	LawFirmID   uint64 `json:"law_firm_id"`
	Initials    string `json:"initials"`
	AvatarColor string `json:"avatar_color"`
}

// ToCompanyDTO converts a Company model to CompanyDTO
func ToCompanyDTO(company models.Company) CompanyDTO {
	return CompanyDTO{
		ID:      company.ID,
		Name:    company.Name,
		Sector:  company.Sector,
		BCVTeam: company.BCVTeam,
	}
}

// ToDealDTO converts a Deal model to DealDTO
func ToDealDTO(deal models.Deal) DealDTO {
	dto := DealDTO{
		ID:            deal.ID,
		Name:          deal.Name,
		ReferenceCode: deal.ReferenceCode,
		CompanyID:     deal.CompanyID,
		Round:         deal.Round,
		Amount:        deal.Amount,
		Status:        deal.Status,
		LeadInvestor:  deal.LeadInvestor,
		CreatedAt:     deal.CreatedAt,
		UpdatedAt:     deal.UpdatedAt,
	}

	if deal.Company.ID != 0 {
		company := ToCompanyDTO(deal.Company)
		dto.Company = &company
	}
	if deal.Creator.ID != 0 {
		creator := ToUserDTO(deal.Creator)
		dto.Creator = &creator
	}

	return dto
}

// ToDealDTOs converts a slice of deals
func ToDealDTOs(deals []models.Deal) []DealDTO {
	dtos := make([]DealDTO, len(deals))
	for i, deal := range deals {
		dtos[i] = ToDealDTO(deal)
	}
	return dtos
}

// ToLawFirmDTO converts a LawFirm model to LawFirmDTO
func ToLawFirmDTO(firm models.LawFirm) LawFirmDTO {
	return LawFirmDTO{
		ID:        firm.ID,
		Name:      firm.Name,
		Specialty: firm.Specialty,
	}
}

// ToAttorneyDTO converts an Attorney model to AttorneyDTO
func ToAttorneyDTO(attorney models.Attorney) AttorneyDTO {
	return AttorneyDTO{
		ID:          attorney.ID,
		Name:        attorney.Name,
		Position:    attorney.Position,
		LawFirmID:   attorney.LawFirmID,
		Initials:    attorney.Initials,
		AvatarColor: attorney.AvatarColor,
	}
}

// ToCounselRowDTO converts a DealCounsel model to CounselRowDTO
func ToCounselRowDTO(row models.DealCounsel) CounselRowDTO {
	dto := CounselRowDTO{
		ID:         row.ID,
		DealID:     row.DealID,
		Role:       row.Role,
		LawFirmID:  row.LawFirmID,
		AttorneyID: row.AttorneyID,
	}

	if row.LawFirm.ID != 0 {
		firm := ToLawFirmDTO(row.LawFirm)
		dto.LawFirm = &firm
	}
	if row.Attorney != nil && row.Attorney.ID != 0 {
		attorney := ToAttorneyDTO(*row.Attorney)
		dto.Attorney = &attorney
	}

	return dto
}

// ToCounselRowDTOs converts a slice of counsel rows
func ToCounselRowDTOs(rows []models.DealCounsel) []CounselRowDTO {
	dtos := make([]CounselRowDTO, len(rows))
	for i, row := range rows {
		dtos[i] = ToCounselRowDTO(row)
	}
	return dtos
}
