package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dealdesk/deal-management-api/internal/dto"
	apierrors "github.com/dealdesk/deal-management-api/internal/errors"
	"github.com/dealdesk/deal-management-api/internal/middleware"
	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/repository"
	"github.com/dealdesk/deal-management-api/internal/services"
	"github.com/dealdesk/deal-management-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// DealHandler coordinates deal HTTP handlers.
type DealHandler struct {
	dealService    *services.DealService
	companyService *services.CompanyService
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(dealService *services.DealService, companyService *services.CompanyService) *DealHandler {
	return &DealHandler{
		dealService:    dealService,
		companyService: companyService,
	}
}

// ListDeals returns deals, optionally filtered by company_id and status.
func (h *DealHandler) ListDeals(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)
	filter := repository.DealFilter{
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if companyIDStr := c.Query("company_id"); companyIDStr != "" {
		companyID, err := strconv.ParseUint(companyIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid company_id")
			return
		}
		filter.CompanyID = &companyID
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := models.DealStatus(statusStr)
		filter.Status = &status
	}

	deals, total, err := h.dealService.ListDeals(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch deals")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deals": dto.ToDealDTOs(deals),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetDeal returns the deal loaded by RequireDealAccess.
func (h *DealHandler) GetDeal(c *gin.Context) {
	deal, ok := middleware.GetDeal(c)
	if !ok {
		apierrors.InternalError(c, "Deal not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToDealDTO(deal))
}

// CreateDeal creates a new deal.
func (h *DealHandler) CreateDeal(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateDealRequest struct {
		Name         string            `json:"name" binding:"required"`
		CompanyID    uint64            `json:"company_id" binding:"required"`
		Round        string            `json:"round"`
		Amount       int64             `json:"amount"`
		Status       models.DealStatus `json:"status"`
		LeadInvestor string            `json:"lead_investor"`
	}

	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	deal, err := h.dealService.CreateDeal(services.CreateDealInput{
		Name:         req.Name,
		CompanyID:    req.CompanyID,
		Round:        req.Round,
		Amount:       req.Amount,
		Status:       req.Status,
		LeadInvestor: req.LeadInvestor,
		CreatorID:    userID,
	})
	if err != nil {
		respondDealError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDealDTO(*deal))
}

// UpdateDeal applies a partial update. When "team" is present the deal and
// its company's team are saved in one transaction.
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	deal, ok := middleware.GetDeal(c)
	if !ok {
		apierrors.InternalError(c, "Deal not found in context")
		return
	}

	type UpdateDealRequest struct {
		Name         *string            `json:"name"`
		Round        *string            `json:"round"`
		Amount       *int64             `json:"amount"`
		Status       *models.DealStatus `json:"status"`
		LeadInvestor *string            `json:"lead_investor"`
		Team         *[]string          `json:"team"`
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.dealService.UpdateDeal(deal.ID, services.UpdateDealInput{
		Name:         req.Name,
		Round:        req.Round,
		Amount:       req.Amount,
		Status:       req.Status,
		LeadInvestor: req.LeadInvestor,
		Team:         req.Team,
	})
	if err != nil {
		respondDealError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDealDTO(*updated))
}

// DeleteDeal deletes a deal and its dependents.
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	deal, ok := middleware.GetDeal(c)
	if !ok {
		apierrors.InternalError(c, "Deal not found in context")
		return
	}

	if err := h.dealService.DeleteDeal(deal.ID); err != nil {
		respondDealError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deal deleted successfully",
	})
}

// GetStats returns the deal's task progress summary.
func (h *DealHandler) GetStats(c *gin.Context) {
	deal, ok := middleware.GetDeal(c)
	if !ok {
		apierrors.InternalError(c, "Deal not found in context")
		return
	}

	stats, err := h.dealService.Stats(deal.ID)
	if err != nil {
		respondDealError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetWorkingGroup returns the deal's working group: lead investor,
// investment team, and counsel grouped by role and firm.
func (h *DealHandler) GetWorkingGroup(c *gin.Context) {
	deal, ok := middleware.GetDeal(c)
	if !ok {
		apierrors.InternalError(c, "Deal not found in context")
		return
	}

	group, err := h.dealService.WorkingGroup(deal.ID)
	if err != nil {
		respondDealError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateTeam replaces the deal company's investment team.
func (h *DealHandler) UpdateTeam(c *gin.Context) {
	deal, ok := middleware.GetDeal(c)
	if !ok {
		apierrors.InternalError(c, "Deal not found in context")
		return
	}

	type UpdateTeamRequest struct {
		Team []string `json:"team" binding:"required"`
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.UpdateCompany(deal.CompanyID, services.UpdateCompanyInput{
		BCVTeam: &req.Team,
	})
	if err != nil {
		respondDealError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyDTO(*company))
}

// UpdateCompany applies a partial update to a company.
func (h *DealHandler) UpdateCompany(c *gin.Context) {
	companyIDStr := c.Param("id")
	companyID, err := strconv.ParseUint(companyIDStr, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid company ID")
		return
	}

	type UpdateCompanyRequest struct {
		Name    *string   `json:"name"`
		Sector  *string   `json:"sector"`
		BCVTeam *[]string `json:"bcv_team"`
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.UpdateCompany(companyID, services.UpdateCompanyInput{
		Name:    req.Name,
		Sector:  req.Sector,
		BCVTeam: req.BCVTeam,
	})
	if err != nil {
		respondDealError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyDTO(*company))
}

func respondDealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDealNotFound),
		errors.Is(err, services.ErrCompanyNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDealNameRequired),
		errors.Is(err, services.ErrCompanyNameRequired),
		errors.Is(err, services.ErrInvalidDealStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
