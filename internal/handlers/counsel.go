package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dealdesk/deal-management-api/internal/counsel"
	"github.com/dealdesk/deal-management-api/internal/dto"
	apierrors "github.com/dealdesk/deal-management-api/internal/errors"
	"github.com/dealdesk/deal-management-api/internal/middleware"
	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/dealdesk/deal-management-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CounselHandler coordinates deal-counsel HTTP handlers.
type CounselHandler struct {
	counselService *services.CounselService
}

// NewCounselHandler creates a new CounselHandler.
func NewCounselHandler(counselService *services.CounselService) *CounselHandler {
	return &CounselHandler{
		counselService: counselService,
	}
}

// ListForDeal returns all counsel rows for the deal in context.
func (h *CounselHandler) ListForDeal(c *gin.Context) {
	deal, ok := middleware.GetDeal(c)
	if !ok {
		apierrors.InternalError(c, "Deal not found in context")
		return
	}

	rows, err := h.counselService.ListByDeal(deal.ID)
	if err != nil {
		respondCounselError(c, err)
		return
	}

	entries := make([]counsel.Entry, len(rows))
	for i, row := range rows {
		entries[i] = counsel.Entry{LawFirmID: row.LawFirmID, AttorneyID: row.AttorneyID}
	}

	c.JSON(http.StatusOK, gin.H{
		"counsels": dto.ToCounselRowDTOs(rows),
		"groups":   counsel.GroupByFirm(entries),
	})
}

// GetWorkingSet returns the flattened entry list for one role, the state an
// editing session starts from.
func (h *CounselHandler) GetWorkingSet(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	dealID, err := strconv.ParseUint(c.Query("deal_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid deal_id")
		return
	}
	role := models.CounselRole(c.Query("role"))

	entries, err := h.counselService.WorkingSet(dealID, role)
	if err != nil {
		respondCounselError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"groups":  counsel.GroupByFirm(entries),
	})
}

// Replace swaps the full counsel set for one role on one deal. The request
// supersedes every existing row for that (deal, role) pair.
func (h *CounselHandler) Replace(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ReplaceRequest struct {
		DealID  uint64             `json:"dealId" binding:"required"`
		Role    models.CounselRole `json:"role" binding:"required"`
		Entries []counsel.RawEntry `json:"entries"`
	}

	var req ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	rows, err := h.counselService.Replace(services.ReplaceInput{
		DealID:  req.DealID,
		Role:    req.Role,
		Entries: req.Entries,
	})
	if err != nil {
		respondCounselError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Counsel replaced successfully",
		"counsels": dto.ToCounselRowDTOs(rows),
	})
}

func respondCounselError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDealNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCounselRole):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
