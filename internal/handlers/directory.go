package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dealdesk/deal-management-api/internal/dto"
	apierrors "github.com/dealdesk/deal-management-api/internal/errors"
	"github.com/dealdesk/deal-management-api/internal/middleware"
	"github.com/dealdesk/deal-management-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the assignee directories.
type DirectoryHandler struct {
	dirService *services.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(dirService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		dirService: dirService,
	}
}

// ListUsers returns all internal users.
func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	users, err := h.dirService.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	dtos := make([]dto.UserDTO, len(users))
	for i, user := range users {
		dtos[i] = dto.ToUserDTO(user)
	}
	c.JSON(http.StatusOK, dtos)
}

// ListCustomAssignees returns all ad-hoc external assignees.
func (h *DirectoryHandler) ListCustomAssignees(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	assignees, err := h.dirService.ListCustomAssignees()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch custom assignees")
		return
	}

	c.JSON(http.StatusOK, assignees)
}

// CreateCustomAssignee creates an ad-hoc external assignee.
func (h *DirectoryHandler) CreateCustomAssignee(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCustomAssigneeRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateCustomAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.dirService.CreateCustomAssignee(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrCustomAssigneeNameRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create custom assignee")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListLawFirms returns all law firms.
func (h *DirectoryHandler) ListLawFirms(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	firms, err := h.dirService.ListLawFirms()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch law firms")
		return
	}

	dtos := make([]dto.LawFirmDTO, len(firms))
	for i, firm := range firms {
		dtos[i] = dto.ToLawFirmDTO(firm)
	}
	c.JSON(http.StatusOK, dtos)
}

// ListFirmAttorneys returns the attorneys of one firm.
func (h *DirectoryHandler) ListFirmAttorneys(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	firmID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid law firm ID")
		return
	}

	attorneys, err := h.dirService.ListAttorneysByFirm(firmID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch attorneys")
		return
	}

	dtos := make([]dto.AttorneyDTO, len(attorneys))
	for i, attorney := range attorneys {
		dtos[i] = dto.ToAttorneyDTO(attorney)
	}
	c.JSON(http.StatusOK, dtos)
}
