package handlers

import (
	"net/http"

	apierrors "github.com/dealdesk/deal-management-api/internal/errors"
	"github.com/dealdesk/deal-management-api/internal/middleware"
	"github.com/dealdesk/deal-management-api/internal/repository"
	"github.com/gin-gonic/gin"
)

// PreferenceHandler serves per-user UI state through an explicit store.
type PreferenceHandler struct {
	store repository.PreferenceStore
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(store repository.PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{
		store: store,
	}
}

// GetPreference returns the stored value for a key, empty when unset.
func (h *PreferenceHandler) GetPreference(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	key := c.Param("key")
	value, err := h.store.Get(userID, key)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch preference")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":   key,
		"value": value,
	})
}

// SetPreference upserts the value for a key.
func (h *PreferenceHandler) SetPreference(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SetPreferenceRequest struct {
		Value string `json:"value"`
	}

	var req SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	key := c.Param("key")
	if err := h.store.Set(userID, key, req.Value); err != nil {
		apierrors.InternalError(c, "Failed to save preference")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":   key,
		"value": req.Value,
	})
}
