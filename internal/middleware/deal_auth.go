package middleware

import (
	"strconv"

	"github.com/dealdesk/deal-management-api/internal/constants"
	"github.com/dealdesk/deal-management-api/internal/database"
	apierrors "github.com/dealdesk/deal-management-api/internal/errors"
	"github.com/dealdesk/deal-management-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireDealAccess loads the deal named in the URL into the request
// context, rejecting requests for deals that do not exist.
func RequireDealAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		dealIDStr := c.Param("id")
		dealID, err := strconv.ParseUint(dealIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid deal ID")
			c.Abort()
			return
		}

		if _, exists := GetUserID(c); !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var deal models.Deal
		if err := database.GetDB().
			Preload("Company").
			First(&deal, dealID).Error; err != nil {
			apierrors.NotFound(c, "Deal not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyDeal, deal)
		c.Next()
	}
}

// GetDeal retrieves the deal loaded by RequireDealAccess
func GetDeal(c *gin.Context) (models.Deal, bool) {
	dealInterface, exists := c.Get(constants.ContextKeyDeal)
	if !exists {
		return models.Deal{}, false
	}
	deal, ok := dealInterface.(models.Deal)
	return deal, ok
}
