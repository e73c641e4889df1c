package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/errors"
	"github.com/tinytools/server/internal/settings"
)

// creates a handler that reads the current global limits, bypassing the cache
func GetLimitsHandler(repo *settings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limits, err := repo.GlobalLimits(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to load global limits", err)
			return
		}

		c.JSON(http.StatusOK, limits)
	}
}

// creates a handler that updates the global limits and drops the cached copy
// so the new limits apply on the next admission check
func UpdateLimitsHandler(repo *settings.Repository, cache *settings.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateLimitsRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if *req.GuestDailyLimit < settings.Unlimited || *req.UserDailyLimit < settings.Unlimited {
			errors.BadRequest(c, "limits must be -1 (unlimited) or non-negative", nil)
			return
		}

		limits := settings.GlobalLimits{
			GuestDailyLimit: *req.GuestDailyLimit,
			UserDailyLimit:  *req.UserDailyLimit,
		}

		if err := repo.UpdateGlobalLimits(c.Request.Context(), limits); err != nil {
			errors.InternalError(c, "failed to update global limits", err)
			return
		}

		cache.Invalidate()

		c.JSON(http.StatusOK, limits)
	}
}
