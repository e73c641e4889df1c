// Package quota exposes the caller's current standing against the daily
// limit. The endpoint is a pure read: checking your quota never spends it.
package quota

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/errors"
	"github.com/tinytools/server/internal/identity"
	"github.com/tinytools/server/internal/quota"
)

// creates a handler that reports the caller's admission standing
func Handler(admission *quota.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := identity.FromRequest(c)

		decision, err := admission.Check(c.Request.Context(), id)
		if err != nil {
			errors.InternalError(c, "failed to check quota", err)
			return
		}

		c.JSON(http.StatusOK, decision)
	}
}
