package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/auth"
	"github.com/tinytools/server/internal/settings"
)

// registers admin routes
func RegisterRoutes(router *gin.RouterGroup, repo *settings.Repository, cache *settings.Cache) {
	admin := router.Group("/admin")
	admin.Use(auth.AdminAuthMiddleware())

	admin.GET("/limits", GetLimitsHandler(repo))
	admin.PUT("/limits", UpdateLimitsHandler(repo, cache))
}
