package tools

import (
	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/tools"
)

// registers tool catalog routes
func RegisterRoutes(router *gin.RouterGroup, repo *tools.Repository) {
	router.GET("/tools", ListHandler(repo))
	router.GET("/tools/:slug", GetHandler(repo))
}
