package quota

import (
	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/auth"
	"github.com/tinytools/server/internal/quota"
)

// registers quota routes
func RegisterRoutes(router *gin.RouterGroup, admission *quota.Controller) {
	router.GET("/quota", auth.OptionalAuthMiddleware(), Handler(admission))
}
