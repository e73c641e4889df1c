package invoke

import (
	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/auth"
	"github.com/tinytools/server/internal/dispatch"
	"github.com/tinytools/server/internal/gateway"
)

// registers tool invocation routes
// auth is optional at the route level; tools that require an account are
// enforced inside the gateway
func RegisterRoutes(router *gin.RouterGroup, orch *gateway.Orchestrator, repo ToolFinder, dispatcher *dispatch.Dispatcher) {
	router.POST("/tools/:slug/invoke", auth.OptionalAuthMiddleware(), Handler(orch, repo, dispatcher))
}
