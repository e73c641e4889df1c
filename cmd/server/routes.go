package main

import (
	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/api/rest/admin"
	"github.com/tinytools/server/api/rest/health"
	"github.com/tinytools/server/api/rest/invoke"
	"github.com/tinytools/server/api/rest/quota"
	"github.com/tinytools/server/api/rest/tools"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(server.rateLimit)

	{
		v1.GET("/ping", health.PingHandler)

		tools.RegisterRoutes(v1, server.toolRepo)
		quota.RegisterRoutes(v1, server.admission)
		invoke.RegisterRoutes(v1, server.orch, server.toolRepo, server.dispatcher)
		admin.RegisterRoutes(v1, server.settingsRepo, server.policy)
	}
}
