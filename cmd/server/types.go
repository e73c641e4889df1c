package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tinytools/server/internal/config"
	"github.com/tinytools/server/internal/dispatch"
	"github.com/tinytools/server/internal/gateway"
	"github.com/tinytools/server/internal/quota"
	"github.com/tinytools/server/internal/settings"
	"github.com/tinytools/server/internal/tools"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	redis        *redis.Client
	config       *config.Config
	toolRepo     *tools.Repository
	settingsRepo *settings.Repository
	policy       *settings.Cache
	admission    *quota.Controller
	dispatcher   *dispatch.Dispatcher
	orch         *gateway.Orchestrator
	rateLimit    gin.HandlerFunc
	router       *gin.Engine
}
