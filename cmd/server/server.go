package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tinytools/server/internal/config"
	"github.com/tinytools/server/internal/dispatch"
	"github.com/tinytools/server/internal/gateway"
	"github.com/tinytools/server/internal/ledger"
	"github.com/tinytools/server/internal/models"
	"github.com/tinytools/server/internal/quota"
	"github.com/tinytools/server/internal/ratelimit"
	"github.com/tinytools/server/internal/secrets"
	"github.com/tinytools/server/internal/settings"
	"github.com/tinytools/server/internal/subscriptions"
	"github.com/tinytools/server/internal/tools"
)

// how long cached global limits are served before re-reading Postgres
const settingsCacheTTL = 1 * time.Minute

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small for hosted pooler compatibility
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// PgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	redisClient := redis.NewClient(redisOpts)

	if err := redisClient.Ping(ctx).Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	rateLimitMiddleware, err := ratelimit.NewMiddleware(redisClient)
	if err != nil {
		redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	decryptor, err := secrets.NewAESGCM(cfg.SecretsKey)
	if err != nil {
		redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to create secrets decryptor: %w", err)
	}

	ledgerStore := ledger.NewPostgresStore(db)
	window := ledger.NewWindow(cfg.UsageTimezone)

	// global limits change rarely; short TTL cache keeps them off the hot path
	settingsRepo := settings.NewRepository(db)
	policy := settings.NewCache(settingsRepo, settingsCacheTTL)

	classifier := quota.NewClassifier(subscriptions.NewRepository(db), policy)
	admission := quota.NewController(classifier, ledgerStore, window)

	dispatcher := dispatch.New(models.NewRepository(db), decryptor)
	orch := gateway.NewOrchestrator(admission, ledgerStore)

	router := gin.Default()

	server := &Server{
		db:           db,
		redis:        redisClient,
		config:       cfg,
		toolRepo:     tools.NewRepository(db),
		settingsRepo: settingsRepo,
		policy:       policy,
		admission:    admission,
		dispatcher:   dispatcher,
		orch:         orch,
		rateLimit:    rateLimitMiddleware,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
