package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/identity"
)

// builds the CORS middleware from ALLOWED_ORIGINS (comma-separated)
func CORSMiddleware() gin.HandlerFunc {
	origins := []string{"http://localhost:3000"}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]

		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", identity.FingerprintHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
