package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	secretsKey := os.Getenv("SECRETS_KEY")
	environment := os.Getenv("ENVIRONMENT")
	usageTZ := os.Getenv("USAGE_TIMEZONE")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if secretsKey == "" {
		return nil, fmt.Errorf("SECRETS_KEY environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	// usage windows ("today") are computed in one fixed reference timezone
	// so a caller cannot shift their quota window by changing client timezones
	if usageTZ == "" {
		usageTZ = "UTC"
	}

	loc, err := time.LoadLocation(usageTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid USAGE_TIMEZONE %q: %w", usageTZ, err)
	}

	return &Config{
		DatabaseURL:   databaseURL,
		RedisURL:      redisURL,
		JWTSecret:     jwtSecret,
		SecretsKey:    secretsKey,
		Environment:   environment,
		UsageTimezone: loc,
	}, nil
}
