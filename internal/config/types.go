package config

import "time"

type Config struct {
	DatabaseURL   string
	RedisURL      string
	JWTSecret     string
	SecretsKey    string // hex-encoded 32-byte AES key for provider credentials
	Environment   string
	UsageTimezone *time.Location
}
