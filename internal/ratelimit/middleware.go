// Package ratelimit is per-IP burst protection at the HTTP edge. It is
// independent of the daily quota: the quota meters accepted invocations per
// caller per day, this throttles raw request bursts per IP per minute.
package ratelimit

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const (
	requestsPerMinute = 120
	keyPrefix         = "tinytools:ratelimit"
)

// builds the gin middleware backed by Redis, so limits hold across replicas
func NewMiddleware(client *redis.Client) (gin.HandlerFunc, error) {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: keyPrefix,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit store: %w", err)
	}

	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  requestsPerMinute,
	}

	return mgin.NewMiddleware(limiter.New(store, rate)), nil
}
