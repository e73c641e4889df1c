package subscriptions

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles subscription database operations
type Repository struct {
	db *pgxpool.Pool
}

// a caller's paid plan
// DailyLimit is the plan's embedded quota; -1 means unlimited
type Subscription struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PlanID     string    `json:"plan_id"`
	PlanName   string    `json:"plan_name"`
	Status     string    `json:"status"`
	DailyLimit int       `json:"daily_limit"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

const StatusActive = "active"
