package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new subscription repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the user's active subscription, or nil when none exists
// billing webhooks maintain the status column; this service only reads it
func (r *Repository) ActiveForUser(ctx context.Context, userID string) (*Subscription, error) {
	var sub Subscription

	err := r.db.QueryRow(ctx, queryActiveForUser, userID).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.PlanID,
		&sub.PlanName,
		&sub.Status,
		&sub.DailyLimit,
		&sub.ExpiresAt,
		&sub.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load active subscription: %w", err)
	}

	return &sub, nil
}
