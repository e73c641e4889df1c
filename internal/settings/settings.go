package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaults applied when no settings row exists yet
const (
	defaultGuestDailyLimit = 5
	defaultUserDailyLimit  = 20
)

// reads the global limit policy from Postgres
type Repository struct {
	db *pgxpool.Pool
}

// creates a new settings repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the current global limits, falling back to defaults when the
// settings table is empty
func (r *Repository) GlobalLimits(ctx context.Context) (*GlobalLimits, error) {
	var limits GlobalLimits

	err := r.db.QueryRow(ctx, queryGlobalLimits).Scan(
		&limits.GuestDailyLimit,
		&limits.UserDailyLimit,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return &GlobalLimits{
			GuestDailyLimit: defaultGuestDailyLimit,
			UserDailyLimit:  defaultUserDailyLimit,
		}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load global limits: %w", err)
	}

	return &limits, nil
}

// writes a new global limits row; older rows stay for audit
func (r *Repository) UpdateGlobalLimits(ctx context.Context, limits GlobalLimits) error {
	_, err := r.db.Exec(ctx, queryUpdateGlobalLimits,
		limits.GuestDailyLimit,
		limits.UserDailyLimit,
	)

	if err != nil {
		return fmt.Errorf("failed to update global limits: %w", err)
	}

	return nil
}
