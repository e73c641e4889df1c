package settings

import "context"

// Unlimited disables counting entirely for a tier.
const Unlimited = -1

// admin-editable daily limits for unsubscribed tiers
// subscriber limits come from the subscription plan instead
type GlobalLimits struct {
	GuestDailyLimit int `json:"guest_daily_limit"`
	UserDailyLimit  int `json:"user_daily_limit"`
}

// PolicyStore reads the global limit policy.
type PolicyStore interface {
	GlobalLimits(ctx context.Context) (*GlobalLimits, error)
}
