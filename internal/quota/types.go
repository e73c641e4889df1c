package quota

import (
	"context"
	"errors"

	"github.com/tinytools/server/internal/settings"
	"github.com/tinytools/server/internal/subscriptions"
)

// Tier is the entitlement class governing which limit applies.
type Tier string

const (
	TierGuest      Tier = "guest"
	TierUser       Tier = "user"
	TierSubscriber Tier = "subscriber"
)

// Unlimited short-circuits all counting.
const Unlimited = settings.Unlimited

// the resolved limit for one request
type Policy struct {
	DailyLimit int
}

// returned when an identity carries no usable key at all
var ErrIdentityUnresolved = errors.New("identity unresolved: no user id, fingerprint, or ip")

// denial reasons carried on a Decision
const (
	ReasonQuotaExceeded      = "quota_exceeded"
	ReasonIdentityUnresolved = "identity_unresolved"
)

// the admission outcome for one request
type Decision struct {
	Allowed         bool   `json:"allowed"`
	Remaining       int    `json:"remaining"`
	Limit           int    `json:"limit"`
	Tier            Tier   `json:"tier"`
	Reason          string `json:"reason,omitempty"`
	RequiresLogin   bool   `json:"requires_login,omitempty"`
	RequiresUpgrade bool   `json:"requires_upgrade,omitempty"`
}

// SubscriptionStore looks up a caller's active subscription.
type SubscriptionStore interface {
	ActiveForUser(ctx context.Context, userID string) (*subscriptions.Subscription, error)
}
