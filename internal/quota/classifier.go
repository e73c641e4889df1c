package quota

import (
	"context"
	"fmt"

	"github.com/tinytools/server/internal/identity"
	"github.com/tinytools/server/internal/settings"
	"github.com/tinytools/server/internal/subscriptions"
)

// Classifier derives a caller's tier and the limit that applies to it.
//
// The tier is recomputed on every request, never cached across requests: a
// subscription can expire mid-session and the very next invocation must see
// the downgraded tier.
type Classifier struct {
	subs   SubscriptionStore
	policy settings.PolicyStore
}

// creates a new classifier
func NewClassifier(subs SubscriptionStore, policy settings.PolicyStore) *Classifier {
	return &Classifier{subs: subs, policy: policy}
}

// resolves the caller's tier and limit policy
func (c *Classifier) Classify(ctx context.Context, id identity.Identity) (Tier, Policy, error) {
	if !identity.Resolvable(id) {
		return "", Policy{}, ErrIdentityUnresolved
	}

	switch v := id.(type) {
	case identity.Registered:
		sub, err := c.subs.ActiveForUser(ctx, v.UserID)
		if err != nil {
			return "", Policy{}, fmt.Errorf("failed to check subscription: %w", err)
		}

		if sub != nil && sub.Status == subscriptions.StatusActive {
			return TierSubscriber, Policy{DailyLimit: sub.DailyLimit}, nil
		}

		limits, err := c.policy.GlobalLimits(ctx)
		if err != nil {
			return "", Policy{}, fmt.Errorf("failed to load global limits: %w", err)
		}

		return TierUser, Policy{DailyLimit: limits.UserDailyLimit}, nil

	case identity.Anonymous:
		limits, err := c.policy.GlobalLimits(ctx)
		if err != nil {
			return "", Policy{}, fmt.Errorf("failed to load global limits: %w", err)
		}

		return TierGuest, Policy{DailyLimit: limits.GuestDailyLimit}, nil

	default:
		return "", Policy{}, ErrIdentityUnresolved
	}
}
