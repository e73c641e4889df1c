package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/tinytools/server/internal/identity"
	"github.com/tinytools/server/internal/ledger"
)

// Controller decides whether a caller may run a tool right now.
//
// Check is a pure read. It is not transactional with the ledger write that
// follows a successful invocation: two concurrent requests from the same
// caller can both read "1 remaining" and both proceed, overshooting the daily
// limit by one. Accepted trade-off for a lock-free, stateless request path.
type Controller struct {
	classifier *Classifier
	store      ledger.Store
	window     ledger.Window
}

// creates a new admission controller
func NewController(classifier *Classifier, store ledger.Store, window ledger.Window) *Controller {
	return &Controller{classifier: classifier, store: store, window: window}
}

// produces an allow/deny decision with the remaining count for today
func (c *Controller) Check(ctx context.Context, id identity.Identity) (*Decision, error) {
	tier, policy, err := c.classifier.Classify(ctx, id)

	if errors.Is(err, ErrIdentityUnresolved) {
		// untrackable caller: deny and point at login
		return &Decision{
			Allowed:       false,
			Remaining:     0,
			Tier:          TierGuest,
			Reason:        ReasonIdentityUnresolved,
			RequiresLogin: true,
		}, nil
	}

	if err != nil {
		return nil, err
	}

	if policy.DailyLimit == Unlimited {
		return &Decision{
			Allowed:   true,
			Remaining: Unlimited,
			Limit:     Unlimited,
			Tier:      tier,
		}, nil
	}

	count, err := c.effectiveCount(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := &Decision{
		Allowed:   count < policy.DailyLimit,
		Remaining: max(0, policy.DailyLimit-count),
		Limit:     policy.DailyLimit,
		Tier:      tier,
	}

	if !decision.Allowed {
		decision.Reason = ReasonQuotaExceeded

		switch tier {
		case TierGuest:
			decision.RequiresLogin = true
		case TierUser:
			decision.RequiresUpgrade = true
		}
	}

	return decision, nil
}

// computes today's usage count for the caller
//
// For guests the effective count is max(countByFingerprint, countByIP), not
// the sum and not either value alone. Clearing cookies or switching browsers
// keeps the same IP, so the IP count survives fingerprint churn; a device
// whose own count somehow exceeds its IP bucket is still held to the stricter
// device view.
func (c *Controller) effectiveCount(ctx context.Context, id identity.Identity) (int, error) {
	since := c.window.Start()

	switch v := id.(type) {
	case identity.Registered:
		count, err := c.store.CountByUser(ctx, v.UserID, since)
		if err != nil {
			return 0, fmt.Errorf("failed to count usage for user: %w", err)
		}
		return count, nil

	case identity.Anonymous:
		var byFingerprint, byIP int

		if v.Fingerprint != "" {
			n, err := c.store.CountByFingerprint(ctx, v.Fingerprint, since)
			if err != nil {
				return 0, fmt.Errorf("failed to count usage by fingerprint: %w", err)
			}
			byFingerprint = n
		}

		if v.IP != "" {
			n, err := c.store.CountByIP(ctx, v.IP, since)
			if err != nil {
				return 0, fmt.Errorf("failed to count usage by ip: %w", err)
			}
			byIP = n
		}

		return max(byFingerprint, byIP), nil

	default:
		return 0, ErrIdentityUnresolved
	}
}
