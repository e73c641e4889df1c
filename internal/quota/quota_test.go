package quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinytools/server/internal/identity"
	"github.com/tinytools/server/internal/ledger"
	"github.com/tinytools/server/internal/settings"
	"github.com/tinytools/server/internal/subscriptions"
)

type fakeSubs struct {
	sub *subscriptions.Subscription
}

func (f *fakeSubs) ActiveForUser(_ context.Context, _ string) (*subscriptions.Subscription, error) {
	return f.sub, nil
}

type fakePolicy struct {
	limits settings.GlobalLimits
}

func (f *fakePolicy) GlobalLimits(_ context.Context) (*settings.GlobalLimits, error) {
	return &f.limits, nil
}

func newController(subs *fakeSubs, policy *fakePolicy, store ledger.Store) *Controller {
	classifier := NewClassifier(subs, policy)
	window := ledger.NewWindowWithClock(time.UTC, time.Now)
	return NewController(classifier, store, window)
}

func seedGuestRecords(t *testing.T, store *ledger.MemoryStore, n int, fingerprint, ip string) {
	t.Helper()

	for i := 0; i < n; i++ {
		err := store.Record(context.Background(), ledger.Record{
			ToolID:      "summarizer",
			Fingerprint: fingerprint,
			IP:          ip,
			CreatedAt:   time.Now(),
		})
		require.NoError(t, err)
	}
}

func TestClassify_GuestUsesGlobalPolicy(t *testing.T) {
	classifier := NewClassifier(&fakeSubs{}, &fakePolicy{limits: settings.GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 20}})

	tier, policy, err := classifier.Classify(context.Background(), identity.Anonymous{Fingerprint: "fp-a", IP: "1.2.3.4"})

	require.NoError(t, err)
	assert.Equal(t, TierGuest, tier)
	assert.Equal(t, 5, policy.DailyLimit)
}

func TestClassify_RegisteredWithoutSubscription(t *testing.T) {
	classifier := NewClassifier(&fakeSubs{}, &fakePolicy{limits: settings.GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 20}})

	tier, policy, err := classifier.Classify(context.Background(), identity.Registered{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, TierUser, tier)
	assert.Equal(t, 20, policy.DailyLimit)
}

func TestClassify_ActiveSubscriptionWinsOverUserTier(t *testing.T) {
	subs := &fakeSubs{sub: &subscriptions.Subscription{
		UserID:     "user-1",
		Status:     subscriptions.StatusActive,
		DailyLimit: Unlimited,
	}}

	classifier := NewClassifier(subs, &fakePolicy{limits: settings.GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 20}})

	tier, policy, err := classifier.Classify(context.Background(), identity.Registered{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, TierSubscriber, tier, "active subscription must resolve to subscriber, not user")
	assert.Equal(t, Unlimited, policy.DailyLimit)
}

func TestClassify_UnresolvedIdentity(t *testing.T) {
	classifier := NewClassifier(&fakeSubs{}, &fakePolicy{})

	_, _, err := classifier.Classify(context.Background(), identity.Anonymous{})

	assert.ErrorIs(t, err, ErrIdentityUnresolved)
}

func TestCheck_UnlimitedPolicyAlwaysAllows(t *testing.T) {
	store := ledger.NewMemoryStore()
	subs := &fakeSubs{sub: &subscriptions.Subscription{
		UserID:     "user-1",
		Status:     subscriptions.StatusActive,
		DailyLimit: Unlimited,
	}}

	ctrl := newController(subs, &fakePolicy{}, store)

	// prior usage must not matter at all
	for i := 0; i < 50; i++ {
		require.NoError(t, store.Record(context.Background(), ledger.Record{ToolID: "t", UserID: "user-1", CreatedAt: time.Now()}))
	}

	decision, err := ctrl.Check(context.Background(), identity.Registered{UserID: "user-1"})

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, Unlimited, decision.Remaining)
}

func TestCheck_GuestEffectiveCountIsMax(t *testing.T) {
	store := ledger.NewMemoryStore()
	policy := &fakePolicy{limits: settings.GlobalLimits{GuestDailyLimit: 10, UserDailyLimit: 20}}
	ctrl := newController(&fakeSubs{}, policy, store)

	// 3 uses from this fingerprint, 7 total from the IP (other fingerprints included)
	seedGuestRecords(t, store, 3, "fp-a", "1.2.3.4")
	seedGuestRecords(t, store, 4, "fp-other", "1.2.3.4")

	decision, err := ctrl.Check(context.Background(), identity.Anonymous{Fingerprint: "fp-a", IP: "1.2.3.4"})

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 3, decision.Remaining, "effective count must be max(3, 7) = 7")
}

func TestCheck_FingerprintSwitchDoesNotResetQuota(t *testing.T) {
	store := ledger.NewMemoryStore()
	policy := &fakePolicy{limits: settings.GlobalLimits{GuestDailyLimit: 10, UserDailyLimit: 20}}
	ctrl := newController(&fakeSubs{}, policy, store)

	// 6 prior uses from IP X with fingerprint A
	seedGuestRecords(t, store, 6, "fp-a", "1.2.3.4")

	// first-ever request with fresh fingerprint B from the same IP
	decision, err := ctrl.Check(context.Background(), identity.Anonymous{Fingerprint: "fp-b", IP: "1.2.3.4"})

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 4, decision.Remaining, "IP history must survive fingerprint churn")
}

func TestCheck_GuestAtLimitIsDeniedWithLoginHint(t *testing.T) {
	store := ledger.NewMemoryStore()
	policy := &fakePolicy{limits: settings.GlobalLimits{GuestDailyLimit: 10, UserDailyLimit: 20}}
	ctrl := newController(&fakeSubs{}, policy, store)

	// 10 prior records today from fingerprint A / IP 1.2.3.4
	seedGuestRecords(t, store, 10, "fp-a", "1.2.3.4")

	// new request from fingerprint B, same IP
	decision, err := ctrl.Check(context.Background(), identity.Anonymous{Fingerprint: "fp-b", IP: "1.2.3.4"})

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)
	assert.True(t, decision.RequiresLogin)
	assert.False(t, decision.RequiresUpgrade)
}

func TestCheck_RegisteredAtLimitSuggestsUpgrade(t *testing.T) {
	store := ledger.NewMemoryStore()
	policy := &fakePolicy{limits: settings.GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 2}}
	ctrl := newController(&fakeSubs{}, policy, store)

	for i := 0; i < 2; i++ {
		require.NoError(t, store.Record(context.Background(), ledger.Record{ToolID: "t", UserID: "user-1", CreatedAt: time.Now()}))
	}

	decision, err := ctrl.Check(context.Background(), identity.Registered{UserID: "user-1"})

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.True(t, decision.RequiresUpgrade)
	assert.False(t, decision.RequiresLogin)
}

func TestCheck_UnresolvedIdentityDeniedWithLoginHint(t *testing.T) {
	store := ledger.NewMemoryStore()
	ctrl := newController(&fakeSubs{}, &fakePolicy{}, store)

	decision, err := ctrl.Check(context.Background(), identity.Anonymous{})

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.True(t, decision.RequiresLogin)
}

func TestCheck_IsAPureRead(t *testing.T) {
	store := ledger.NewMemoryStore()
	policy := &fakePolicy{limits: settings.GlobalLimits{GuestDailyLimit: 10, UserDailyLimit: 20}}
	ctrl := newController(&fakeSubs{}, policy, store)

	_, err := ctrl.Check(context.Background(), identity.Anonymous{Fingerprint: "fp-a", IP: "1.2.3.4"})
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len(), "admission check must not write to the ledger")
}
