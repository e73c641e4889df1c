package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	limits *GlobalLimits
	err    error
	calls  int
}

func (f *fakeStore) GlobalLimits(_ context.Context) (*GlobalLimits, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.limits, nil
}

func TestCache_ServesFromCacheWithinTTL(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{limits: &GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 20}}

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(store, time.Minute, func() time.Time { return clock })

	for i := 0; i < 3; i++ {
		limits, err := cache.GlobalLimits(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, limits.GuestDailyLimit)
	}

	assert.Equal(t, 1, store.calls, "inner store should be hit once within TTL")
}

func TestCache_RefreshesAfterTTL(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{limits: &GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 20}}

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(store, time.Minute, func() time.Time { return clock })

	_, err := cache.GlobalLimits(ctx)
	require.NoError(t, err)

	// advance past the TTL; the inner store was edited meanwhile
	clock = clock.Add(2 * time.Minute)
	store.limits = &GlobalLimits{GuestDailyLimit: 10, UserDailyLimit: 50}

	limits, err := cache.GlobalLimits(ctx)
	require.NoError(t, err)

	assert.Equal(t, 10, limits.GuestDailyLimit)
	assert.Equal(t, 2, store.calls)
}

func TestCache_InvalidateForcesRefresh(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{limits: &GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 20}}

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(store, time.Hour, func() time.Time { return clock })

	_, err := cache.GlobalLimits(ctx)
	require.NoError(t, err)

	store.limits = &GlobalLimits{GuestDailyLimit: 3, UserDailyLimit: 15}
	cache.Invalidate()

	limits, err := cache.GlobalLimits(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, limits.GuestDailyLimit)
	assert.Equal(t, 2, store.calls)
}

func TestCache_ServesStaleOnInnerFailure(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{limits: &GlobalLimits{GuestDailyLimit: 5, UserDailyLimit: 20}}

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(store, time.Minute, func() time.Time { return clock })

	_, err := cache.GlobalLimits(ctx)
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	store.err = errors.New("connection refused")

	limits, err := cache.GlobalLimits(ctx)
	require.NoError(t, err, "stale limits should be served when the store is down")
	assert.Equal(t, 5, limits.GuestDailyLimit)
}
