package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_Exclusive(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	token, ok, err := l.TryLock(ctx, "refresh", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	_, ok, err = l.TryLock(ctx, "refresh", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second owner must be rejected")

	// A stale token does not release the lock.
	require.NoError(t, l.Release(ctx, "refresh", "not-the-owner"))
	_, ok, _ = l.TryLock(ctx, "refresh", time.Minute)
	assert.False(t, ok)

	require.NoError(t, l.Release(ctx, "refresh", token))
	_, ok, err = l.TryLock(ctx, "refresh", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalLocker_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLocal()
	l.clock = func() time.Time { return now }

	_, ok, _ := l.TryLock(context.Background(), "k", time.Second)
	require.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok, _ = l.TryLock(context.Background(), "k", time.Second)
	assert.True(t, ok, "expired lock can be taken over")
}

func TestLocalLocker_Validation(t *testing.T) {
	l := NewLocal()

	_, _, err := l.TryLock(context.Background(), "", time.Second)
	assert.Error(t, err)

	_, _, err = l.TryLock(context.Background(), "k", 0)
	assert.Error(t, err)
}

func TestNew_SelectsBackend(t *testing.T) {
	assert.IsType(t, &LocalLocker{}, New(Config{}))
	assert.IsType(t, &RedisLocker{}, New(Config{RedisAddr: "127.0.0.1:6379"}))
}

func TestRedisLocker_NotConfigured(t *testing.T) {
	var l *RedisLocker
	_, ok, err := l.TryLock(context.Background(), "k", time.Second)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, l.Release(context.Background(), "k", "t"))
}

func TestConfig_TTL(t *testing.T) {
	assert.Equal(t, 5*time.Minute, Config{}.TTL())
	assert.Equal(t, 30*time.Second, Config{TTLSeconds: 30}.TTL())
}
