// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/users/auth"
)

func TestMemoryLoginGuard(t *testing.T) {
	ctx := context.Background()
	guard := auth.NewMemoryLoginGuard(2, time.Minute)

	blocked, err := guard.Blocked(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Zero(t, blocked)

	require.NoError(t, guard.RecordFailure(ctx, "a@example.com"))
	blocked, _ = guard.Blocked(ctx, "a@example.com")
	assert.Zero(t, blocked)

	require.NoError(t, guard.RecordFailure(ctx, "a@example.com"))
	blocked, _ = guard.Blocked(ctx, "a@example.com")
	assert.Greater(t, blocked, time.Duration(0))
	assert.LessOrEqual(t, blocked, time.Minute)

	otherBlocked, _ := guard.Blocked(ctx, "b@example.com")
	assert.Zero(t, otherBlocked, "keys are independent")

	require.NoError(t, guard.Reset(ctx, "a@example.com"))
	blocked, _ = guard.Blocked(ctx, "a@example.com")
	assert.Zero(t, blocked)
}

func TestMemoryLoginGuard_WindowExpires(t *testing.T) {
	ctx := context.Background()
	guard := auth.NewMemoryLoginGuard(1, 10*time.Millisecond)

	require.NoError(t, guard.RecordFailure(ctx, "a@example.com"))
	blocked, _ := guard.Blocked(ctx, "a@example.com")
	require.Greater(t, blocked, time.Duration(0))

	assert.Eventually(t, func() bool {
		blocked, _ := guard.Blocked(ctx, "a@example.com")
		return blocked == 0
	}, time.Second, 5*time.Millisecond)
}

func TestRedisLoginGuard(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	guard := auth.NewRedisLoginGuard(client, 2, 15*time.Minute)

	blocked, err := guard.Blocked(ctx, "r@example.com")
	require.NoError(t, err)
	assert.Zero(t, blocked)

	require.NoError(t, guard.RecordFailure(ctx, "r@example.com"))
	require.NoError(t, guard.RecordFailure(ctx, "r@example.com"))

	assert.Equal(t, "2", mustGet(t, server, "auth:login_attempts:r@example.com"))
	assert.Equal(t, 15*time.Minute, server.TTL("auth:login_attempts:r@example.com"))

	blocked, err = guard.Blocked(ctx, "r@example.com")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, blocked)

	server.FastForward(16 * time.Minute)
	blocked, err = guard.Blocked(ctx, "r@example.com")
	require.NoError(t, err)
	assert.Zero(t, blocked)
}

func TestRedisLoginGuard_Reset(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	guard := auth.NewRedisLoginGuard(client, 1, time.Minute)
	require.NoError(t, guard.RecordFailure(ctx, "r@example.com"))
	require.NoError(t, guard.Reset(ctx, "r@example.com"))

	assert.False(t, server.Exists("auth:login_attempts:r@example.com"))
}

func mustGet(t *testing.T, server *miniredis.Miniredis, key string) string {
	t.Helper()
	value, err := server.Get(key)
	require.NoError(t, err)
	return value
}
