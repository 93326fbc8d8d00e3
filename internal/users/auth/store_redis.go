// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// RedisLoginGuard implements [LoginGuard] with one expiring counter per key.
//
// The window starts at the first failure and is not extended by later ones.
type RedisLoginGuard struct {
	client      redis.UniversalClient
	maxAttempts int64
	window      time.Duration
}

// NewRedisLoginGuard creates a Redis-backed login guard.
func NewRedisLoginGuard(client redis.UniversalClient, maxAttempts int, window time.Duration) *RedisLoginGuard {
	return &RedisLoginGuard{client: client, maxAttempts: int64(maxAttempts), window: window}
}

func (guard *RedisLoginGuard) key(email string) string {
	return constants.RedisPrefixLoginAttempts + email
}

/*
Blocked reports the remaining lock time for the key.

Returns:
  - time.Duration: Zero when below the attempt limit
  - error: Connectivity errors
*/
func (guard *RedisLoginGuard) Blocked(context context.Context, email string) (time.Duration, error) {
	key := guard.key(email)

	count, err := guard.client.Get(context, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_login_guard_get_failed: %w", err)
	}

	if count < guard.maxAttempts {
		return 0, nil
	}

	ttl, err := guard.client.TTL(context, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_login_guard_ttl_failed: %w", err)
	}

	// A counter without expiry would lock forever; treat it as a full window.
	if ttl <= 0 {
		return guard.window, nil
	}
	return ttl, nil
}

// RecordFailure increments the counter and starts the window on first failure.
func (guard *RedisLoginGuard) RecordFailure(context context.Context, email string) error {
	key := guard.key(email)

	count, err := guard.client.Incr(context, key).Result()
	if err != nil {
		return fmt.Errorf("redis_login_guard_incr_failed: %w", err)
	}

	if count == 1 {
		if err := guard.client.Expire(context, key, guard.window).Err(); err != nil {
			return fmt.Errorf("redis_login_guard_expire_failed: %w", err)
		}
	}

	return nil
}

// Reset deletes the counter.
func (guard *RedisLoginGuard) Reset(context context.Context, email string) error {
	if err := guard.client.Del(context, guard.key(email)).Err(); err != nil {
		return fmt.Errorf("redis_login_guard_reset_failed: %w", err)
	}
	return nil
}
