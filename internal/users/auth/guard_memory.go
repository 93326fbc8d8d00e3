// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryLoginGuard implements [LoginGuard] inside the process. It is used
// when no Redis is configured and only protects a single API instance.
type MemoryLoginGuard struct {
	mu          sync.Mutex
	attempts    map[string]*loginAttempts
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// sweepThreshold is the map size at which expired entries are purged on write.
const sweepThreshold = 10_000

type loginAttempts struct {
	count     int
	expiresAt time.Time
}

// NewMemoryLoginGuard creates an in-process login guard.
func NewMemoryLoginGuard(maxAttempts int, window time.Duration) *MemoryLoginGuard {
	return &MemoryLoginGuard{
		attempts:    make(map[string]*loginAttempts),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// current returns the live entry for key, dropping it if its window passed.
// Callers must hold mu.
func (guard *MemoryLoginGuard) current(key string) *loginAttempts {
	entry, found := guard.attempts[key]
	if !found {
		return nil
	}
	if !guard.now().Before(entry.expiresAt) {
		delete(guard.attempts, key)
		return nil
	}
	return entry
}

// Blocked reports the remaining lock time for key.
func (guard *MemoryLoginGuard) Blocked(_ context.Context, key string) (time.Duration, error) {
	guard.mu.Lock()
	defer guard.mu.Unlock()

	entry := guard.current(key)
	if entry == nil || entry.count < guard.maxAttempts {
		return 0, nil
	}
	return entry.expiresAt.Sub(guard.now()), nil
}

// RecordFailure counts one failure, opening a new window if none is live.
func (guard *MemoryLoginGuard) RecordFailure(_ context.Context, key string) error {
	guard.mu.Lock()
	defer guard.mu.Unlock()

	if len(guard.attempts) >= sweepThreshold {
		guard.sweep()
	}

	entry := guard.current(key)
	if entry == nil {
		entry = &loginAttempts{expiresAt: guard.now().Add(guard.window)}
		guard.attempts[key] = entry
	}
	entry.count++
	return nil
}

func (guard *MemoryLoginGuard) sweep() {
	now := guard.now()
	for key, entry := range guard.attempts {
		if !now.Before(entry.expiresAt) {
			delete(guard.attempts, key)
		}
	}
}

// Reset forgets key.
func (guard *MemoryLoginGuard) Reset(_ context.Context, key string) error {
	guard.mu.Lock()
	defer guard.mu.Unlock()

	delete(guard.attempts, key)
	return nil
}
