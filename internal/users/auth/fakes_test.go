// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"sync"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/users/auth"
)

// memoryUsers is an in-memory [auth.UserRepository] for service and handler tests.
type memoryUsers struct {
	mu      sync.Mutex
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: map[string]*auth.User{}, byEmail: map[string]*auth.User{}}
}

func (store *memoryUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if user, ok := store.byID[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, apperr.NotFound("Account")
}

func (store *memoryUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if user, ok := store.byEmail[email]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, apperr.NotFound("Account")
}

func (store *memoryUsers) Create(_ context.Context, user *auth.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, exists := store.byEmail[user.Email]; exists {
		return apperr.Conflict("Email already exists")
	}
	clone := *user
	store.byID[user.ID] = &clone
	store.byEmail[user.Email] = &clone
	return nil
}

func (store *memoryUsers) delete(id string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if user, ok := store.byID[id]; ok {
		delete(store.byEmail, user.Email)
		delete(store.byID, id)
	}
}
