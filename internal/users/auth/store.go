// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given normalized email.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account.

		Returns:
		  - error: apperr.Conflict when the email is taken, or persistence failures
	*/
	Create(context context.Context, user *User) error
}

// # Login Throttling

// LoginGuard counts failed logins per key (the normalized email).
type LoginGuard interface {
	// Blocked returns how long the key stays locked, or zero if it may try again.
	Blocked(context context.Context, key string) (time.Duration, error)

	// RecordFailure counts one failed attempt against the key.
	RecordFailure(context context.Context, key string) error

	// Reset forgets all failures for the key.
	Reset(context context.Context, key string) error
}
