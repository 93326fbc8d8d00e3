// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "github.com/taibuivan/folio/internal/platform/sec"

// # Credential Constraints

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8

	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = sec.MaxPasswordBytes

	// MaxNameLength bounds the display name.
	MaxNameLength = 100

	// MaxEmailLength matches the users.account column width.
	MaxEmailLength = 320

	// invalidCredentials is shared by the unknown-email and wrong-password
	// paths so that responses do not reveal which accounts exist.
	invalidCredentials = "Incorrect email or password"
)
