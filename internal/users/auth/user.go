// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the user identity layer of Folio.

It owns registration, password login, and resolving the current user from a
verified bearer token. Tokens are stateless JWTs: expiry is the only way a
token stops working.

# Architecture

  - Service: Register, Login, Me.
  - UserRepository: PostgreSQL-backed credential store (users.account).
  - LoginGuard: failed-login throttling, backed by Redis or process memory.
*/
package auth

import (
	"time"
)

// # Domain Entities

// User represents a registered reader.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TokenResponse is returned by both registration and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}

// # Field Identifiers

// Field names used in validation details.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)
