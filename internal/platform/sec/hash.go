// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt will hash.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by HashPassword for inputs over [MaxPasswordBytes].
var ErrPasswordTooLong = errors.New("sec: password exceeds 72 bytes")

// HashPassword hashes a plain-text password with bcrypt at the default cost.
func HashPassword(plainTextPassword string) (string, error) {
	if len(plainTextPassword) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash reports whether plainTextPassword matches existingHash.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword)) == nil
}

var (
	decoyOnce sync.Once
	decoyHash string
)

// DecoyHash returns a fixed bcrypt hash at the default cost that no
// password matches. Comparing against it when an account does not exist
// makes that path cost the same as a wrong password.
func DecoyHash() string {
	decoyOnce.Do(func() {
		hashed, err := bcrypt.GenerateFromPassword([]byte("folio:no-such-account"), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("sec: decoy hash: %v", err))
		}
		decoyHash = string(hashed)
	})
	return decoyHash
}
