// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/folio/internal/platform/sec"
)

func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, sec.CheckPasswordHash("correct horse battery", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
}

func TestHashPassword_Length(t *testing.T) {
	_, err := sec.HashPassword(strings.Repeat("p", sec.MaxPasswordBytes))
	assert.NoError(t, err)

	_, err = sec.HashPassword(strings.Repeat("p", sec.MaxPasswordBytes+1))
	assert.ErrorIs(t, err, sec.ErrPasswordTooLong)
}

func TestDecoyHash(t *testing.T) {
	decoy := sec.DecoyHash()
	assert.Equal(t, decoy, sec.DecoyHash(), "computed once")

	cost, err := bcrypt.Cost([]byte(decoy))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	assert.False(t, sec.CheckPasswordHash("", decoy))
	assert.False(t, sec.CheckPasswordHash("password1", decoy))
}
