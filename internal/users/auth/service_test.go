// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/users/auth"
)

const testSecret = "a-test-secret-that-is-long-enough-for-hs256"

func newTestService(t *testing.T) (*auth.Service, *memoryUsers, *sec.TokenService) {
	t.Helper()
	tokens, err := sec.NewHMACTokenService(testSecret, "folio.test")
	require.NoError(t, err)

	users := newMemoryUsers()
	guard := auth.NewMemoryLoginGuard(3, time.Minute)
	return auth.NewService(users, guard, tokens, 30*time.Minute), users, tokens
}

func TestRegister_IssuesTokenForNewUser(t *testing.T) {
	service, _, tokens := newTestService(t)

	session, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "  Reader@Example.COM ",
		Password: "correct-horse",
		Name:     "Paul Atreides",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", session.TokenType)
	assert.Equal(t, int64(1800), session.ExpiresIn)
	assert.Equal(t, "reader@example.com", session.User.Email)
	assert.NotEqual(t, "correct-horse", session.User.PasswordHash)

	claims, err := tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	service, _, _ := newTestService(t)
	input := auth.RegisterInput{Email: "dup@example.com", Password: "password1", Name: "Dup"}

	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	input.Email = "DUP@example.com"
	_, err = service.Register(context.Background(), input)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

func TestRegister_Validation(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		name  string
		input auth.RegisterInput
		field string
	}{
		{"bad email", auth.RegisterInput{Email: "nope", Password: "password1", Name: "A"}, auth.FieldEmail},
		{"short password", auth.RegisterInput{Email: "a@b.co", Password: "short", Name: "A"}, auth.FieldPassword},
		{"password over bcrypt limit", auth.RegisterInput{Email: "a@b.co", Password: strings.Repeat("p", auth.MaxPasswordBytes+1), Name: "A"}, auth.FieldPassword},
		{"missing name", auth.RegisterInput{Email: "a@b.co", Password: "password1", Name: "  "}, auth.FieldName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
		})
	}
}

func TestRegister_DisplayNameEmailStoresBareAddress(t *testing.T) {
	service, users, _ := newTestService(t)

	session, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "Bob <Bob@Example.com>", Password: "password1", Name: "Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", session.User.Email)

	stored, err := users.FindByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, stored.ID)

	loggedIn, err := service.Login(context.Background(), "bob@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, loggedIn.User.ID)
}

func TestLogin_UnknownEmailCountsTowardLock(t *testing.T) {
	service, _, _ := newTestService(t)

	for range 3 {
		_, err := service.Login(context.Background(), "ghost@example.com", "password1")
		require.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	}

	_, err := service.Login(context.Background(), "ghost@example.com", "password1")
	assert.True(t, apperr.HasCode(err, apperr.CodeRateLimited))
}

func TestLogin(t *testing.T) {
	service, _, _ := newTestService(t)
	registered, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "login@example.com", Password: "password1", Name: "Login",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		session, err := service.Login(context.Background(), "LOGIN@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, session.User.ID)
	})

	t.Run("wrong password and unknown email share one message", func(t *testing.T) {
		_, wrongPassword := service.Login(context.Background(), "login@example.com", "nope")
		_, unknownEmail := service.Login(context.Background(), "ghost@example.com", "password1")

		require.True(t, apperr.HasCode(wrongPassword, apperr.CodeUnauthorized))
		require.True(t, apperr.HasCode(unknownEmail, apperr.CodeUnauthorized))
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})
}

func TestLogin_LocksAfterRepeatedFailures(t *testing.T) {
	service, _, _ := newTestService(t)
	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "locked@example.com", Password: "password1", Name: "Locked",
	})
	require.NoError(t, err)

	for range 3 {
		_, err := service.Login(context.Background(), "locked@example.com", "wrong")
		require.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	}

	_, err = service.Login(context.Background(), "locked@example.com", "password1")
	assert.True(t, apperr.HasCode(err, apperr.CodeRateLimited))
}

func TestLogin_SuccessResetsFailures(t *testing.T) {
	service, _, _ := newTestService(t)
	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "reset@example.com", Password: "password1", Name: "Reset",
	})
	require.NoError(t, err)

	for range 2 {
		_, _ = service.Login(context.Background(), "reset@example.com", "wrong")
	}
	_, err = service.Login(context.Background(), "reset@example.com", "password1")
	require.NoError(t, err)

	for range 2 {
		_, _ = service.Login(context.Background(), "reset@example.com", "wrong")
	}
	_, err = service.Login(context.Background(), "reset@example.com", "password1")
	assert.NoError(t, err)
}

func TestMe(t *testing.T) {
	service, users, _ := newTestService(t)
	session, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "me@example.com", Password: "password1", Name: "Me",
	})
	require.NoError(t, err)

	user, err := service.Me(context.Background(), session.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", user.Email)

	users.delete(session.User.ID)
	_, err = service.Me(context.Background(), session.User.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	_, err = service.Me(context.Background(), "not-a-uuid")
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
}
