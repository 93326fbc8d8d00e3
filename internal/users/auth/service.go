// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/mail"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
type Service struct {
	userRepository UserRepository
	loginGuard     LoginGuard
	tokenProvider  TokenProvider
	tokenTTL       time.Duration
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(users UserRepository, guard LoginGuard, tokens TokenProvider, tokenTTL time.Duration) *Service {
	return &Service{
		userRepository: users,
		loginGuard:     guard,
		tokenProvider:  tokens,
		tokenTTL:       tokenTTL,
	}
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
// A display-name form such as "Bob <bob@example.com>" is reduced to its
// bare address.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if addr, err := mail.ParseAddress(email); err == nil {
		email = addr.Address
	}
	return strings.ToLower(email)
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new reader.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

/*
Register validates, hashes, and persists a brand new user account, then signs
the caller in.

Returns:
  - *TokenResponse: Access token and the created profile
  - error: ValidationError, Conflict (email taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*TokenResponse, error) {
	email := NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).
		MaxLen(FieldEmail, email, MaxEmailLength).
		Email(FieldEmail, email).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		Custom(FieldPassword, len(input.Password) > MaxPasswordBytes, fmt.Sprintf("Maximum %d bytes", MaxPasswordBytes)).
		Required(FieldName, name).
		MaxLen(FieldName, name, MaxNameLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Fast path for the common duplicate. The unique index still guards the race.
	if _, err := service.userRepository.FindByEmail(context, email); err == nil {
		return nil, apperr.Conflict("Email already registered")
	} else if !apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := service.userRepository.Create(context, user); err != nil {
		if apperr.HasCode(err, apperr.CodeConflict) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_registered", slog.String("user_id", user.ID))

	return service.issue(user)
}

// # Authentication Flow

/*
Login verifies credentials and issues an access token.

Unknown emails and wrong passwords produce the same Unauthorized error.
Repeated failures for one email lock it for the guard window.

Returns:
  - *TokenResponse: Access token and profile
  - error: Unauthorized, RateLimited or internal failures
*/
func (service *Service) Login(context context.Context, email, password string) (*TokenResponse, error) {
	email = NormalizeEmail(email)
	logger := ctxutil.GetLogger(context)

	retryAfter, err := service.loginGuard.Blocked(context, email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_guard_check_failed: %w", err)
	}
	if retryAfter > 0 {
		logger.WarnContext(context, "login_blocked", slog.Duration("retry_after", retryAfter))
		return nil, apperr.RateLimited(int(math.Ceil(retryAfter.Seconds())))
	}

	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil && !apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	passwordHash := sec.DecoyHash()
	if user != nil {
		passwordHash = user.PasswordHash
	}

	// The decoy compare keeps unknown emails as slow as wrong passwords.
	if !sec.CheckPasswordHash(password, passwordHash) || user == nil {
		if err := service.loginGuard.RecordFailure(context, email); err != nil {
			logger.WarnContext(context, "login_guard_record_failed", slog.Any("error", err))
		}
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	if err := service.loginGuard.Reset(context, email); err != nil {
		logger.WarnContext(context, "login_guard_reset_failed", slog.Any("error", err))
	}

	return service.issue(user)
}

/*
Me loads the profile of the authenticated user.

A valid token whose account no longer exists is treated as Unauthorized.
*/
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	if !validate.IsUUID(userID) {
		return nil, apperr.Unauthorized("Could not validate credentials")
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthorized("Could not validate credentials")
		}
		return nil, err
	}
	return user, nil
}

func (service *Service) issue(user *User) (*TokenResponse, error) {
	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   constants.TokenType,
		ExpiresIn:   int64(service.tokenTTL.Seconds()),
		User:        user,
	}, nil
}
