// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil carries per-request values (request ID, logger, caller
// identity) through [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/ctxkey"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// value returns the typed value stored under key, or the zero value of T.
func value[T any](ctx context.Context, key any) T {
	typed, _ := ctx.Value(key).(T)
	return typed
}

// WithRequestID attaches the correlation ID echoed in X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns the correlation ID, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	return value[string](ctx, ctxkey.KeyRequestID)
}

// WithLogger attaches a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request-scoped logger, falling back to [slog.Default]
// for background work and tests.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger := value[*slog.Logger](ctx, ctxkey.KeyLogger); logger != nil {
		return logger
	}
	return slog.Default()
}

// WithAuthUser attaches the verified bearer-token claims.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser returns the caller's claims, or nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	return value[*sec.AuthClaims](ctx, ctxkey.KeyUser)
}

// UserID returns the authenticated reader's ID and whether one is present.
// Claims with an empty subject count as anonymous.
func UserID(ctx context.Context) (string, bool) {
	claims := GetAuthUser(ctx)
	if claims == nil || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
