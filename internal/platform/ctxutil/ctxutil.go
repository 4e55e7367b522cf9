// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/clubcompass/internal/platform/ctxkey"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// Session is the authenticated principal attached to a request.
type Session struct {
	ID       string
	Identity *sec.Identity
}

// WithSession returns a new context carrying the authenticated session.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, ctxkey.KeySession, session)
}

// ClearSession shadows any session attached further up the context chain.
func ClearSession(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxkey.KeySession, (*Session)(nil))
}

// GetSession retrieves the authenticated session, or nil for anonymous requests.
func GetSession(ctx context.Context) *Session {
	session, ok := ctx.Value(ctxkey.KeySession).(*Session)
	if !ok {
		return nil
	}
	return session
}

// GetIdentity retrieves the authenticated [*sec.Identity], or nil.
func GetIdentity(ctx context.Context) *sec.Identity {
	if session := GetSession(ctx); session != nil {
		return session.Identity
	}
	return nil
}

// # Tenancy

// WithSchool returns a new context with the resolved school name attached.
func WithSchool(ctx context.Context, school string) context.Context {
	return context.WithValue(ctx, ctxkey.KeySchool, school)
}

// GetSchool retrieves the resolved school name, or an empty string.
func GetSchool(ctx context.Context) string {
	school, _ := ctx.Value(ctxkey.KeySchool).(string)
	return school
}
