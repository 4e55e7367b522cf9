// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Session verifies that the authenticated session can be stored and cleared.
*/
func TestContext_Session(t *testing.T) {
	ctx := context.Background()
	session := &ctxutil.Session{
		ID:       "sid-1",
		Identity: &sec.Identity{ID: "user-123", Role: sec.RoleAdmin},
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetSession(ctx))
	assert.Nil(t, ctxutil.GetIdentity(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithSession(ctx, session)
	identity := ctxutil.GetIdentity(ctx)

	assert.NotNil(t, identity)
	assert.Equal(t, "user-123", identity.ID)
	assert.Equal(t, sec.RoleAdmin, identity.Role)
	assert.Equal(t, "sid-1", ctxutil.GetSession(ctx).ID)

	// 3. Clearing shadows the parent value
	cleared := ctxutil.ClearSession(ctx)
	assert.Nil(t, ctxutil.GetSession(cleared))
	assert.Nil(t, ctxutil.GetIdentity(cleared))
}

/*
TestContext_School verifies the tenant name round-trips through context.
*/
func TestContext_School(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetSchool(ctx))

	ctx = ctxutil.WithSchool(ctx, "lincoln")
	assert.Equal(t, "lincoln", ctxutil.GetSchool(ctx))
}
