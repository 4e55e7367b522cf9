// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/clubcompass/internal/platform/constants"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
)

// # Contracts

// IdentityFinder resolves the user a session belongs to.
//
// Implementations return an error matching [dberr.ErrNotFound] when the user
// does not exist; any other error is treated as an infrastructure failure.
type IdentityFinder interface {
	FindIdentity(ctx context.Context, userID string) (*sec.Identity, error)
}

// Manager owns the session lifecycle. It composes the cookie [sec.Signer],
// the session [Store], and the user lookup.
//
// # Concurrency
//
// Manager holds no mutable state and is safe for concurrent use. The only
// shared resource is the external store, whose single-key operations are
// atomic.
type Manager struct {
	store  Store
	signer *sec.Signer
	users  IdentityFinder
	ttl    time.Duration
	now    func() time.Time
}

// NewManager constructs a [Manager] issuing sessions of [constants.SessionTTL].
func NewManager(store Store, signer *sec.Signer, users IdentityFinder) *Manager {
	return &Manager{
		store:  store,
		signer: signer,
		users:  users,
		ttl:    constants.SessionTTL,
		now:    time.Now,
	}
}

// WithClock replaces the time source. It is intended for tests.
func (manager *Manager) WithClock(now func() time.Time) *Manager {
	manager.now = now
	return manager
}

// # Lifecycle

/*
Generate creates a new session for userID and returns the signed cookie value.

Description: Draws a fresh random id, persists {userID, cookie metadata} under
it with a 24h TTL, and signs the id. The raw id never leaves this method.

Parameters:
  - ctx: context.Context
  - userID: string

Returns:
  - *Issued: Signed cookie value and cookie metadata
  - error: ErrInvalidArgument, ErrStoreUnavailable
*/
func (manager *Manager) Generate(ctx context.Context, userID string) (*Issued, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is empty", ErrInvalidArgument)
	}

	sessionID, err := sec.GenerateSecureToken(constants.SessionIDLength)
	if err != nil {
		return nil, fmt.Errorf("session: failed to generate id: %w", err)
	}

	metadata := CookieMetadata{
		Expires:  manager.now().Add(manager.ttl).UTC(),
		HTTPOnly: true,
		Secure:   true,
		SameSite: constants.SessionSameSite,
	}

	record := Record{UserID: userID, Cookie: metadata}
	if err := manager.store.Put(ctx, sessionID, record, manager.ttl); err != nil {
		return nil, err
	}

	return &Issued{
		Value:  manager.signer.Sign(sessionID),
		Cookie: metadata,
	}, nil
}

/*
Get resolves a raw session id to the identity of its user.

Description: A missing, expired, or orphaned session is reported as
ErrMalformedSession wrapping the specific cause. An expired record is
destroyed before returning. Store failures are returned unchanged.

Parameters:
  - ctx: context.Context
  - sessionID: string

Returns:
  - *sec.Identity: Non-sensitive projection of the linked user
  - error: ErrMalformedSession (wrapping ErrSessionNotFound, ErrSessionExpired,
    ErrUserNotFound or ErrCorruptRecord), ErrStoreUnavailable
*/
func (manager *Manager) Get(ctx context.Context, sessionID string) (*sec.Identity, error) {
	record, err := manager.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrCorruptRecord) {
			return nil, malformed(err)
		}
		return nil, err
	}

	if record.UserID == "" {
		return nil, malformed(ErrCorruptRecord)
	}

	if record.Cookie.Expired(manager.now()) {
		if err := manager.Destroy(ctx, sessionID); err != nil {
			return nil, err
		}
		return nil, malformed(ErrSessionExpired)
	}

	identity, err := manager.users.FindIdentity(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, malformed(ErrUserNotFound)
		}
		return nil, fmt.Errorf("session: user lookup failed: %w", err)
	}
	if identity == nil {
		return nil, malformed(ErrUserNotFound)
	}

	return identity, nil
}

/*
Destroy deletes a session. Destroying an absent session succeeds.

Parameters:
  - ctx: context.Context
  - sessionID: string

Returns:
  - error: ErrDestroyFailed (wrapping ErrStoreUnavailable) on store failure
*/
func (manager *Manager) Destroy(ctx context.Context, sessionID string) error {
	if err := manager.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %w", ErrDestroyFailed, err)
	}
	return nil
}

/*
Authenticate verifies a signed cookie value and resolves its session.

Parameters:
  - ctx: context.Context
  - signed: string (raw cookie value)

Returns:
  - string: The verified session id
  - *sec.Identity: The session's user
  - error: ErrMalformedSession (wrapping sec.ErrInvalidSignature or a Get cause),
    ErrStoreUnavailable
*/
func (manager *Manager) Authenticate(ctx context.Context, signed string) (string, *sec.Identity, error) {
	sessionID, err := manager.Unsign(signed)
	if err != nil {
		return "", nil, err
	}

	identity, err := manager.Get(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	return sessionID, identity, nil
}

// Unsign verifies a cookie value and returns the embedded session id.
func (manager *Manager) Unsign(signed string) (string, error) {
	sessionID, err := manager.signer.Unsign(signed)
	if err != nil {
		return "", malformed(err)
	}
	return sessionID, nil
}

// malformed collapses an integrity failure into [ErrMalformedSession] while
// keeping cause reachable for logging.
func malformed(cause error) error {
	return fmt.Errorf("%w: %w", ErrMalformedSession, cause)
}
