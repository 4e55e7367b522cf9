// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session implements server-side session tracking for ClubCompass.

A session is a record in the key-value store addressed by an opaque random id.
The client only ever sees that id followed by an HMAC signature, inside the
"cc.sid" cookie.

Architecture:

  - Store: Dumb persistence of [Record] values keyed by session id (Redis).
  - Manager: Owns the lifecycle (generate, get, destroy) and all validity rules.
  - Cookie: Helpers that write or clear the session cookie on a response.

A record's presence in the store is the only proof that a session is valid.
*/
package session

import (
	"errors"
	"time"
)

// # Domain Types

// CookieMetadata mirrors the attributes of the cookie issued with a session.
type CookieMetadata struct {
	Expires  time.Time `json:"expires"`
	HTTPOnly bool      `json:"httpOnly"`
	Secure   bool      `json:"secure"`
	SameSite string    `json:"sameSite"`
}

// Expired reports whether the cookie lifetime has elapsed at now.
func (metadata CookieMetadata) Expired(now time.Time) bool {
	return !now.Before(metadata.Expires)
}

// Record is the persisted state of one authenticated login.
type Record struct {
	UserID string         `json:"userId"`
	Cookie CookieMetadata `json:"cookie"`
}

// Issued is the result of creating a session: the signed cookie value handed
// to the client and the metadata the cookie must be written with.
type Issued struct {
	Value  string
	Cookie CookieMetadata
}

// # Errors

var (
	// ErrInvalidArgument is returned when a session is requested for an empty user id.
	ErrInvalidArgument = errors.New("session: invalid argument")

	// ErrSessionNotFound is returned when no record exists for a session id.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrSessionExpired is returned when a record exists but its cookie has expired.
	ErrSessionExpired = errors.New("session: expired")

	// ErrCorruptRecord is returned when a stored record cannot be decoded.
	ErrCorruptRecord = errors.New("session: corrupt record")

	// ErrUserNotFound is returned when a session points at a user that no longer exists.
	ErrUserNotFound = errors.New("session: linked user not found")

	// ErrMalformedSession is the single class reported to clients for every
	// integrity failure. Specific causes stay reachable through errors.Is.
	ErrMalformedSession = errors.New("session: malformed session")

	// ErrStoreUnavailable is returned when the session store cannot be reached
	// or does not answer within its timeout.
	ErrStoreUnavailable = errors.New("session: store unavailable")

	// ErrDestroyFailed is returned when a session could not be deleted.
	ErrDestroyFailed = errors.New("session: destroy failed")
)
