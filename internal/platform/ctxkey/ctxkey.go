// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys of the request-scoped values. Only
// ctxutil reads or writes them.
package ctxkey

// key cannot be constructed outside this package, so no other package's
// context values collide with these.
type key uint8

const (
	KeyRequestID key = iota + 1
	KeyLogger
	KeySchool

	// KeySession holds a *ctxutil.Session. A typed nil marks a cleared session.
	KeySession
)
