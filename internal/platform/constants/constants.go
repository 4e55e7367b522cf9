// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds the fixed values shared across layers: server
// timing, rate limits, session parameters and header names.
package constants

import "time"

const (
	AppName    = "clubcompass-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	DefaultReadHeaderTimeout = 2 * time.Second
	DefaultReadTimeout       = 5 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// GlobalRequestTimeout bounds a handler and, through statement_timeout,
	// every query it runs.
	GlobalRequestTimeout = 15 * time.Second

	// DefaultWriteTimeout must exceed GlobalRequestTimeout so the timeout
	// response can still be written.
	DefaultWriteTimeout = GlobalRequestTimeout + 5*time.Second

	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

// Per client IP, token bucket.
const (
	DefaultRateLimitRPS      = 100.0
	DefaultRateLimitBurst    = 150
	RateLimitCleanupInterval = time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Session

const (
	// SessionCookieName is the name of the cookie carrying the signed session id.
	SessionCookieName = "cc.sid"

	// SessionCookiePath scopes the session cookie to the whole API.
	SessionCookiePath = "/"

	// SessionTTL is the fixed lifetime of a session, both in the store and on the cookie.
	SessionTTL = 24 * time.Hour

	// SessionIDLength is the byte length of the random session id before encoding.
	SessionIDLength = 32

	// SessionSameSite is the persisted same-site policy. Tenants live on sibling
	// subdomains, so the cookie must be sent cross-site.
	SessionSameSite = "none"
)

// # HTTP Headers

const (
	HeaderXRequestID = "X-Request-ID"
	HeaderOrigin     = "Origin"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession = "sessions:"
)
