// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"time"
)

// Store defines how session records are persisted.
//
// Implementations hold no business logic: expiry rules live in [Manager].
// Connectivity failures must be reported as [ErrStoreUnavailable].
type Store interface {
	// Put stores record under id for ttl, overwriting any existing entry.
	Put(ctx context.Context, id string, record Record, ttl time.Duration) error

	// Get returns the record for id, or [ErrSessionNotFound] when absent.
	Get(ctx context.Context, id string) (*Record, error)

	// Delete removes the record for id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
