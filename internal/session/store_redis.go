// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/clubcompass/internal/platform/constants"
)

// DefaultStoreTimeout bounds a single store operation when no timeout is configured.
const DefaultStoreTimeout = 2 * time.Second

// RedisStore implements [Store] using Redis.
type RedisStore struct {
	client  redis.Cmdable
	timeout time.Duration
}

// NewRedisStore creates a Redis-backed [Store].
//
// Every operation runs under timeout; a call that does not complete in time
// fails with [ErrStoreUnavailable] instead of hanging the request.
func NewRedisStore(client redis.Cmdable, timeout time.Duration) *RedisStore {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &RedisStore{client: client, timeout: timeout}
}

// Key returns the namespaced Redis key for a session id.
func Key(id string) string {
	return constants.RedisPrefixSession + id
}

/*
Put stores a record with its TTL.

Parameters:
  - ctx: context.Context
  - id: string
  - record: Record
  - ttl: time.Duration

Returns:
  - error: ErrStoreUnavailable on connectivity failures
*/
func (store *RedisStore) Put(ctx context.Context, id string, record Record, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("session: ttl must be positive, got %s", ttl)
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("session: failed to marshal record: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, store.timeout)
	defer cancel()

	if err := store.client.Set(ctx, Key(id), payload, ttl).Err(); err != nil {
		return unavailable("put", err)
	}

	return nil
}

/*
Get retrieves the record for a session id.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - *Record: The stored record
  - error: ErrSessionNotFound, ErrStoreUnavailable, or a decoding error
*/
func (store *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, store.timeout)
	defer cancel()

	payload, err := store.client.Get(ctx, Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, unavailable("get", err)
	}

	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}

	return &record, nil
}

/*
Delete removes a session record. DEL on a missing key is a no-op in Redis,
which makes the operation idempotent.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - error: ErrStoreUnavailable on connectivity failures
*/
func (store *RedisStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, store.timeout)
	defer cancel()

	if err := store.client.Del(ctx, Key(id)).Err(); err != nil {
		return unavailable("delete", err)
	}

	return nil
}

// unavailable classifies a Redis failure as [ErrStoreUnavailable] while
// keeping the driver error in the chain for logging.
func unavailable(operation string, err error) error {
	return fmt.Errorf("%w: redis %s: %w", ErrStoreUnavailable, operation, err)
}
