// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package school

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedRepository fronts a [Repository] with a bounded, expiring in-memory
// cache of successful name lookups.
//
// Only hits are cached. A school registered after a miss becomes visible on the
// next request, while a removed school stays visible for at most ttl.
type CachedRepository struct {
	next  Repository
	cache *expirable.LRU[string, *School]
}

// NewCachedRepository wraps next with a cache holding up to size entries for ttl each.
func NewCachedRepository(next Repository, size int, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		next:  next,
		cache: expirable.NewLRU[string, *School](size, nil, ttl),
	}
}

// FindByName serves from the cache when possible, otherwise delegates and remembers the hit.
func (repository *CachedRepository) FindByName(context context.Context, name string) (*School, error) {
	if school, ok := repository.cache.Get(name); ok {
		return school, nil
	}

	school, err := repository.next.FindByName(context, name)
	if err != nil {
		return nil, err
	}

	repository.cache.Add(name, school)
	return school, nil
}

