// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package school_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/school"
)

// countingRepository is an in-memory Repository that counts lookups.
type countingRepository struct {
	mu      sync.Mutex
	schools map[string]*school.School
	lookups int
}

func newCountingRepository(names ...string) *countingRepository {
	repository := &countingRepository{schools: make(map[string]*school.School)}
	for _, name := range names {
		repository.schools[name] = &school.School{Name: name, DisplayName: name + " High"}
	}
	return repository
}

func (repository *countingRepository) FindByName(_ context.Context, name string) (*school.School, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lookups++
	found, ok := repository.schools[name]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return found, nil
}

func (repository *countingRepository) add(name string) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.schools[name] = &school.School{Name: name}
}

/*
TestCachedRepository_Hit serves repeated lookups from memory.
*/
func TestCachedRepository_Hit(t *testing.T) {
	backing := newCountingRepository("lincoln")
	cached := school.NewCachedRepository(backing, 8, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		found, err := cached.FindByName(ctx, "lincoln")
		require.NoError(t, err)
		assert.Equal(t, "lincoln", found.Name)
	}

	assert.Equal(t, 1, backing.lookups)
}

/*
TestCachedRepository_MissNotCached lets a school registered after a miss resolve immediately.
*/
func TestCachedRepository_MissNotCached(t *testing.T) {
	backing := newCountingRepository()
	cached := school.NewCachedRepository(backing, 8, time.Minute)
	ctx := context.Background()

	_, err := cached.FindByName(ctx, "roosevelt")
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	backing.add("roosevelt")

	found, err := cached.FindByName(ctx, "roosevelt")
	require.NoError(t, err)
	assert.Equal(t, "roosevelt", found.Name)
	assert.Equal(t, 2, backing.lookups)
}

/*
TestCachedRepository_Expiry re-reads an entry once its ttl has passed.
*/
func TestCachedRepository_Expiry(t *testing.T) {
	backing := newCountingRepository("lincoln")
	cached := school.NewCachedRepository(backing, 8, 20*time.Millisecond)
	ctx := context.Background()

	_, err := cached.FindByName(ctx, "lincoln")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := cached.FindByName(ctx, "lincoln")
		return err == nil && backing.lookups >= 2
	}, time.Second, 10*time.Millisecond)
}

