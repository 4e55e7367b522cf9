// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package club_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/clubcompass/internal/core/club"
	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
)

// memoryClubs is an in-memory club.Repository. knownTags lists the tag slugs
// that exist per school.
type memoryClubs struct {
	mu        sync.Mutex
	clubs     map[string]*club.Club
	knownTags map[string][]string
}

func newMemoryClubs() *memoryClubs {
	return &memoryClubs{
		clubs:     make(map[string]*club.Club),
		knownTags: map[string][]string{"lincoln": {"chess", "games", "stem"}},
	}
}

func (repository *memoryClubs) Find(_ context.Context, school string, key club.Key) (*club.Club, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, stored := range repository.clubs {
		if stored.School != school {
			continue
		}
		match := false
		switch key.Kind {
		case club.KeyID:
			match = stored.ID == key.Value
		case club.KeySlug:
			match = stored.Slug == key.Value
		case club.KeyName:
			match = strings.EqualFold(stored.Name, key.Value)
		}
		if match {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryClubs) List(_ context.Context, school string, filter club.Filter, limit, offset int) ([]*club.Club, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	matched := make([]*club.Club, 0)
	for _, stored := range repository.clubs {
		if stored.School != school {
			continue
		}
		if filter.Tag != "" && !contains(stored.Tags, filter.Tag) {
			continue
		}
		copied := *stored
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := len(matched)
	if offset >= total {
		return []*club.Club{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (repository *memoryClubs) Create(_ context.Context, created *club.Club) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, stored := range repository.clubs {
		if stored.School == created.School && stored.Slug == created.Slug {
			return apperr.Conflict("Resource already exists")
		}
	}
	if err := repository.checkTags(created); err != nil {
		return err
	}

	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	copied := *created
	repository.clubs[created.ID] = &copied
	return nil
}

func (repository *memoryClubs) Update(_ context.Context, updated *club.Club) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.clubs[updated.ID]
	if !ok || stored.School != updated.School {
		return dberr.ErrNotFound
	}
	if err := repository.checkTags(updated); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	copied := *updated
	repository.clubs[updated.ID] = &copied
	return nil
}

func (repository *memoryClubs) Delete(_ context.Context, school, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.clubs[id]
	if !ok || stored.School != school {
		return dberr.ErrNotFound
	}
	delete(repository.clubs, id)
	return nil
}

func (repository *memoryClubs) checkTags(candidate *club.Club) error {
	for _, tag := range candidate.Tags {
		if !contains(repository.knownTags[candidate.School], tag) {
			return club.ErrUnknownTag
		}
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
