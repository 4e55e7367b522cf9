// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package club

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/pkg/slug"
	"github.com/taibuivan/clubcompass/pkg/uuid"
)

// Service implements the club directory use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Discovery

// List returns one page of the school's clubs and the total count.
func (service *Service) List(context context.Context, school string, filter Filter, limit, offset int) ([]*Club, int, error) {
	filter.Tag = strings.ToLower(strings.TrimSpace(filter.Tag))
	return service.repository.List(context, school, filter, limit, offset)
}

// Get returns the club of school matching key.
func (service *Service) Get(context context.Context, school string, key Key) (*Club, error) {
	club, err := service.repository.Find(context, school, key)
	if err != nil {
		return nil, notFound(err)
	}
	return club, nil
}

// # Management

// CreateInput carries the fields of a new club.
type CreateInput struct {
	Name        string
	Description string
	Tags        []string
}

/*
Create adds a club to the actor's school.

Parameters:
  - context: context.Context
  - actor: *sec.Identity (at least MANAGER, enforced by the router)
  - school: string (tenant of the request)
  - input: CreateInput

Returns:
  - *Club: Persisted club
  - error: Forbidden (other school), ValidationError (empty slug, unknown tag),
    Conflict (slug taken)
*/
func (service *Service) Create(context context.Context, actor *sec.Identity, school string, input CreateInput) (*Club, error) {
	if err := sameSchool(actor, school); err != nil {
		return nil, err
	}

	club := &Club{
		ID:          uuid.New(),
		School:      school,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		CreatedBy:   actor.ID,
		Tags:        normalizeTags(input.Tags),
	}

	club.Slug = slug.From(club.Name)
	if club.Slug == "" {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldName,
			Message: "Must contain at least one letter or digit",
		})
	}

	if err := service.repository.Create(context, club); err != nil {
		return nil, mutationError(err)
	}
	return club, nil
}

// UpdateInput carries a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Tags        []string
	SetTags     bool
}

// Update applies input to the club with the given id.
func (service *Service) Update(context context.Context, actor *sec.Identity, school, id string, input UpdateInput) (*Club, error) {
	if err := sameSchool(actor, school); err != nil {
		return nil, err
	}

	club, err := service.repository.Find(context, school, Key{Kind: KeyID, Value: id})
	if err != nil {
		return nil, notFound(err)
	}

	if input.Name != nil {
		club.Name = strings.TrimSpace(*input.Name)
		club.Slug = slug.From(club.Name)
		if club.Slug == "" {
			return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldName,
				Message: "Must contain at least one letter or digit",
			})
		}
	}
	if input.Description != nil {
		club.Description = strings.TrimSpace(*input.Description)
	}
	if input.SetTags {
		club.Tags = normalizeTags(input.Tags)
	}

	if err := service.repository.Update(context, club); err != nil {
		return nil, mutationError(err)
	}
	return club, nil
}

// Delete removes the club with the given id from the actor's school.
func (service *Service) Delete(context context.Context, actor *sec.Identity, school, id string) error {
	if err := sameSchool(actor, school); err != nil {
		return err
	}

	if err := service.repository.Delete(context, school, id); err != nil {
		return notFound(err)
	}
	return nil
}

// # Helpers

// sameSchool rejects actors whose session was issued by another school.
func sameSchool(actor *sec.Identity, school string) error {
	if actor == nil {
		return apperr.Unauthorized("No session")
	}
	if actor.School != school {
		return apperr.Forbidden("Club belongs to another school")
	}
	return nil
}

// normalizeTags lowercases, trims, deduplicates and sorts tag slugs.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	sort.Strings(normalized)
	return normalized
}

func notFound(err error) error {
	if dberr.IsNotFound(err) {
		return apperr.NotFound("Club")
	}
	return err
}

func mutationError(err error) error {
	if errors.Is(err, ErrUnknownTag) {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldTags,
			Message: "Contains a tag unknown to this school",
		})
	}

	if apperr.HasCode(err, apperr.CodeConflict) {
		return apperr.Conflict("A club with this name already exists").WithCause(err)
	}

	return notFound(err)
}
