// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/pkg/slug"
	"github.com/taibuivan/clubcompass/pkg/uuid"
)

// Service implements the tag use cases.
type Service struct {
	repo Repository
}

// NewService constructs a new tag [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListTags returns every tag of the school.
func (service *Service) ListTags(context context.Context, school string) ([]*Tag, error) {
	return service.repo.List(context, school)
}

// GetTag returns the school's tag with the given slug.
func (service *Service) GetTag(context context.Context, school, tagSlug string) (*Tag, error) {
	tagSlug = strings.ToLower(tagSlug)
	if !slug.Valid(tagSlug) {
		return nil, apperr.NotFound("Tag")
	}

	tag, err := service.repo.FindBySlug(context, school, tagSlug)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Tag")
		}
		return nil, err
	}
	return tag, nil
}

/*
CreateTag adds a tag to the actor's school.

Returns:
  - *Tag: Persisted tag
  - error: Forbidden (other school), ValidationError (empty slug), Conflict
*/
func (service *Service) CreateTag(context context.Context, actor *sec.Identity, school, name string) (*Tag, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("No session")
	}
	if actor.School != school {
		return nil, apperr.Forbidden("Tag belongs to another school")
	}

	tag := &Tag{
		ID:     uuid.New(),
		School: school,
		Name:   strings.TrimSpace(name),
	}
	tag.Slug = slug.From(tag.Name)
	if tag.Slug == "" {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldName,
			Message: "Must contain at least one letter or digit",
		})
	}

	if err := service.repo.Create(context, tag); err != nil {
		if apperr.HasCode(err, apperr.CodeConflict) {
			return nil, apperr.Conflict("Tag already exists").WithCause(err)
		}
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "tag_created",
		slog.String("slug", tag.Slug),
		slog.String("user_id", actor.ID),
	)
	return tag, nil
}
