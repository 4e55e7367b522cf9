// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package club

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/middleware"
	requestutil "github.com/taibuivan/clubcompass/internal/platform/request"
	"github.com/taibuivan/clubcompass/internal/platform/respond"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/platform/validate"
	"github.com/taibuivan/clubcompass/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer of the club directory.
type Handler struct {
	service    *Service
	authorizer *middleware.Authorizer
}

// NewHandler constructs a new club [Handler].
func NewHandler(service *Service, authorizer *middleware.Authorizer) *Handler {
	return &Handler{service: service, authorizer: authorizer}
}

// Routes returns a [chi.Router] configured with the club endpoints.
//
// # Routing Strategy
//
//   - Discovery (Public): listing and lookup.
//   - Management: MANAGER creates and edits, ADMIN deletes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listClubs)
	router.Get("/{value}", handler.getClub)

	// ## Directory Management
	router.Group(func(manager chi.Router) {
		manager.Use(handler.authorizer.Require(sec.RoleManager))
		manager.Post("/", handler.createClub)
		manager.Patch("/{id}", handler.updateClub)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(handler.authorizer.Require(sec.RoleAdmin))
		admin.Delete("/{id}", handler.deleteClub)
	})

	return router
}

// # Request Payloads

type createClubRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type updateClubRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
}

// # Club Endpoints

/*
GET /api/v1/clubs.

Request:
  - tag: string (tag slug)
  - limit: int
  - page: int

Response:
  - 200: []Club, paginated
*/
func (handler *Handler) listClubs(writer http.ResponseWriter, request *http.Request) {
	school, err := requestutil.School(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	filter := Filter{Tag: requestutil.Query(request, "tag")}

	clubs, total, err := handler.service.List(request.Context(), school, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, clubs, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/clubs/{value}?by=id|slug|name.

Response:
  - 200: Club
  - 400: Unknown "by" or malformed id
  - 404: No such club in this school
*/
func (handler *Handler) getClub(writer http.ResponseWriter, request *http.Request) {
	school, err := requestutil.School(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	key, err := ParseKey(requestutil.Query(request, FieldBy), requestutil.ID(request, "value"))
	if err != nil {
		message := "Invalid club identifier"
		if errors.Is(err, ErrUnknownKeyKind) {
			message = "Must be one of: id, slug, name"
		}
		respond.Error(writer, request, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldBy,
			Message: message,
		}))
		return
	}

	club, err := handler.service.Get(request.Context(), school, key)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, club)
}

/*
POST /api/v1/clubs (MANAGER).

Request:
  - Body: createClubRequest (Name, Description, Tags)

Response:
  - 201: Club
  - 400: Validation failure or unknown tag
  - 409: A club with the same slug exists
*/
func (handler *Handler) createClub(writer http.ResponseWriter, request *http.Request) {
	var input createClubRequest

	actor, school, ok := handler.scope(writer, request)
	if !ok {
		return
	}

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.Name = strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, NameMaxLength).
		MaxLen(FieldDescription, input.Description, DescriptionMaxLength).
		Custom(FieldTags, len(input.Tags) > MaxTagsPerClub, "Too many tags")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	club, err := handler.service.Create(request.Context(), actor, school, CreateInput{
		Name:        input.Name,
		Description: input.Description,
		Tags:        input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, club)
}

/*
PATCH /api/v1/clubs/{id} (MANAGER).

Request:
  - Body: updateClubRequest; omitted fields are unchanged, "tags" replaces the set

Response:
  - 200: Club
  - 404: No such club in this school
*/
func (handler *Handler) updateClub(writer http.ResponseWriter, request *http.Request) {
	var input updateClubRequest

	actor, school, ok := handler.scope(writer, request)
	if !ok {
		return
	}

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.UUID("id", requestutil.ID(request, "id"))
	if input.Name != nil {
		validator.Required(FieldName, strings.TrimSpace(*input.Name)).
			MaxLen(FieldName, *input.Name, NameMaxLength)
	}
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, DescriptionMaxLength)
	}
	if input.Tags != nil {
		validator.Custom(FieldTags, len(*input.Tags) > MaxTagsPerClub, "Too many tags")
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	update := UpdateInput{Name: input.Name, Description: input.Description}
	if input.Tags != nil {
		update.Tags = *input.Tags
		update.SetTags = true
	}

	club, err := handler.service.Update(request.Context(), actor, school, requestutil.ID(request, "id"), update)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, club)
}

/*
DELETE /api/v1/clubs/{id} (ADMIN).

Response:
  - 204: Deleted
  - 404: No such club in this school
*/
func (handler *Handler) deleteClub(writer http.ResponseWriter, request *http.Request) {
	actor, school, ok := handler.scope(writer, request)
	if !ok {
		return
	}

	id := requestutil.ID(request, "id")
	if err := (&validate.Validator{}).UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), actor, school, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// scope returns the authenticated actor and tenant, writing the error response if either is missing.
func (handler *Handler) scope(writer http.ResponseWriter, request *http.Request) (*sec.Identity, string, bool) {
	actor, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return nil, "", false
	}

	school, err := requestutil.School(request)
	if err != nil {
		respond.Error(writer, request, err)
		return nil, "", false
	}
	return actor, school, true
}
