// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/clubcompass/internal/platform/middleware"
	requestutil "github.com/taibuivan/clubcompass/internal/platform/request"
	"github.com/taibuivan/clubcompass/internal/platform/respond"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/platform/validate"
)

// Handler implements the tag HTTP endpoints.
type Handler struct {
	service    *Service
	authorizer *middleware.Authorizer
}

// NewHandler constructs a new tag [Handler].
func NewHandler(service *Service, authorizer *middleware.Authorizer) *Handler {
	return &Handler{service: service, authorizer: authorizer}
}

// Routes returns a [chi.Router] with public reads and ADMIN-only creation.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTags)
	router.Get("/{slug}", handler.getTag)

	router.With(handler.authorizer.Require(sec.RoleAdmin)).Post("/", handler.createTag)

	return router
}

type createTagRequest struct {
	Name string `json:"name"`
}

// GET /api/v1/tags
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	school, err := requestutil.School(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tags, err := handler.service.ListTags(request.Context(), school)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

// GET /api/v1/tags/{slug}
func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	school, err := requestutil.School(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.GetTag(request.Context(), school, requestutil.ID(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

/*
POST /api/v1/tags (ADMIN).

Response:
  - 201: Tag
  - 409: Tag with the same slug exists in this school
*/
func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var input createTagRequest

	actor, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	school, err := requestutil.School(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := (&validate.Validator{}).
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, NameMaxLength).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.CreateTag(request.Context(), actor, school, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tag)
}
