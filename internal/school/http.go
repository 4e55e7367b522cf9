// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package school

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/respond"
)

// Handler serves the tenant record of the current request.
type Handler struct {
	repository Repository
}

// NewHandler constructs a new [Handler].
func NewHandler(repository Repository) *Handler {
	return &Handler{repository: repository}
}

// Routes returns a [chi.Router] for the school endpoints.
//
// # Endpoints
//   - GET / : The school resolved from the request subdomain.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.current)
	return router
}

/*
current returns the school the request was scoped to.

GET /api/v1/school

Response:
  - 200: School
  - 400: Invalid subdomain (from the tenant middleware)
*/
func (handler *Handler) current(writer http.ResponseWriter, request *http.Request) {
	name := ctxutil.GetSchool(request.Context())
	if name == "" {
		respond.Error(writer, request, apperr.BadRequest("No subdomain"))
		return
	}

	school, err := handler.repository.FindByName(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, school)
}
