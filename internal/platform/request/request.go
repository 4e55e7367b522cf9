// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil reads handler inputs from an *http.Request: bounded JSON
bodies, chi URL parameters, query values and the tenant and identity attached
by the middleware chain.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/platform/validate"
)

// maxBodyBytes bounds every decoded JSON body.
const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request: empty body")

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: a 400 from [validate.InvalidJSON] for an empty, oversized, unknown-field
    or malformed body, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if request.Body == nil || request.Body == http.NoBody {
		return validate.InvalidJSON(errEmptyBody)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.InvalidJSON(err)
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a query-string parameter from the request.
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
School returns the tenant resolved for the request.

Returns:
  - string: School name
  - error: apperr.BadRequest if no tenant was resolved
*/
func School(request *http.Request) (string, error) {
	school := ctxutil.GetSchool(request.Context())
	if school == "" {
		return "", apperr.BadRequest("No subdomain")
	}
	return school, nil
}

/*
RequiredIdentity ensures the request is authenticated and returns its identity.

Returns:
  - *sec.Identity: The authenticated user
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {
	identity := ctxutil.GetIdentity(request.Context())
	if identity == nil {
		return nil, apperr.Unauthorized("No session")
	}
	return identity, nil
}
