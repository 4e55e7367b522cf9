// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/clubcompass/internal/platform/middleware"
	requestutil "github.com/taibuivan/clubcompass/internal/platform/request"
	"github.com/taibuivan/clubcompass/internal/platform/respond"
	"github.com/taibuivan/clubcompass/internal/platform/validate"
)

// Handler implements the HTTP layer for profile management.
type Handler struct {
	accountService *Service
	authorizer     *middleware.Authorizer
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service, authorizer *middleware.Authorizer) *Handler {
	return &Handler{accountService: service, authorizer: authorizer}
}

// Routes returns a [chi.Router] with the profile endpoints. Every route requires MEMBER.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(handler.authorizer.RequireMember())

	router.Get("/me", handler.getMe)
	router.Patch("/me", handler.updateMe)
	router.Get("/users/{id}", handler.getUserProfile)

	return router
}

// # User Profile Endpoints

/*
GET /api/v1/account/me.

Response:
  - 200: User: Private profile of the signed-in user
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	actor, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), actor)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateMeRequest defines the expected JSON payload for profile updates.
type updateMeRequest struct {
	CCID   *string `json:"ccid"`
	Avatar *string `json:"avatar"`
}

/*
PATCH /api/v1/account/me.

Request:
  - body: updateMeRequest (Partial JSON)

Response:
  - 200: User: The updated profile
  - 400: Invalid input data
*/
func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
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

	var input updateMeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.CCID != nil {
		v.MaxLen(FieldCCID, *input.CCID, CCIDMaxLength)
	}
	if input.Avatar != nil && *input.Avatar != "" {
		v.MaxLen(FieldAvatar, *input.Avatar, AvatarMaxLength).URL(FieldAvatar, *input.Avatar)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), actor, school, UpdateProfileInput{
		CCID:   input.CCID,
		Avatar: input.Avatar,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
GET /api/v1/account/users/{id}.

Response:
  - 200: PublicProfile
  - 404: No such user in this school
*/
func (handler *Handler) getUserProfile(writer http.ResponseWriter, request *http.Request) {
	school, err := requestutil.School(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	if err := (&validate.Validator{}).UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetPublicProfile(request.Context(), school, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
