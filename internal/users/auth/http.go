// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/middleware"
	requestutil "github.com/taibuivan/clubcompass/internal/platform/request"
	"github.com/taibuivan/clubcompass/internal/platform/respond"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/platform/validate"
	"github.com/taibuivan/clubcompass/internal/session"
)

// # Definitions & Constructors

// Handler implements the account and session HTTP endpoints.
type Handler struct {
	authService  *Service
	authorizer   *middleware.Authorizer
	cookieDomain string
}

// NewHandler constructs a new [Handler]. cookieDomain is the parent domain
// shared by every school subdomain.
func NewHandler(service *Service, authorizer *middleware.Authorizer, cookieDomain string) *Handler {
	return &Handler{authService: service, authorizer: authorizer, cookieDomain: cookieDomain}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register          : Creates a MEMBER account and logs it in.
//   - POST /login             : Authenticates and sets the session cookie.
//   - POST /logout            : Destroys the current session (MEMBER).
//   - GET  /me                : Returns the current identity (MEMBER).
//   - PUT  /users/{id}/role   : Changes an account's role (ADMIN).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(handler.authorizer.RequireMember())
		r.Post("/logout", handler.logout)
		r.Get("/me", handler.me)
	})

	router.Group(func(r chi.Router) {
		r.Use(handler.authorizer.Require(sec.RoleAdmin))
		r.Put("/users/{id}/role", handler.changeRole)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	CCID     string `json:"ccid"`
	Avatar   string `json:"avatar"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

/*
register handles the creation of a new user account.

POST /api/v1/auth/register

Request:
  - Body: registerRequest (Username, Email, Password, CCID, Avatar)

Response:
  - 201: Identity of the new account, with the cc.sid cookie set
  - 400: Bad input or validation failure
  - 409: Username or Email already exists in this school
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, UsernameMinLength).
		MaxLen(FieldUsername, input.Username, UsernameMaxLength).
		Slug(FieldUsername, input.Username).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, PasswordMinLength).
		Custom(FieldPassword, len(input.Password) > PasswordMaxLength, "Maximum 72 bytes")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, issued, err := handler.authService.Register(request.Context(), RegisterInput{
		School:   ctxutil.GetSchool(request.Context()),
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		CCID:     input.CCID,
		Avatar:   input.Avatar,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session.SetCookie(writer, issued, handler.cookieDomain)
	respond.Created(writer, user.Identity())
}

/*
login authenticates a user and establishes a session.

POST /api/v1/auth/login

Request:
  - Body: loginRequest (Login, Password)

Response:
  - 200: Identity, with the cc.sid cookie set
  - 401: Invalid login credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldLogin, input.Login)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, issued, err := handler.authService.Login(request.Context(), LoginInput{
		School:   ctxutil.GetSchool(request.Context()),
		Login:    strings.TrimSpace(input.Login),
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session.SetCookie(writer, issued, handler.cookieDomain)
	respond.OK(writer, user.Identity())
}

/*
logout terminates the current session.

POST /api/v1/auth/logout

Response:
  - 204: Session destroyed and cookie cleared
  - 500: Session store unavailable
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	current := ctxutil.GetSession(request.Context())
	if current == nil {
		respond.Error(writer, request, apperr.Unauthorized("No session"))
		return
	}

	if err := handler.authService.Logout(request.Context(), current.ID); err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	session.ClearCookie(writer, handler.cookieDomain)
	respond.NoContent(writer)
}

/*
me returns the identity attached by the authorization middleware.

GET /api/v1/auth/me
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, identity)
}

/*
changeRole assigns a role to another account of the same school.

PUT /api/v1/auth/users/{id}/role

Request:
  - Body: changeRoleRequest (Role)

Response:
  - 200: Updated identity
  - 400: Unknown role
  - 403: Self-demotion or account of another school
  - 404: User not found
*/
func (handler *Handler) changeRole(writer http.ResponseWriter, request *http.Request) {
	var input changeRoleRequest

	actor, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID := requestutil.ID(request, "id")
	if err := (&validate.Validator{}).UUID("id", userID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.ChangeRole(request.Context(),
		actor,
		ctxutil.GetSchool(request.Context()),
		userID,
		input.Role,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user.Identity())
}
