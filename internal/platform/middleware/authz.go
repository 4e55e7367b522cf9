// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/metrics"
	"github.com/taibuivan/clubcompass/internal/platform/respond"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/session"
)

// Client-facing rejection messages. Integrity failures share one message so
// the response never reveals which check failed.
const (
	msgNoSession        = "No session"
	msgMalformedSession = "Malformed session"
	msgInsufficientRole = "Insufficient role"
)

// SessionAuthenticator resolves a signed cookie value into a session.
//
// Implemented by [*session.Manager]. Integrity failures must match
// [session.ErrMalformedSession]; anything else is treated as infrastructure.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, signed string) (string, *sec.Identity, error)
}

// Authorizer gates routes on a valid session and a minimum role.
type Authorizer struct {
	sessions     SessionAuthenticator
	metrics      *metrics.Recorder
	cookieDomain string
}

// NewAuthorizer builds an [Authorizer]. recorder may be nil.
func NewAuthorizer(sessions SessionAuthenticator, recorder *metrics.Recorder) *Authorizer {
	return &Authorizer{sessions: sessions, metrics: recorder}
}

// WithCookieDomain makes malformed-session rejections also expire the cookie
// issued for domain.
func (authorizer *Authorizer) WithCookieDomain(domain string) *Authorizer {
	authorizer.cookieDomain = domain
	return authorizer
}

// RequireMember is [Authorizer.Require] with the lowest role.
func (authorizer *Authorizer) RequireMember() func(http.Handler) http.Handler {
	return authorizer.Require(sec.RoleMember)
}

/*
Require blocks requests without a valid session whose role is at least role.

# Flow
 1. Clear any identity carried on the incoming context.
 2. Read the cc.sid cookie; absent → 401 "No session".
 3. Verify the signature and load the session; integrity failure → 401 "Malformed session"
    and, with a cookie domain configured, an expired Set-Cookie.
 4. Compare roles with [sec.Sufficient]; insufficient → 401 "Insufficient role".
 5. Attach the session to the context and call the next handler.

Store or user-lookup outages are answered with 500. If the client went away
while the session was loading, the request is abandoned without a response.
*/
func (authorizer *Authorizer) Require(role sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Fresh state
			ctx := ctxutil.ClearSession(request.Context())
			request = request.WithContext(ctx)
			logger := ctxutil.GetLogger(ctx)

			// 2. Cookie presence
			signed := session.ReadCookie(request)
			if signed == "" {
				authorizer.metrics.AuthDecision(metrics.AuthNoSession)
				respond.Error(writer, request, apperr.Unauthorized(msgNoSession))
				return
			}

			// 3. Signature, record, expiry and user
			sessionID, identity, err := authorizer.sessions.Authenticate(ctx, signed)
			if err != nil {
				switch {
				case ctx.Err() != nil:
					authorizer.metrics.AuthDecision(metrics.AuthAbandoned)
					logger.DebugContext(ctx, "auth_abandoned", slog.Any("error", err))
				case errors.Is(err, session.ErrMalformedSession):
					authorizer.metrics.AuthDecision(metrics.AuthMalformed)
					logger.WarnContext(ctx, "auth_malformed_session", slog.Any("cause", err))
					if authorizer.cookieDomain != "" {
						session.ClearCookie(writer, authorizer.cookieDomain)
					}
					respond.Error(writer, request, apperr.Unauthorized(msgMalformedSession).WithCause(err))
				default:
					authorizer.metrics.AuthDecision(metrics.AuthError)
					respond.Error(writer, request, apperr.Internal(err))
				}
				return
			}

			// 4. Role hierarchy
			if !sec.Sufficient(identity.Role, role) {
				authorizer.metrics.AuthDecision(metrics.AuthInsufficient)
				logger.InfoContext(ctx, "auth_insufficient_role",
					slog.String("user_id", identity.ID),
					slog.String("role", string(identity.Role)),
					slog.String("required", string(role)),
				)
				respond.Error(writer, request, apperr.Unauthorized(msgInsufficientRole))
				return
			}

			// 5. Attach
			authorizer.metrics.AuthDecision(metrics.AuthAuthorized)
			noteIdentity(ctx, identity.ID, string(identity.Role))
			ctx = ctxutil.WithSession(ctx, &ctxutil.Session{ID: sessionID, Identity: identity})

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
