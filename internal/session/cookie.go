// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/clubcompass/internal/platform/constants"
)

// # Cookie Transport

// SetCookie issues the session cookie to the client. domain is the parent
// domain shared by every school subdomain.
func SetCookie(writer http.ResponseWriter, issued *Issued, domain string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    issued.Value,
		Path:     constants.SessionCookiePath,
		Domain:   domain,
		Expires:  issued.Cookie.Expires,
		HttpOnly: issued.Cookie.HTTPOnly,
		Secure:   issued.Cookie.Secure,
		SameSite: sameSiteMode(issued.Cookie.SameSite),
	})
}

// ClearCookie expires the session cookie immediately.
func ClearCookie(writer http.ResponseWriter, domain string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		Domain:   domain,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ReadCookie returns the raw session cookie value, or "" when absent.
func ReadCookie(request *http.Request) string {
	cookie, err := request.Cookie(constants.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func sameSiteMode(policy string) http.SameSite {
	switch strings.ToLower(policy) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}
