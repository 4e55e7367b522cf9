// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/session"
)

/*
TestSetCookie writes every attribute the session cookie requires.
*/
func TestSetCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	expires := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	session.SetCookie(recorder, &session.Issued{
		Value:  "sid.signature",
		Cookie: session.CookieMetadata{Expires: expires, HTTPOnly: true, Secure: true, SameSite: "none"},
	}, "clubcompass.app")

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, "cc.sid", cookie.Name)
	assert.Equal(t, "sid.signature", cookie.Value)
	assert.Equal(t, "clubcompass.app", cookie.Domain)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.True(t, expires.Equal(cookie.Expires))
}

/*
TestClearCookie expires the cookie at the Unix epoch with an empty value.
*/
func TestClearCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	session.ClearCookie(recorder, "clubcompass.app")

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cc.sid", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, int64(0), cookies[0].Expires.Unix())
}

/*
TestReadCookie returns the raw value or an empty string.
*/
func TestReadCookie(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, session.ReadCookie(request))

	request.AddCookie(&http.Cookie{Name: "cc.sid", Value: "abc.def"})
	assert.Equal(t, "abc.def", session.ReadCookie(request))
}
