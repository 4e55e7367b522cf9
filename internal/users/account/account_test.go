// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/platform/constants"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/middleware"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/session"
	"github.com/taibuivan/clubcompass/internal/users/account"
	"github.com/taibuivan/clubcompass/internal/users/auth"
)

const (
	adaID   = "0192f0c4-7f0e-7b7a-9c1d-00000000000a"
	graceID = "0192f0c4-7f0e-7b7a-9c1d-00000000000b"
	otherID = "0192f0c4-7f0e-7b7a-9c1d-00000000000c"
)

type memoryAccounts struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{users: map[string]*auth.User{
		adaID:   {ID: adaID, School: "lincoln", Username: "ada", Email: "ada@lincoln.edu", Role: sec.RoleMember},
		graceID: {ID: graceID, School: "lincoln", Username: "grace", Email: "grace@lincoln.edu", Role: sec.RoleManager, Avatar: "https://cdn/g.png"},
		otherID: {ID: otherID, School: "roosevelt", Username: "alan", Email: "alan@roosevelt.edu", Role: sec.RoleMember},
	}}
}

func (repository *memoryAccounts) FindByID(_ context.Context, id string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (repository *memoryAccounts) UpdateProfile(_ context.Context, school, id, ccid, avatar string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[id]
	if !ok || user.School != school {
		return nil, dberr.ErrNotFound
	}
	user.CCID, user.Avatar = ccid, avatar
	copied := *user
	return &copied, nil
}

// userSessions treats the cookie value as the user id and loads the identity.
type userSessions struct {
	accounts *memoryAccounts
}

func (sessions userSessions) Authenticate(ctx context.Context, signed string) (string, *sec.Identity, error) {
	user, err := sessions.accounts.FindByID(ctx, signed)
	if err != nil {
		return "", nil, session.ErrMalformedSession
	}
	return "sid-" + user.ID, user.Identity(), nil
}

type fixture struct {
	accounts *memoryAccounts
	router   http.Handler
}

func newFixture() *fixture {
	accounts := newMemoryAccounts()
	handler := account.NewHandler(account.NewService(accounts), middleware.NewAuthorizer(userSessions{accounts}, nil))
	return &fixture{accounts: accounts, router: handler.Routes()}
}

func (f *fixture) do(method, path, body, school, userID string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request = request.WithContext(ctxutil.WithSchool(request.Context(), school))
	if userID != "" {
		request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: userID})
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_RequiresSession rejects anonymous profile requests.
*/
func TestHandler_RequiresSession(t *testing.T) {
	f := newFixture()
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/me", "", "lincoln", "").Code)
}

/*
TestHandler_UpdateMe applies a partial update and keeps omitted fields.
*/
func TestHandler_UpdateMe(t *testing.T) {
	f := newFixture()

	recorder := f.do(http.MethodPatch, "/me", `{"ccid":" cc-1001 "}`, "lincoln", graceID)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data auth.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Equal(t, "cc-1001", envelope.Data.CCID)
	assert.Equal(t, "https://cdn/g.png", envelope.Data.Avatar)
	assert.NotContains(t, recorder.Body.String(), "password")

	// Invalid avatar URL
	recorder = f.do(http.MethodPatch, "/me", `{"avatar":"javascript:alert(1)"}`, "lincoln", adaID)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// A lincoln session cannot edit through another school's subdomain
	recorder = f.do(http.MethodPatch, "/me", `{"ccid":"x"}`, "roosevelt", adaID)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

/*
TestHandler_PublicProfile hides private fields and other schools' members.
*/
func TestHandler_PublicProfile(t *testing.T) {
	f := newFixture()

	recorder := f.do(http.MethodGet, "/users/"+graceID, "", "lincoln", adaID)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"username":"grace"`)
	assert.NotContains(t, recorder.Body.String(), "grace@lincoln.edu")

	recorder = f.do(http.MethodGet, "/users/"+otherID, "", "lincoln", adaID)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = f.do(http.MethodGet, "/users/not-a-uuid", "", "lincoln", adaID)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestService_GetProfile returns the caller's full record.
*/
func TestService_GetProfile(t *testing.T) {
	service := account.NewService(newMemoryAccounts())

	user, err := service.GetProfile(context.Background(), &sec.Identity{ID: adaID, School: "lincoln"})
	require.NoError(t, err)
	assert.Equal(t, "ada@lincoln.edu", user.Email)

	_, err = service.GetProfile(context.Background(), &sec.Identity{ID: "missing", School: "lincoln"})
	assert.Error(t, err)
}
