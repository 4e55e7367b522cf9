// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/core/tag"
	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/constants"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/middleware"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/session"
)

type memoryTags struct {
	mu   sync.Mutex
	tags []*tag.Tag
}

func (repository *memoryTags) List(_ context.Context, school string) ([]*tag.Tag, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	result := make([]*tag.Tag, 0)
	for _, stored := range repository.tags {
		if stored.School == school {
			result = append(result, stored)
		}
	}
	return result, nil
}

func (repository *memoryTags) FindBySlug(_ context.Context, school, slug string) (*tag.Tag, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, stored := range repository.tags {
		if stored.School == school && stored.Slug == slug {
			return stored, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryTags) Create(_ context.Context, created *tag.Tag) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, stored := range repository.tags {
		if stored.School == created.School && stored.Slug == created.Slug {
			return apperr.Conflict("Resource already exists")
		}
	}
	created.CreatedAt = time.Now().UTC()
	repository.tags = append(repository.tags, created)
	return nil
}

// roleSessions authenticates cookie values that name a role directly.
type roleSessions struct{}

func (roleSessions) Authenticate(_ context.Context, signed string) (string, *sec.Identity, error) {
	role, err := sec.ParseRole(signed)
	if err != nil {
		return "", nil, session.ErrMalformedSession
	}
	return "sid", &sec.Identity{ID: "user-1", School: "lincoln", Role: role}, nil
}

func do(router http.Handler, method, path, body string, school string, role sec.Role) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request = request.WithContext(ctxutil.WithSchool(request.Context(), school))
	if role != "" {
		request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: string(role)})
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_CreateAndList verifies ADMIN-only creation and per-school listing.
*/
func TestHandler_CreateAndList(t *testing.T) {
	repository := &memoryTags{}
	router := tag.NewHandler(tag.NewService(repository), middleware.NewAuthorizer(roleSessions{}, nil)).Routes()

	// 1. Managers may not create tags
	recorder := do(router, http.MethodPost, "/", `{"name":"Board Games"}`, "lincoln", sec.RoleManager)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 2. Administrators may, and the slug is derived from the name
	recorder = do(router, http.MethodPost, "/", `{"name":"Board Games"}`, "lincoln", sec.RoleAdmin)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created struct {
		Data tag.Tag `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))
	assert.Equal(t, "board-games", created.Data.Slug)

	// 3. Same slug again conflicts
	recorder = do(router, http.MethodPost, "/", `{"name":"board games!"}`, "lincoln", sec.RoleAdmin)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// 4. An admin session from lincoln cannot create tags for roosevelt
	recorder = do(router, http.MethodPost, "/", `{"name":"Drama"}`, "roosevelt", sec.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// 5. Listing is public and scoped
	recorder = do(router, http.MethodGet, "/", "", "lincoln", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var listed struct {
		Data []tag.Tag `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&listed))
	assert.Len(t, listed.Data, 1)

	recorder = do(router, http.MethodGet, "/", "", "roosevelt", "")
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&listed))
	assert.Empty(t, listed.Data)

	// 6. Lookup by slug
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/board-games", "", "lincoln", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/board-games", "", "roosevelt", "").Code)
}
