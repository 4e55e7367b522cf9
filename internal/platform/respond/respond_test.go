// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/respond"
	"github.com/taibuivan/clubcompass/pkg/pagination"
)

/*
TestError verifies the status and envelope produced for each kind of error.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apperr.Code
		wantMsg    string
	}{
		{"unauthorized", apperr.Unauthorized("No session"), http.StatusUnauthorized, apperr.CodeUnauthorized, "No session"},
		{"bad request", apperr.BadRequest("Invalid subdomain"), http.StatusBadRequest, apperr.CodeBadRequest, "Invalid subdomain"},
		{"wrapped app error", fmt.Errorf("ctx: %w", apperr.NotFound("Club")), http.StatusNotFound, apperr.CodeNotFound, "Club not found"},
		{"plain error hidden", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, apperr.CodeInternal, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

			var envelope respond.ErrorEnvelope
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
			assert.Equal(t, tt.wantCode, envelope.Code)
			assert.Equal(t, tt.wantMsg, envelope.Error)
		})
	}
}

/*
TestError_RetryAfter advertises the wait of a rate-limited response.
*/
func TestError_RetryAfter(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), apperr.RateLimited(3*time.Second))

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "3", recorder.Header().Get("Retry-After"))
}

/*
TestError_ValidationDetails checks that field errors reach the client.
*/
func TestError_ValidationDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Error(recorder, httptest.NewRequest(http.MethodPost, "/", nil),
		apperr.ValidationError("Validation failed", apperr.FieldError{Field: "name", Message: "This field is required"}))

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "name", envelope.Details[0].Field)
}

/*
TestPaginated checks the data and meta blocks of a list response.
*/
func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, []string{"chess", "drama"}, pagination.NewMeta(1, 2, 5))

	var envelope struct {
		Data []string        `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Equal(t, []string{"chess", "drama"}, envelope.Data)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
}

/*
TestJSON_UnencodablePayload answers 500 with the generic error body.
*/
func TestJSON_UnencodablePayload(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.JSON(recorder, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"))

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Equal(t, apperr.CodeInternal, envelope.Code)
}
