// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   apperr.Code
	}{
		{"bad request", apperr.BadRequest("No subdomain"), http.StatusBadRequest, apperr.CodeBadRequest},
		{"validation", apperr.ValidationError("Validation failed"), http.StatusBadRequest, apperr.CodeValidation},
		{"unauthorized", apperr.Unauthorized("No session"), http.StatusUnauthorized, apperr.CodeUnauthorized},
		{"forbidden", apperr.Forbidden("Club belongs to another school"), http.StatusForbidden, apperr.CodeForbidden},
		{"not found", apperr.NotFound("Club"), http.StatusNotFound, apperr.CodeNotFound},
		{"conflict", apperr.Conflict("Tag already exists"), http.StatusConflict, apperr.CodeConflict},
		{"rate limited", apperr.RateLimited(time.Second), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"internal", apperr.Internal(nil), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}

	assert.Equal(t, "Club not found", apperr.NotFound("Club").Error())
}

func TestRateLimited_RoundsUpToOneSecond(t *testing.T) {
	appError := apperr.RateLimited(200 * time.Millisecond)

	assert.Equal(t, time.Second, appError.RetryAfter)
	assert.Equal(t, "Too many requests. Try again in 1s.", appError.Message)
}

func TestAs_FindsWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("load club: %w", apperr.NotFound("Club"))

	appError := apperr.As(wrapped)
	require.NotNil(t, appError)
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeConflict))

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.HasCode(nil, apperr.CodeNotFound))
}

func TestInternal_KeepsCauseForLogs(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	appError := apperr.Internal(cause)

	assert.ErrorIs(t, appError, cause)
	assert.NotContains(t, appError.Error(), "dial tcp")
}
