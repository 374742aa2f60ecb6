// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/somalitag/internal/platform/apperr"
)

/*
TestAppError_Constructors checks the status and code mapping of every constructor.
*/
func TestAppError_Constructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Profile"), http.StatusNotFound, "NOT_FOUND"},
		{"validation", apperr.ValidationError("bad"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"rate_limited", apperr.RateLimited(3), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"unavailable", apperr.ServiceUnavailable("redis down"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"conflict", apperr.Conflict("Duplicate slug", nil), http.StatusConflict, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}

	assert.Equal(t, "Profile not found", apperr.NotFound("Profile").Error())
}

/*
TestAppError_As verifies extraction through wrapped chains and that causes stay reachable.
*/
func TestAppError_As(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("loading catalog: %w", apperr.Internal(cause))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.ErrorIs(t, wrapped, cause)

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
}
