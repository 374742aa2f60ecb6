// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/somalitag/internal/platform/apperr"
	"github.com/taibuivan/somalitag/internal/platform/dberr"
)

/*
TestWrap verifies no-rows and unclassified errors.
*/
func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))

	notFound := dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "load_profiles")
	assert.Equal(t, dberr.ErrNotFound, notFound)

	cause := errors.New("connection refused")
	internal := apperr.As(dberr.Wrap(cause, "load_profiles"))
	require.NotNil(t, internal)
	assert.Equal(t, http.StatusInternalServerError, internal.HTTPStatus)
	assert.ErrorIs(t, internal, cause)
	assert.Contains(t, internal.Cause.Error(), "load_profiles")
}

/*
TestWrap_SQLState verifies Postgres error codes map to catalog-facing statuses.
*/
func TestWrap_SQLState(t *testing.T) {
	tests := []struct {
		code   string
		status int
		appErr string
	}{
		{dberr.CodeUniqueViolation, http.StatusConflict, "CONFLICT"},
		{dberr.CodeForeignKeyViolation, http.StatusConflict, "CONFLICT"},
		{dberr.CodeUndefinedTable, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{dberr.CodeSerializationFailure, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"22P02", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code, ConstraintName: "profile_slug_key"}

			appErr := apperr.As(dberr.Wrap(fmt.Errorf("copy: %w", pgErr), "copy_core_profile"))
			require.NotNil(t, appErr)
			assert.Equal(t, tt.status, appErr.HTTPStatus)
			assert.Equal(t, tt.appErr, appErr.Code)
			assert.ErrorIs(t, appErr, pgErr)
			assert.Contains(t, appErr.Cause.Error(), "copy_core_profile")
		})
	}
}
