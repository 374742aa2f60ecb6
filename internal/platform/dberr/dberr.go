// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies Postgres failures from the catalog store into
// [apperr.AppError] values.
//
// # Classification
//
//   - pgx.ErrNoRows                    → 404 NOT_FOUND
//   - 23505 unique / 23503 foreign key → 409 CONFLICT (seeding clashing rows)
//   - 42P01 undefined table            → 503 SERVICE_UNAVAILABLE (schema not migrated)
//   - 40001 serialization failure      → 503 SERVICE_UNAVAILABLE (snapshot retry)
//   - anything else                    → 500 INTERNAL_ERROR
//
// The action name and the raw error are kept as the Cause for logs only.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/somalitag/internal/platform/apperr"
)

// SQLSTATE codes the catalog store reacts to.
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeUndefinedTable       = "42P01"
	CodeSerializationFailure = "40001"
)

// ErrNotFound is returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap classifies err and tags it with the store action that produced it.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	cause := fmt.Errorf("%s: %w", action, err)

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperr.Internal(cause)
	}

	switch pgErr.Code {
	case CodeUniqueViolation:
		return apperr.Conflict(fmt.Sprintf("Catalog row already exists (%s)", pgErr.ConstraintName), cause)
	case CodeForeignKeyViolation:
		return apperr.Conflict(fmt.Sprintf("Catalog row references a missing entry (%s)", pgErr.ConstraintName), cause)
	case CodeUndefinedTable:
		return unavailable("Catalog schema is not migrated", cause)
	case CodeSerializationFailure:
		return unavailable("Catalog snapshot conflicted with a concurrent write, retry", cause)
	default:
		return apperr.Internal(cause)
	}
}

func unavailable(msg string, cause error) *apperr.AppError {
	appErr := apperr.ServiceUnavailable(msg)
	appErr.Cause = cause
	return appErr
}
