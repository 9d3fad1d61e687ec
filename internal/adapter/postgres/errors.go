package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeStringTooLong       = "22001"
	codeInvalidText         = "22P02"
)

// constraintFields names the request field a CHECK constraint guards, so a
// violation reaches the client as a field error.
var constraintFields = map[string]string{
	"ck_archives_date_range":  "date_until",
	"ck_sources_date_range":   "date_until",
	"entries_schema_check":    "schema",
	"archive_files_url_check": "url",
}

// MapError translates a pgx error into the domain error the services match
// on, prefixed with entity and id. Context cancellation passes through
// unchanged so callers can tell a timeout from a bad row.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	wrap := func(target error) error { return fmt.Errorf("%s %s: %w", entity, id, target) }

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(err)
	}
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return wrap(err)
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return wrap(domain.ErrAlreadyExists)
	case codeForeignKeyViolation:
		return wrap(domain.ErrNotFound)
	case codeCheckViolation:
		if field, ok := constraintFields[pgErr.ConstraintName]; ok {
			return wrap(domain.NewValidationError(field, "out of range"))
		}
		return wrap(domain.ErrValidation)
	case codeNotNullViolation:
		if pgErr.ColumnName != "" {
			return wrap(domain.NewValidationError(pgErr.ColumnName, "required"))
		}
		return wrap(domain.ErrValidation)
	case codeStringTooLong, codeInvalidText:
		return wrap(domain.ErrValidation)
	}
	return wrap(err)
}
