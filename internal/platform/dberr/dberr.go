// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/qiminglab/mingyuan/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal store details from the client while classifying the error type.
//
// Every failure other than a missing row is classified as store-unavailable:
// the caller gets a generic 503 envelope and the cause is kept for
// operator-side logging only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Connectivity and query failures become SERVICE_UNAVAILABLE
	return apperr.Unavailable(fmt.Errorf("%s: %w", action, err))
}
