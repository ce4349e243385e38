// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters.
// Page sizes are taken as-is (no upper clamp); only non-positive or malformed
// values fall back to defaults.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// DefaultNamePageSize is the per-page size for name search results.
	DefaultNamePageSize = 9

	// DefaultZiPageSize is the per-page size for character list browsing.
	DefaultZiPageSize = 100
)

// Params holds the parsed page and pageSize from a request's query string.
type Params struct {
	Page     int
	PageSize int
}

// Offset returns the SQL OFFSET value derived from Page and PageSize.
//
// Extreme page numbers can wrap the multiplication; a wrapped offset is
// past the end of any real data set, so it maps to a huge positive value
// that stays a valid OFFSET.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}

	offset := (p.Page - 1) * p.PageSize
	if offset < 0 {
		return math.MaxInt32
	}
	return offset
}

// FromRequest parses "page" and "pageSize" query parameters from an HTTP request.
//
// # Fallbacks
//
// Invalid, negative, or missing values fall back to [DefaultPage] and the
// provided defaultPageSize. There is deliberately no maximum page size.
func FromRequest(r *http.Request, defaultPageSize int) Params {
	page := parseIntParam(r, "page", DefaultPage)
	pageSize := parseIntParam(r, "pageSize", defaultPageSize)

	if page < 1 {
		page = DefaultPage
	}

	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return Params{Page: page, PageSize: pageSize}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
