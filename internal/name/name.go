// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package name

// ── Entities ─────────────────────────────────────────────────────────────────

// Record is a stored given-name entry from the reference collection.
//
// # Identity
//
// The Name text is the lookup key. It is not guaranteed globally unique
// across surnames; lookups match on the given name only.
type Record struct {
	ID                int64
	Name              string
	Content           string // Pre-rendered HTML commentary (idioms/poems).
	Score             float64
	GenderSuitability string // 男, 女, or 通用.
}

// Result is one search hit shaped for display.
//
// FullName is the caller-supplied surname concatenated with the given name.
// Concatenation only; no check that the combination is linguistically sound.
type Result struct {
	Name              string  `json:"name"`
	FullName          string  `json:"fullName"`
	Content           string  `json:"content"`
	Score             float64 `json:"score"`
	GenderSuitability string  `json:"gender_suitability"`
}

// Detail is the full descriptive record returned by the detail endpoint.
type Detail struct {
	Name    string  `json:"name"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// ── Query Parameters ─────────────────────────────────────────────────────────

// Filter holds the match predicate for a name search.
type Filter struct {
	// Gender, when set, requires gender_suitability to equal it or the
	// universal marker.
	Gender string

	// ContainChar, when set, is a raw pattern matched against the name
	// field. It is deliberately not escaped: callers must be aware that
	// pattern metacharacters are interpreted, not matched literally.
	ContainChar string
}

// SearchRequest carries one search invocation's parameters.
type SearchRequest struct {
	// Surname is used only for display composition of FullName.
	Surname string

	Filter Filter

	// Seeded selects deterministic pseudo-random pagination. When Seed is
	// empty in seeded mode a time-derived seed is generated and echoed back.
	Seeded bool
	Seed   string

	Page     int
	PageSize int
}

// SearchResult is the shaped output of one search invocation.
type SearchResult struct {
	Items []*Result

	// Seed echoes the effective seed in seeded mode; empty in sample mode.
	Seed string
}
