// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package zi

// ── Entities ─────────────────────────────────────────────────────────────────

// Info is the full linguistic record for a single character.
//
// # Identity
//
// The character glyph is the key; lookups are exact glyph match only,
// never fuzzy.
type Info struct {
	Character     string `json:"character"`
	Strokes       int    `json:"strokes"`
	FiveElements  string `json:"five_elements"`
	Pinyin        string `json:"pinyin"`
	Meaning       string `json:"meaning"`
	NameReference string `json:"name_reference"`
}

// Stub is the browse-listing projection of a character record.
//
// GenderPreference is nil for characters with no stated preference; such
// characters are treated as gender-neutral when filtering.
type Stub struct {
	Character        string  `json:"character"`
	GenderPreference *string `json:"gender_preference,omitempty"`
	UsageCount       int     `json:"usage_count"`
}

// ── List Filtering ───────────────────────────────────────────────────────────

// Gender filter tokens accepted by the character list endpoint.
const (
	GenderAll    = "all"
	GenderMale   = "male"
	GenderFemale = "female"
)
