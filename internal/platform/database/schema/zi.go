// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package schema

// ZiTable represents the 'zi' character reference table.
//
// The glyph column is named "glyph" rather than "character" because
// CHARACTER is a reserved word in PostgreSQL; the API surface still calls
// the field "character".
type ZiTable struct {
	Table            string
	ID               string
	Glyph            string
	Strokes          string
	FiveElements     string
	Pinyin           string
	Meaning          string
	NameReference    string
	GenderPreference string
	UsageCount       string
}

// Zi is the schema definition for the character collection
var Zi = ZiTable{
	Table:            "zi",
	ID:               "id",
	Glyph:            "glyph",
	Strokes:          "strokes",
	FiveElements:     "five_elements",
	Pinyin:           "pinyin",
	Meaning:          "meaning",
	NameReference:    "name_reference",
	GenderPreference: "gender_preference",
	UsageCount:       "usage_count",
}

func (t ZiTable) Columns() []string {
	return []string{t.ID, t.Glyph, t.Strokes, t.FiveElements, t.Pinyin, t.Meaning, t.NameReference, t.GenderPreference, t.UsageCount}
}
