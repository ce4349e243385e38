// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

// Package schema centralizes table and column identifiers for the reference
// store, keeping SQL construction in the repositories typo-safe.
package schema

// NamesTable represents the 'names' reference table
type NamesTable struct {
	Table             string
	ID                string
	Name              string
	Content           string
	Score             string
	GenderSuitability string
}

// Names is the schema definition for the given-name collection
var Names = NamesTable{
	Table:             "names",
	ID:                "id",
	Name:              "name",
	Content:           "content",
	Score:             "score",
	GenderSuitability: "gender_suitability",
}

func (t NamesTable) Columns() []string {
	return []string{t.ID, t.Name, t.Content, t.Score, t.GenderSuitability}
}
