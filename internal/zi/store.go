// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package zi

import "context"

// Repository defines the data access contract for the character collection.
type Repository interface {
	// FindByGlyphs returns the records whose glyph is in glyphs. Glyphs
	// with no record are simply absent from the result, not an error.
	FindByGlyphs(ctx context.Context, glyphs []string) ([]*Info, error)

	// List returns one page of character stubs ordered by usage count
	// descending, plus the total count of records matching the gender
	// filter. gender is one of GenderAll, GenderMale, GenderFemale;
	// filtering by a specific gender also includes records with no stated
	// preference.
	List(ctx context.Context, gender string, limit, offset int) ([]*Stub, int, error)
}
