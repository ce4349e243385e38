// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package name

import "context"

// Repository defines the data access contract for the name collection.
//
// All methods are reads; the reference data is externally seeded and never
// written by this system.
type Repository interface {
	// FindMatching returns every record matching the filter, in no
	// particular order. Used by the seeded pagination mode, which ranks
	// and windows the set in application code.
	FindMatching(ctx context.Context, filter Filter) ([]*Record, error)

	// SampleMatching returns up to limit records drawn uniformly at random
	// from the filtered set. Each call re-samples; no cross-call stability.
	SampleMatching(ctx context.Context, filter Filter, limit int) ([]*Record, error)

	// FindByName returns the record whose name field equals name exactly,
	// or dberr.ErrNotFound.
	FindByName(ctx context.Context, name string) (*Record, error)
}
