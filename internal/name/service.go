// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package name

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/qiminglab/mingyuan/internal/platform/apperr"
	"github.com/qiminglab/mingyuan/internal/platform/dberr"
	"github.com/qiminglab/mingyuan/internal/platform/validate"
)

// Service implements the name search and detail operations on top of a
// [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger

	// now is injectable for deterministic seed generation in tests.
	now func() time.Time
}

// NewService constructs the name service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Search returns one page of matching given names.
//
// # Modes
//
// Sample mode (default): up to PageSize records drawn uniformly at random
// from the filtered set. Each call re-samples, so page numbers carry no
// cross-call meaning.
//
// Seeded mode (request.Seeded, or a non-empty Seed): every matching record
// gets a reproducible rank derived from (seed, record identity); the sorted
// set is windowed by page. Fixed (filter, seed) yields disjoint pages whose
// union is the ranked prefix of the filtered set.
//
// An empty result set is a success with an empty slice, never an error.
func (service *Service) Search(ctx context.Context, request SearchRequest) (*SearchResult, error) {
	if request.Seeded || request.Seed != "" {
		return service.searchSeeded(ctx, request)
	}
	return service.searchSample(ctx, request)
}

func (service *Service) searchSample(ctx context.Context, request SearchRequest) (*SearchResult, error) {
	records, err := service.repo.SampleMatching(ctx, request.Filter, request.PageSize)
	if err != nil {
		return nil, err
	}

	return &SearchResult{Items: shapeResults(request.Surname, records)}, nil
}

func (service *Service) searchSeeded(ctx context.Context, request SearchRequest) (*SearchResult, error) {
	seed := request.Seed
	if seed == "" {
		// No caller-pinned seed: derive one from the clock and echo it
		// back so the client can request further pages.
		seed = strconv.FormatInt(service.now().UnixNano(), 10)
	}

	records, err := service.repo.FindMatching(ctx, request.Filter)
	if err != nil {
		return nil, err
	}

	rankSort(seed, records)
	page := window(records, request.Page, request.PageSize)

	return &SearchResult{
		Items: shapeResults(request.Surname, page),
		Seed:  seed,
	}, nil
}

// shapeResults projects records into display results, composing FullName.
func shapeResults(surname string, records []*Record) []*Result {
	results := make([]*Result, 0, len(records))
	for _, record := range records {
		results = append(results, &Result{
			Name:              record.Name,
			FullName:          surname + record.Name,
			Content:           record.Content,
			Score:             record.Score,
			GenderSuitability: record.GenderSuitability,
		})
	}
	return results
}

// Detail returns the full descriptive record for a given name.
//
// # Lookup Policy
//
// The URL-decoded input is NFC-normalized, then matched exactly; on a miss
// the lookup retries with leading/trailing whitespace trimmed (handles
// caller-side encoding artifacts). Still absent means NotFound.
//
// The lookup is surname-agnostic: a surname may accompany the request for
// display context but never scopes the query.
func (service *Service) Detail(ctx context.Context, rawName string) (*Detail, error) {
	if err := (&validate.Validator{}).Required("name", rawName).Err(); err != nil {
		return nil, err
	}

	lookupName := norm.NFC.String(rawName)

	record, err := service.repo.FindByName(ctx, lookupName)
	if errors.Is(err, dberr.ErrNotFound) {
		trimmed := strings.TrimSpace(lookupName)
		if trimmed != lookupName {
			record, err = service.repo.FindByName(ctx, trimmed)
		}
	}

	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound("Name")
	}
	if err != nil {
		return nil, err
	}

	return &Detail{
		Name:    record.Name,
		Content: record.Content,
		Score:   record.Score,
	}, nil
}
