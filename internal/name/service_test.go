// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package name_test

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiminglab/mingyuan/internal/name"
	"github.com/qiminglab/mingyuan/internal/platform/apperr"
	"github.com/qiminglab/mingyuan/internal/platform/constants"
	"github.com/qiminglab/mingyuan/internal/platform/dberr"
)

// fakeRepository is an in-memory [name.Repository] mirroring the store's
// filter semantics: regex match on the name field, gender OR universal.
type fakeRepository struct {
	records []*name.Record
	err     error
}

func (f *fakeRepository) matching(filter name.Filter) []*name.Record {
	var pattern *regexp.Regexp
	if filter.ContainChar != "" {
		pattern = regexp.MustCompile(filter.ContainChar)
	}

	var matched []*name.Record
	for _, record := range f.records {
		if pattern != nil && !pattern.MatchString(record.Name) {
			continue
		}
		if filter.Gender != "" &&
			record.GenderSuitability != filter.Gender &&
			record.GenderSuitability != constants.GenderUniversal {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}

func (f *fakeRepository) FindMatching(_ context.Context, filter name.Filter) ([]*name.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matching(filter), nil
}

func (f *fakeRepository) SampleMatching(_ context.Context, filter name.Filter, limit int) ([]*name.Record, error) {
	if f.err != nil {
		return nil, f.err
	}

	matched := f.matching(filter)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeRepository) FindByName(_ context.Context, lookup string) (*name.Record, error) {
	if f.err != nil {
		return nil, f.err
	}

	for _, record := range f.records {
		if record.Name == lookup {
			return record, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func namesFixture() []*name.Record {
	return []*name.Record{
		{ID: 1, Name: "明轩", Content: "<p>明轩</p>", Score: 92, GenderSuitability: constants.GenderMale},
		{ID: 2, Name: "梓涵", Content: "<p>梓涵</p>", Score: 88, GenderSuitability: constants.GenderFemale},
		{ID: 3, Name: "语嫣", Content: "<p>语嫣</p>", Score: 85, GenderSuitability: constants.GenderFemale},
		{ID: 4, Name: "浩然", Content: "<p>浩然</p>", Score: 95, GenderSuitability: constants.GenderMale},
		{ID: 5, Name: "思远", Content: "<p>思远</p>", Score: 90, GenderSuitability: constants.GenderUniversal},
		{ID: 6, Name: "梓萱", Content: "<p>梓萱</p>", Score: 87, GenderSuitability: constants.GenderFemale},
		{ID: 7, Name: "子墨", Content: "<p>子墨</p>", Score: 89, GenderSuitability: constants.GenderUniversal},
		{ID: 8, Name: "雨桐", Content: "<p>雨桐</p>", Score: 84, GenderSuitability: constants.GenderFemale},
		{ID: 9, Name: "明杰", Content: "<p>明杰</p>", Score: 83, GenderSuitability: constants.GenderMale},
	}
}

/*
TestSearch_SeededPagesFormPartition verifies the core seeded-pagination
contract: for a fixed (filter, seed), consecutive pages are pairwise
disjoint and their concatenation equals the full ranked ordering.
*/
func TestSearch_SeededPagesFormPartition(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	// Full ranked ordering in a single oversized page.
	full, err := service.Search(context.Background(), name.SearchRequest{
		Seed: "seed-42", Page: 1, PageSize: 9,
	})
	require.NoError(t, err)
	require.Len(t, full.Items, 9)

	// The same ordering consumed three records at a time.
	var concatenated []string
	seen := make(map[string]bool)
	for page := 1; page <= 3; page++ {
		result, err := service.Search(context.Background(), name.SearchRequest{
			Seed: "seed-42", Page: page, PageSize: 3,
		})
		require.NoError(t, err)
		require.Len(t, result.Items, 3)
		assert.Equal(t, "seed-42", result.Seed)

		for _, item := range result.Items {
			assert.False(t, seen[item.Name], "page overlap on %s", item.Name)
			seen[item.Name] = true
			concatenated = append(concatenated, item.Name)
		}
	}

	for i, item := range full.Items {
		assert.Equal(t, item.Name, concatenated[i])
	}
}

/*
TestSearch_SeededIsRepeatable verifies that repeating a seeded page request
returns the identical slice.
*/
func TestSearch_SeededIsRepeatable(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	request := name.SearchRequest{Seed: "repeat", Page: 2, PageSize: 4}

	first, err := service.Search(context.Background(), request)
	require.NoError(t, err)
	second, err := service.Search(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, second.Items, len(first.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].Name, second.Items[i].Name)
	}
}

/*
TestSearch_SeedGeneratedWhenAbsent verifies that seeded mode without an
explicit seed derives one and echoes it back.
*/
func TestSearch_SeedGeneratedWhenAbsent(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	result, err := service.Search(context.Background(), name.SearchRequest{
		Seeded: true, Page: 1, PageSize: 3,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Seed)
	assert.Len(t, result.Items, 3)
}

/*
TestSearch_GenderFilterIncludesUniversal verifies that filtering by a
specific gender also returns universal-marked names, and nothing of the
opposite gender.
*/
func TestSearch_GenderFilterIncludesUniversal(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	result, err := service.Search(context.Background(), name.SearchRequest{
		Filter: name.Filter{Gender: constants.GenderMale},
		Seed:   "g", Page: 1, PageSize: 20,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Items)

	for _, item := range result.Items {
		assert.Contains(t,
			[]string{constants.GenderMale, constants.GenderUniversal},
			item.GenderSuitability,
		)
	}

	// 3 male + 2 universal in the fixture.
	assert.Len(t, result.Items, 5)
}

/*
TestSearch_ContainChar verifies that every returned name matches the
required-character pattern.
*/
func TestSearch_ContainChar(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	result, err := service.Search(context.Background(), name.SearchRequest{
		Filter: name.Filter{ContainChar: "梓"},
		Seed:   "c", Page: 1, PageSize: 20,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	for _, item := range result.Items {
		assert.Contains(t, item.Name, "梓")
	}
}

/*
TestSearch_FullNameComposition verifies the surname is prefixed onto every
returned given name.
*/
func TestSearch_FullNameComposition(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	result, err := service.Search(context.Background(), name.SearchRequest{
		Surname: "王", Page: 1, PageSize: 5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Items)

	for _, item := range result.Items {
		assert.Equal(t, "王"+item.Name, item.FullName)
	}

	// Sample mode never echoes a seed.
	assert.Empty(t, result.Seed)
}

/*
TestSearch_AstronomicalPageNumber verifies that a seeded page number large
enough to wrap the skip multiplication yields an empty page rather than a
fault.
*/
func TestSearch_AstronomicalPageNumber(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	result, err := service.Search(context.Background(), name.SearchRequest{
		Seed: "x", Page: 1100000000000000001, PageSize: 9,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, "x", result.Seed)
}

/*
TestSearch_EmptyResultIsNotAnError verifies that a filter matching nothing
yields an empty slice, not an error.
*/
func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	result, err := service.Search(context.Background(), name.SearchRequest{
		Filter: name.Filter{ContainChar: "龍"},
		Seed:   "e", Page: 1, PageSize: 9,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

/*
TestSearch_StoreFailurePropagates verifies that a store failure surfaces as
a SERVICE_UNAVAILABLE application error.
*/
func TestSearch_StoreFailurePropagates(t *testing.T) {
	repo := &fakeRepository{err: apperr.Unavailable(assert.AnError)}
	service := name.NewService(repo, testLogger())

	_, err := service.Search(context.Background(), name.SearchRequest{Page: 1, PageSize: 9})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "SERVICE_UNAVAILABLE", ae.Code)
}

/*
TestDetail_ExactMatch verifies a straightforward detail lookup.
*/
func TestDetail_ExactMatch(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	detail, err := service.Detail(context.Background(), "明轩")
	require.NoError(t, err)

	assert.Equal(t, "明轩", detail.Name)
	assert.Equal(t, "<p>明轩</p>", detail.Content)
	assert.InDelta(t, 92, detail.Score, 0.001)
}

/*
TestDetail_TrimsWhitespace verifies the trim-retry lookup policy: a padded
input finds the record stored without padding.
*/
func TestDetail_TrimsWhitespace(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	detail, err := service.Detail(context.Background(), " 明轩 ")
	require.NoError(t, err)
	assert.Equal(t, "明轩", detail.Name)
}

/*
TestDetail_NotFound verifies the NOT_FOUND classification for an unknown name.
*/
func TestDetail_NotFound(t *testing.T) {
	service := name.NewService(&fakeRepository{records: namesFixture()}, testLogger())

	_, err := service.Detail(context.Background(), "不存在")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestDetail_MissingNameRejectedBeforeStore verifies that an empty name fails
validation without touching the repository.
*/
func TestDetail_MissingNameRejectedBeforeStore(t *testing.T) {
	// A repository that would fail loudly if reached.
	repo := &fakeRepository{err: apperr.Unavailable(assert.AnError)}
	service := name.NewService(repo, testLogger())

	_, err := service.Detail(context.Background(), "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
