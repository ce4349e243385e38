// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package zi

import (
	"context"
	"log/slog"

	"github.com/qiminglab/mingyuan/internal/platform/apperr"
	"github.com/qiminglab/mingyuan/internal/platform/validate"
	"github.com/qiminglab/mingyuan/pkg/pagination"
	"github.com/qiminglab/mingyuan/pkg/query"
)

// Service implements the character lookup and browse operations on top of a
// [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the character service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetInfo returns the linguistic records for a batch of glyphs, keyed by
// glyph for O(1) client-side lookup.
//
// Glyphs with no record are absent from the mapping, not an error. An empty
// glyph list is rejected before any store access.
func (service *Service) GetInfo(ctx context.Context, glyphs []string) (map[string]*Info, error) {
	glyphs = query.Dedup(glyphs)

	if err := (&validate.Validator{}).NotEmpty("characters", glyphs).Err(); err != nil {
		return nil, err
	}

	infos, err := service.repo.FindByGlyphs(ctx, glyphs)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*Info, len(infos))
	for _, info := range infos {
		result[info.Character] = info
	}

	return result, nil
}

// GetOne returns the record for exactly one glyph, or NotFound.
func (service *Service) GetOne(ctx context.Context, glyph string) (*Info, error) {
	if err := (&validate.Validator{}).Required("character", glyph).Err(); err != nil {
		return nil, err
	}

	infos, err := service.repo.FindByGlyphs(ctx, []string{glyph})
	if err != nil {
		return nil, err
	}

	if len(infos) == 0 {
		return nil, apperr.NotFound("Character")
	}

	return infos[0], nil
}

// ListPage is the shaped output of one character list invocation.
type ListPage struct {
	Characters []*Stub `json:"characters"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
}

// List returns one page of character stubs ordered by usage count.
//
// Any gender value other than the male/female tokens is treated as "all".
// Astronomical page numbers resolve to an empty page, never a negative
// store offset.
func (service *Service) List(ctx context.Context, gender string, page, pageSize int) (*ListPage, error) {
	offset := pagination.Params{Page: page, PageSize: pageSize}.Offset()

	stubs, total, err := service.repo.List(ctx, gender, pageSize, offset)
	if err != nil {
		return nil, err
	}

	if stubs == nil {
		stubs = make([]*Stub, 0)
	}

	return &ListPage{
		Characters: stubs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
