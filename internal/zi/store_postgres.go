// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

/*
Package zi (Postgres) implements the storage layer for the character
reference collection.

# Schema Table Mapping
  - zi: glyph, strokes, five elements, pinyin, meaning, naming reference,
    gender preference, usage count.
*/
package zi

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qiminglab/mingyuan/internal/platform/constants"
	"github.com/qiminglab/mingyuan/internal/platform/database/schema"
	"github.com/qiminglab/mingyuan/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation of the character store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) FindByGlyphs(ctx context.Context, glyphs []string) ([]*Info, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1);
	`,
		schema.Zi.Glyph,
		schema.Zi.Strokes,
		schema.Zi.FiveElements,
		schema.Zi.Pinyin,
		schema.Zi.Meaning,
		schema.Zi.NameReference,
		schema.Zi.Table,
		schema.Zi.Glyph,
	)

	rows, err := repository.pool.Query(ctx, query, glyphs)
	if err != nil {
		return nil, dberr.Wrap(err, "find_characters")
	}
	defer rows.Close()

	var infos []*Info
	for rows.Next() {
		info := &Info{}
		if err := rows.Scan(
			&info.Character,
			&info.Strokes,
			&info.FiveElements,
			&info.Pinyin,
			&info.Meaning,
			&info.NameReference,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_character")
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_characters")
	}

	return infos, nil
}

// genderWhere maps a list gender filter to its WHERE clause.
//
// Records with no stated preference are gender-neutral: they are included
// when filtering by either specific gender.
func genderWhere(gender string) (string, []any) {
	var marker string

	switch gender {
	case GenderMale:
		marker = constants.GenderMale
	case GenderFemale:
		marker = constants.GenderFemale
	default:
		return "", nil
	}

	clause := fmt.Sprintf(" WHERE (%s = $1 OR %s IS NULL)",
		schema.Zi.GenderPreference, schema.Zi.GenderPreference)
	return clause, []any{marker}
}

func (repository *PostgresRepository) List(ctx context.Context, gender string, limit, offset int) ([]*Stub, int, error) {
	where, args := genderWhere(gender)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s;", schema.Zi.Table, where)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_characters")
	}

	listQuery := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s%s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d;
	`,
		schema.Zi.Glyph,
		schema.Zi.GenderPreference,
		schema.Zi.UsageCount,
		schema.Zi.Table,
		where,
		schema.Zi.UsageCount,
		len(args)+1,
		len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_characters")
	}
	defer rows.Close()

	var stubs []*Stub
	for rows.Next() {
		stub := &Stub{}
		if err := rows.Scan(&stub.Character, &stub.GenderPreference, &stub.UsageCount); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_character_stub")
		}
		stubs = append(stubs, stub)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_character_stubs")
	}

	return stubs, total, nil
}
