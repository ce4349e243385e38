// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

/*
Package name (Postgres) implements the storage layer for the given-name
reference collection.

# Schema Table Mapping
  - names: given name, pre-rendered HTML content, score, gender suitability.

Filtering notes:
  - ContainChar uses the Postgres '~' regex operator on the name column.
    The pattern is passed through unescaped; callers own its syntax.
  - Gender filtering always includes the universal marker via = ANY.
*/
package name

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qiminglab/mingyuan/internal/platform/constants"
	"github.com/qiminglab/mingyuan/internal/platform/database/schema"
	"github.com/qiminglab/mingyuan/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation of the name store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// buildWhere constructs the dynamic WHERE clause for a filter.
//
// It returns the clause (possibly empty) and the positional arguments.
func buildWhere(filter Filter) (string, []any) {
	var conditions []string
	var args []any
	argID := 1

	if filter.ContainChar != "" {
		conditions = append(conditions, fmt.Sprintf("%s ~ $%d", schema.Names.Name, argID))
		args = append(args, filter.ContainChar)
		argID++
	}

	if filter.Gender != "" {
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", schema.Names.GenderSuitability, argID))
		args = append(args, []string{filter.Gender, constants.GenderUniversal})
		argID++
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// selectColumns is the shared projection for name records.
func selectColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		schema.Names.ID,
		schema.Names.Name,
		schema.Names.Content,
		schema.Names.Score,
		schema.Names.GenderSuitability,
	)
}

// scanRecords drains rows into hydrated [Record] values.
func scanRecords(rows pgx.Rows) ([]*Record, error) {
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record := &Record{}
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Content,
			&record.Score,
			&record.GenderSuitability,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_name")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_names")
	}

	return records, nil
}

func (repository *PostgresRepository) FindMatching(ctx context.Context, filter Filter) ([]*Record, error) {
	where, args := buildWhere(filter)

	query := fmt.Sprintf("SELECT %s FROM %s%s;", selectColumns(), schema.Names.Table, where)

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_matching_names")
	}

	return scanRecords(rows)
}

func (repository *PostgresRepository) SampleMatching(ctx context.Context, filter Filter, limit int) ([]*Record, error) {
	where, args := buildWhere(filter)

	// ORDER BY random() re-samples the filtered set on every call, which is
	// exactly the contract of the uniform-sample mode.
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY random() LIMIT $%d;",
		selectColumns(), schema.Names.Table, where, len(args)+1)
	args = append(args, limit)

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "sample_matching_names")
	}

	return scanRecords(rows)
}

func (repository *PostgresRepository) FindByName(ctx context.Context, name string) (*Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 1;",
		selectColumns(), schema.Names.Table, schema.Names.Name)

	record := &Record{}
	err := repository.pool.QueryRow(ctx, query, name).Scan(
		&record.ID,
		&record.Name,
		&record.Content,
		&record.Score,
		&record.GenderSuitability,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_name_by_name")
	}

	return record, nil
}
