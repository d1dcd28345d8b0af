// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const moduleTable = "base_module"

// IsModuleActive reads the active flag of the feature module code from
// base_module. Unknown modules are reported as inactive.
func (e executor) IsModuleActive(ctx context.Context, code string) (bool, error) {
	log := e.log(ctx)

	stmt, params, err := e.dialect.builder().
		Select("active").
		From(moduleTable).
		Where(sq.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "store.IsModuleActive").Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var active bool
	err = e.q.QueryRowContext(ctx, stmt, params...).Scan(&active)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", "store.IsModuleActive").Str("code", code).Msg("module is not registered")
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "store.IsModuleActive").Str("code", code).Msg("failed to read module state")
		return false, wrapDriverError(err)
	}
	return active, nil
}
