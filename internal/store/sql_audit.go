// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/wpleonesz/kick-off-v2/models"
)

// WriteAudit appends entry to the audit log. A zero UserID is stored as
// NULL and the payload is stored as JSON text.
func (e executor) WriteAudit(ctx context.Context, entry models.AuditLog) error {
	log := e.log(ctx)

	data, err := json.Marshal(entry.Data)
	if err != nil {
		log.Err(err).Str("func", "store.WriteAudit").Str("table", entry.Table).Msg("failed to encode audit payload")
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	var userID any
	if entry.UserID != 0 {
		userID = entry.UserID
	}

	stmt, params, err := e.dialect.builder().
		Insert(entry.TableName()).
		Columns("user_id", "datetime", "table_name", "record", "action", "data").
		Values(userID, entry.Datetime, entry.Table, entry.Record, string(entry.Action), string(data)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "store.WriteAudit").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = e.q.ExecContext(ctx, stmt, params...); err != nil {
		log.Err(err).
			Str("func", "store.WriteAudit").
			Str("table", entry.Table).
			Int64("record", entry.Record).
			Str("action", string(entry.Action)).
			Msg("failed to write audit entry")
		return wrapDriverError(err)
	}
	return nil
}

// PruneAuditLogs deletes the audit entries written before the given moment
// and returns how many were removed.
func (e executor) PruneAuditLogs(ctx context.Context, before time.Time) (int64, error) {
	log := e.log(ctx)

	stmt, params, err := e.dialect.builder().
		Delete(models.AuditLog{}.TableName()).
		Where(sq.Lt{"datetime": before}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "store.PruneAuditLogs").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := e.q.ExecContext(ctx, stmt, params...)
	if err != nil {
		log.Err(err).Str("func", "store.PruneAuditLogs").Time("before", before).Msg("failed to prune audit log")
		return 0, wrapDriverError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Str("func", "store.PruneAuditLogs").Time("before", before).Int64("deleted", n).Msg("audit log pruned")
	return n, nil
}
