// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query

import (
	"context"
	"fmt"

	"github.com/wpleonesz/kick-off-v2/models"
)

// recordAudit writes an audit entry for a mutation of record.
//
// Nothing is written for an empty payload, for builders not marked
// auditable, or while the "audit" module is inactive. The entry is stamped
// with the audited user or, without one, with fallbackUserID.
//
// Failures are returned only when the builder is bound to a transaction;
// otherwise the mutation is already committed and the failure is logged.
func (b *Builder) recordAudit(ctx context.Context, action models.AuditAction, record Record, payload Record, fallbackUserID int64) error {
	if len(payload) == 0 || !b.auditable {
		return nil
	}

	strict := b.inTransaction()
	err := b.writeAudit(ctx, action, record, payload, fallbackUserID)
	if b.observer != nil {
		b.observer.ObserveAudit(b.entity.Name, action, err)
	}
	if err == nil {
		return nil
	}
	if strict {
		return err
	}

	b.logger(ctx).Err(err).
		Str("func", "Builder.recordAudit").
		Str("entity", b.entity.Name).
		Str("action", string(action)).
		Int64("record", record.ID()).
		Msg("audit entry was not written")
	return nil
}

func (b *Builder) writeAudit(ctx context.Context, action models.AuditAction, record Record, payload Record, fallbackUserID int64) error {
	registry := b.moduleRegistry()
	if registry == nil {
		return nil
	}
	active, err := registry.IsModuleActive(ctx, models.AuditModuleCode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuditFailed, err)
	}
	if !active {
		return nil
	}

	sink := b.auditSink()
	if sink == nil {
		return fmt.Errorf("%w: no audit sink bound", ErrAuditFailed)
	}

	userID := b.auditedUser.ID
	if userID == 0 {
		userID = fallbackUserID
	}
	entry := models.AuditLog{
		UserID:   userID,
		Datetime: b.now().UTC(),
		Table:    b.entity.Table,
		Record:   record.ID(),
		Action:   action,
		Data:     map[string]any(payload),
	}
	if err = sink.WriteAudit(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrAuditFailed, err)
	}
	return nil
}

// moduleRegistry prefers the registry given at construction, then the
// bound store.
func (b *Builder) moduleRegistry() ModuleRegistry {
	if b.registry != nil {
		return b.registry
	}
	if r, ok := b.store.(ModuleRegistry); ok {
		return r
	}
	return nil
}

// auditSink writes through the bound transaction when there is one, so the
// entry commits or rolls back with the mutation.
func (b *Builder) auditSink() AuditSink {
	if s, ok := b.store.(AuditSink); ok && b.inTransaction() {
		return s
	}
	if b.sink != nil {
		return b.sink
	}
	if s, ok := b.store.(AuditSink); ok {
		return s
	}
	return nil
}

func (b *Builder) inTransaction() bool {
	t, ok := b.store.(Transactional)
	return ok && t.InTransaction()
}

// ownerOf returns the user_id column of the mutated row, falling back to
// the written data.
func ownerOf(record, data Record) int64 {
	if id := toInt64(record["user_id"]); id != 0 {
		return id
	}
	return toInt64(data["user_id"])
}
