// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

import "time"

// AuditAction names the mutation that produced an [AuditLog] entry.
type AuditAction string

const (
	// AuditCreate is recorded after a row was inserted.
	AuditCreate AuditAction = "create"

	// AuditWrite is recorded after a row was updated.
	AuditWrite AuditAction = "write"

	// AuditUpsert is recorded after a row was created or updated by an upsert.
	AuditUpsert AuditAction = "upsert"
)

// AuditModuleCode is the feature-module code that switches auditing on.
const AuditModuleCode = "audit"

// AuditLog is an immutable record of who changed which row, when, and with
// what payload. It is written as a side effect of mutations and never read
// back by the data-access layer.
type AuditLog struct {
	// ID is the database-assigned identifier of the entry.
	ID int64 `json:"id"`

	// UserID is the audited user. Zero means the mutation had no known user
	// and is persisted as NULL.
	UserID int64 `json:"user_id"`

	// Datetime is the moment the entry was produced.
	Datetime time.Time `json:"datetime"`

	// Table is the physical table the mutation touched.
	Table string `json:"table"`

	// Record is the primary key of the mutated row.
	Record int64 `json:"record"`

	// Action is the kind of mutation.
	Action AuditAction `json:"action"`

	// Data is the payload given to the mutation. It is stored as JSON.
	Data any `json:"data"`
}

// TableName returns the name of the table audit entries are written to.
func (a AuditLog) TableName() string {
	return "audit_log"
}
