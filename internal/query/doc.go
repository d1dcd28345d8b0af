// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

// Package query implements the entity query builder shared by every table
// of the application.
//
// A [Builder] is bound to one [Entity] for its lifetime. Callers chain
// configuration and query-shaping calls (Filter, Project, OrderBy, Limit,
// Offset, Cursor) and finish with a terminal operation (Count, List, First,
// Unique, Insert, Update, Upsert). Every terminal operation performs its
// store round trip and then resets the builder to a clean baseline, so one
// builder can serve several queries in sequence.
//
// Reads honour a soft-delete convention: entities whose default projection
// declares an "active" column get an automatic {active: true} filter unless
// the caller constrains "active" explicitly or switches the default filter
// off through [Builder.Reset].
//
// Mutations record an [models.AuditLog] entry when the "audit" feature
// module is active and the builder was marked auditable.
//
// A Builder is owned by a single request and is not safe for concurrent use.
package query
