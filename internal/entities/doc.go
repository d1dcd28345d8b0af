// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

// Package entities declares the tables of the application as
// [query.Entity] descriptors, together with their named projections, and
// offers one constructor per entity returning a ready [query.Builder].
package entities
