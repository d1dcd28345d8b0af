// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

// Command kickoff-admin performs maintenance tasks against the kick-off
// database: applying migrations, seeding modules and roles, switching
// feature modules and pruning the audit log.
//
// Usage:
//
//	kickoff-admin migrate
//	kickoff-admin seed
//	kickoff-admin module activate courts
//	kickoff-admin module deactivate audit
//	kickoff-admin audit prune --days 90
//
// Settings are read from the environment (STORAGE_DB_DRIVER,
// STORAGE_DB_DATABASE_URI, ...) and from the optional --config file.
package main

func main() {
	Execute()
}
