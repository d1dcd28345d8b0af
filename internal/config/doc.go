// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the HTTP server and
// [GetStructuredConfigFromEnv] for the admin command-line tool.
package config
