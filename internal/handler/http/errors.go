// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrInvalidQueryParam is returned when a query string parameter of a
	// public endpoint cannot be parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
