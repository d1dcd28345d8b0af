// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package validators

import "errors"

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrUnknownField     = errors.New("unknown field for validation")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrInvalidCourtID   = errors.New("court is required")
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrInvalidTime      = errors.New("time must use the HH:MM format")
	ErrStartAfterEnd    = errors.New("start time must be before end time")

	ErrEmptyName          = errors.New("name is required")
	ErrEmptyLocation      = errors.New("location is required")
	ErrInvalidCoordinates = errors.New("coordinates are out of range")
	ErrInvalidUserID      = errors.New("invalid user ID")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidEmail  = errors.New("a valid email is required")
	ErrEmptyDNI      = errors.New("dni is required")
	ErrRoleRequired  = errors.New("role is required")

	ErrInvalidListParams = errors.New("invalid list parameters")
)
