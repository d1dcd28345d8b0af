// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package workers

import "errors"

var (
	// ErrInvalidSchedule is returned by Workers.Start for a cron spec that
	// does not parse.
	ErrInvalidSchedule = errors.New("invalid worker schedule")

	// ErrAlreadyRunning is returned by a second Workers.Start.
	ErrAlreadyRunning = errors.New("workers are already running")
)
