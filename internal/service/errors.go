// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong username or password")
	ErrUserIsInactive      = errors.New("user account is deactivated")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrRecordNotFound  = errors.New("record not found")
	ErrInvalidRecordID = errors.New("invalid record ID")
	ErrUnknownModule   = errors.New("unknown module")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
