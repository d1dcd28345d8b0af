// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token issued at sign-in.
//
// The subject claim carries the user id; UserID caches its parsed value so
// that middleware can stamp it onto the request context without re-parsing.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// UserID is the parsed subject claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim as a base-10 user id.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to user id: %w", err)
	}

	return userID, nil
}

// String returns the signed token.
func (t *Token) String() string {
	return t.SignedString
}
