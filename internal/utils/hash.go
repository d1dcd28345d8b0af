// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashPassword returns the bcrypt hash of password.
//
// The password is first peppered with HMAC-SHA256 under pepper, which also
// keeps long passwords within the 72 byte input limit of bcrypt. An empty
// pepper still yields a valid, unpeppered-equivalent HMAC.
func HashPassword(password, pepper string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(HashString(password, pepper)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword checks password against a hash produced by HashPassword
// with the same pepper. A mismatch is reported as [ErrPasswordMismatch].
func ComparePassword(hash, password, pepper string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(HashString(password, pepper)))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password: %w", err)
	}
}
