// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/wpleonesz/kick-off-v2/models"
)

const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldEmail     = "email"
	FieldDNI       = "dni"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldRoleID    = "role_id"
)

// AuthValidator checks sign-up and sign-in requests.
type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(ctx, *value, fields...)
	case models.SignInRequest:
		return v.validateSignIn(ctx, value, fields...)
	case *models.SignInRequest:
		return v.validateSignIn(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateSignUp(_ context.Context, r models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDNI, FieldFirstName, FieldLastName, FieldEmail, FieldUsername, FieldPassword, FieldRoleID}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(r.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEmail:
			if _, err := mail.ParseAddress(r.Email); blank(r.Email) || err != nil {
				return ErrInvalidEmail
			}
		case FieldDNI:
			if blank(r.DNI) {
				return ErrEmptyDNI
			}
		case FieldFirstName, FieldLastName:
			if (f == FieldFirstName && blank(r.FirstName)) || (f == FieldLastName && blank(r.LastName)) {
				return ErrEmptyName
			}
		case FieldRoleID:
			if r.RoleID <= 0 {
				return ErrRoleRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateSignIn(_ context.Context, r models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(r.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
