// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

// SignUpRequest is the body accepted by the sign-up endpoint. It creates a
// person, the user account attached to it and, optionally, a role link.
type SignUpRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	DNI       string `json:"dni"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	RoleID    int64  `json:"roleId,omitempty"`
}

// PersonRecord returns the columns of the person row created at sign-up.
func (r SignUpRequest) PersonRecord() map[string]any {
	return map[string]any{
		"dni":        r.DNI,
		"name":       r.Name,
		"email":      r.Email,
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"mobile":     r.Mobile,
	}
}

// SignInRequest carries the credentials of a sign-in attempt.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionRole is the role summary attached to an authenticated user.
type SessionRole struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// SessionUser is the public view of an authenticated user returned by
// sign-in and by the current-user endpoint.
type SessionUser struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	Name     string        `json:"name"`
	DNI      string        `json:"dni,omitempty"`
	Email    string        `json:"email,omitempty"`
	Roles    []SessionRole `json:"roles"`
}

// Session is the result of a successful sign-in.
type Session struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
