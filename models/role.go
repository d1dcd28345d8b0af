// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

// Role is a named set of permissions a user can hold.
type Role struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ToRecord converts the role into a column map ready to be written.
func (r Role) ToRecord() map[string]any {
	return map[string]any{
		"code":   r.Code,
		"name":   r.Name,
		"active": r.Active,
	}
}

// KickOffRoleCodes are the roles a visitor may pick at sign-up.
var KickOffRoleCodes = []string{"player", "referee", "organizer", "owner"}

// DefaultRoles is the set of roles seeded into a fresh database.
var DefaultRoles = []Role{
	{Code: "admin", Name: "Administrador", Active: true},
	{Code: "player", Name: "Jugador", Active: true},
	{Code: "referee", Name: "Árbitro", Active: true},
	{Code: "organizer", Name: "Organizador", Active: true},
	{Code: "owner", Name: "Propietario", Active: true},
}
