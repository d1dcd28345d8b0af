// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

// CourtPayload is the body accepted when creating or editing a sports court.
// Pointer fields make partial updates possible: nil means "leave unchanged".
type CourtPayload struct {
	Name      *string  `json:"name,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	IsIndoor  *bool    `json:"isIndoor,omitempty"`
	UserID    *int64   `json:"userId,omitempty"`
	Active    *bool    `json:"active,omitempty"`
}

// ToRecord converts the non-nil fields of the payload into a column map.
func (p CourtPayload) ToRecord() map[string]any {
	rec := make(map[string]any, 7)
	setIfPresent(rec, "name", p.Name)
	setIfPresent(rec, "location", p.Location)
	setIfPresent(rec, "latitude", p.Latitude)
	setIfPresent(rec, "longitude", p.Longitude)
	setIfPresent(rec, "is_indoor", p.IsIndoor)
	setIfPresent(rec, "user_id", p.UserID)
	setIfPresent(rec, "active", p.Active)
	return rec
}

// setIfPresent copies *v into rec[key] when v is not nil.
func setIfPresent[T any](rec map[string]any, key string, v *T) {
	if v != nil {
		rec[key] = *v
	}
}
