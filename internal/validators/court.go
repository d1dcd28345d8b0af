// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package validators

import (
	"context"
	"strings"

	"github.com/wpleonesz/kick-off-v2/models"
)

// Field names of court payloads. They match the column names produced by
// [models.CourtPayload.ToRecord].
const (
	FieldName      = "name"
	FieldLocation  = "location"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldIsIndoor  = "is_indoor"
	FieldUserID    = "user_id"
	FieldActive    = "active"
)

type CourtValidator struct {
}

func NewCourtValidator() Validator {
	return &CourtValidator{}
}

func (v *CourtValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CourtPayload:
		return v.validateCourt(ctx, value, fields...)
	case *models.CourtPayload:
		return v.validateCourt(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CourtValidator) validateCourt(_ context.Context, court models.CourtPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldLocation, FieldLatitude, FieldLongitude}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if court.Name == nil || strings.TrimSpace(*court.Name) == "" {
				return ErrEmptyName
			}
		case FieldLocation:
			if court.Location == nil || strings.TrimSpace(*court.Location) == "" {
				return ErrEmptyLocation
			}
		case FieldLatitude:
			if court.Latitude != nil && (*court.Latitude < -90 || *court.Latitude > 90) {
				return ErrInvalidCoordinates
			}
		case FieldLongitude:
			if court.Longitude != nil && (*court.Longitude < -180 || *court.Longitude > 180) {
				return ErrInvalidCoordinates
			}
		case FieldUserID:
			if court.UserID == nil || *court.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldIsIndoor, FieldActive:
		default:
			return ErrUnknownField
		}
	}

	return nil
}
