// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package validators

import (
	"context"
	"regexp"
	"slices"

	"github.com/wpleonesz/kick-off-v2/models"
)

// Field names of court schedule payloads. They match the column names
// produced by [models.CourtSchedulePayload.ToRecord].
const (
	FieldCourtID   = "court_id"
	FieldDayOfWeek = "day_of_week"
	FieldDuration  = "duration"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type CourtScheduleValidator struct {
}

func NewCourtScheduleValidator() Validator {
	return &CourtScheduleValidator{}
}

func (v *CourtScheduleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CourtSchedulePayload:
		return v.validateSchedule(ctx, value, fields...)
	case *models.CourtSchedulePayload:
		return v.validateSchedule(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateSchedule checks the scoped fields. Start and end are compared
// only when both are in scope; "HH:MM" strings order lexically.
func (v *CourtScheduleValidator) validateSchedule(_ context.Context, s models.CourtSchedulePayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCourtID, FieldDayOfWeek, FieldDuration, FieldStartTime, FieldEndTime}
	}

	for _, f := range fields {
		switch f {
		case FieldCourtID:
			if s.CourtID == nil || *s.CourtID <= 0 {
				return ErrInvalidCourtID
			}
		case FieldDayOfWeek:
			if s.DayOfWeek == nil || *s.DayOfWeek < 0 || *s.DayOfWeek > 6 {
				return ErrInvalidDayOfWeek
			}
		case FieldDuration:
			if s.Duration == nil || *s.Duration <= 0 {
				return ErrInvalidDuration
			}
		case FieldStartTime:
			if s.StartTime == nil || !clockPattern.MatchString(*s.StartTime) {
				return ErrInvalidTime
			}
		case FieldEndTime:
			if s.EndTime == nil || !clockPattern.MatchString(*s.EndTime) {
				return ErrInvalidTime
			}
		case FieldActive:
		default:
			return ErrUnknownField
		}
	}

	if slices.Contains(fields, FieldStartTime) && slices.Contains(fields, FieldEndTime) &&
		*s.StartTime >= *s.EndTime {
		return ErrStartAfterEnd
	}

	return nil
}
