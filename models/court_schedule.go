// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

// CourtSchedulePayload is the body accepted when creating or editing an
// opening slot of a court. StartTime and EndTime use the "HH:MM" format and
// DayOfWeek counts from Sunday (0) to Saturday (6).
type CourtSchedulePayload struct {
	CourtID   *int64  `json:"courtId,omitempty"`
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// ToRecord converts the non-nil fields of the payload into a column map.
func (p CourtSchedulePayload) ToRecord() map[string]any {
	rec := make(map[string]any, 6)
	setIfPresent(rec, "court_id", p.CourtID)
	setIfPresent(rec, "day_of_week", p.DayOfWeek)
	setIfPresent(rec, "duration", p.Duration)
	setIfPresent(rec, "start_time", p.StartTime)
	setIfPresent(rec, "end_time", p.EndTime)
	setIfPresent(rec, "active", p.Active)
	return rec
}

// Complete implements [Completer]. Fields set on p are kept; the others are
// read from the stored row.
func (p CourtSchedulePayload) Complete(stored map[string]any) Payload {
	if p.CourtID == nil {
		p.CourtID = storedInt64(stored["court_id"])
	}
	if p.DayOfWeek == nil {
		p.DayOfWeek = storedInt(stored["day_of_week"])
	}
	if p.Duration == nil {
		p.Duration = storedInt(stored["duration"])
	}
	if p.StartTime == nil {
		p.StartTime = storedString(stored["start_time"])
	}
	if p.EndTime == nil {
		p.EndTime = storedString(stored["end_time"])
	}
	return p
}
