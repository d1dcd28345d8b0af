// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wpleonesz/kick-off-v2/models"
)

func ptr[T any](v T) *T { return &v }

func validCourt() models.CourtPayload {
	return models.CourtPayload{
		Name:      ptr("Cancha Norte"),
		Location:  ptr("Av. Siempre Viva 742"),
		Latitude:  ptr(-0.18),
		Longitude: ptr(-78.47),
		IsIndoor:  ptr(false),
	}
}

func TestValidate_Dispatch(t *testing.T) {
	ctx := context.Background()

	assert.ErrorIs(t, NewCourtValidator().Validate(ctx, "court"), ErrUnsupportedType)
	assert.ErrorIs(t, NewCourtScheduleValidator().Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, NewAuthValidator().Validate(ctx, models.CourtPayload{}), ErrUnsupportedType)

	c := validCourt()
	assert.NoError(t, NewCourtValidator().Validate(ctx, c))
	assert.NoError(t, NewCourtValidator().Validate(ctx, &c))
}

func TestCourtValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.CourtPayload)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.CourtPayload) {}},
		{name: "missing name", mutate: func(c *models.CourtPayload) { c.Name = nil }, wantErr: ErrEmptyName},
		{name: "blank name", mutate: func(c *models.CourtPayload) { c.Name = ptr("  ") }, wantErr: ErrEmptyName},
		{name: "missing location", mutate: func(c *models.CourtPayload) { c.Location = nil }, wantErr: ErrEmptyLocation},
		{name: "latitude out of range", mutate: func(c *models.CourtPayload) { c.Latitude = ptr(91.0) }, wantErr: ErrInvalidCoordinates},
		{name: "longitude out of range", mutate: func(c *models.CourtPayload) { c.Longitude = ptr(-180.5) }, wantErr: ErrInvalidCoordinates},
		{name: "coordinates optional", mutate: func(c *models.CourtPayload) { c.Latitude, c.Longitude = nil, nil }},
		{
			name:   "partial update checks scoped fields only",
			mutate: func(c *models.CourtPayload) { c.Name = nil; c.Location = ptr("x") },
			fields: []string{FieldLocation, FieldActive},
		},
		{name: "user id", mutate: func(c *models.CourtPayload) { c.UserID = ptr(int64(0)) }, fields: []string{FieldUserID}, wantErr: ErrInvalidUserID},
		{name: "unknown field", mutate: func(*models.CourtPayload) {}, fields: []string{"owner"}, wantErr: ErrUnknownField},
	}

	v := NewCourtValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCourt()
			tt.mutate(&c)

			err := v.Validate(context.Background(), c, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
