// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package service

import (
	"context"

	"github.com/wpleonesz/kick-off-v2/internal/entities"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/models"
)

type publicService struct {
	db   Database
	opts []query.Option
}

func NewPublicService(db Database, opts ...query.Option) PublicService {
	return &publicService{db: db, opts: opts}
}

// Courts returns the active courts under the PUBLIC projection.
func (s *publicService) Courts(ctx context.Context) ([]query.Record, error) {
	recs, err := entities.NewCourtData(s.db, s.opts...).
		ProjectSchema(query.ProjectionPublic).
		OrderBy(query.Asc("name")).
		ListRecords(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "publicService.Courts").Msg("listing courts failed")
		return nil, err
	}
	return recs, nil
}

// CourtSchedules returns the active schedules, of a single court when
// courtID is positive.
func (s *publicService) CourtSchedules(ctx context.Context, courtID int64) ([]query.Record, error) {
	b := entities.NewCourtScheduleData(s.db, s.opts...).
		OrderBy(query.Asc("day_of_week"), query.Asc("start_time"))
	if courtID > 0 {
		b.Filter(query.Filter{"court_id": courtID})
	}

	recs, err := b.ListRecords(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "publicService.CourtSchedules").Int64("court_id", courtID).Msg("listing schedules failed")
		return nil, err
	}
	return recs, nil
}

// Roles returns the active roles a visitor can pick at sign-up.
func (s *publicService) Roles(ctx context.Context) ([]query.Record, error) {
	recs, err := entities.NewRoleData(s.db, s.opts...).
		ProjectSchema(query.ProjectionPublic).
		Filter(query.Filter{"code": models.KickOffRoleCodes}).
		OrderBy(query.Asc("id")).
		ListRecords(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "publicService.Roles").Msg("listing roles failed")
		return nil, err
	}
	return recs, nil
}
