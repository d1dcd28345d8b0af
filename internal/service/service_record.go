// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
	"github.com/wpleonesz/kick-off-v2/internal/validators"
	"github.com/wpleonesz/kick-off-v2/models"
)

// RecordOption customises a record service.
type RecordOption func(*recordService)

// WithOwnerColumn stamps the authenticated user into column on create when
// the payload leaves it empty.
func WithOwnerColumn(column string) RecordOption {
	return func(s *recordService) { s.ownerColumn = column }
}

// WithCoupledFields names fields validated together. An update carrying
// only some of them is checked against the stored values of the others,
// provided the payload is a [models.Completer].
func WithCoupledFields(fields ...string) RecordOption {
	return func(s *recordService) { s.coupled = fields }
}

// recordService implements RecordService for a single entity. Every call
// runs on a fresh builder, so the service is safe for concurrent use.
type recordService struct {
	entity    query.Entity
	db        Database
	opts      []query.Option
	validator validators.Validator

	ownerColumn string
	coupled     []string
}

// NewRecordService returns the CRUD service of entity. validator checks the
// payloads given to Create (every field) and Update (present fields only).
func NewRecordService(entity query.Entity, db Database, validator validators.Validator, opts []query.Option, recordOpts ...RecordOption) RecordService {
	s := &recordService{
		entity:    entity,
		db:        db,
		opts:      opts,
		validator: validator,
	}
	for _, opt := range recordOpts {
		opt(s)
	}
	return s
}

// builder returns a builder auditing on behalf of the request user.
func (s *recordService) builder(ctx context.Context) *query.Builder {
	b := query.New(s.entity, s.db, s.opts...).SetAuditable(true)
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		b.SetAuditedUser(query.AuditedUser{ID: userID})
	}
	return b
}

// List returns the rows matching params with the soft-delete filter applied
// unless params constrain "active". The result is a []query.Record or a
// query.Page when a count was requested.
func (s *recordService) List(ctx context.Context, params models.ListParams) (any, error) {
	b := s.builder(ctx).
		SetDefaultProjection(params.Select).
		SetRequestFilter(query.Filter(params.Where)).
		SetRequestOrdering(orders(params.OrderBy)).
		SetDefaultLimit(params.Take).
		SetDefaultOffset(params.Skip).
		SetDefaultCursor(params.Cursor).
		SetWantCount(params.Count)

	result, err := b.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordService.List").Str("entity", s.entity.Name).Msg("listing failed")
		return nil, err
	}
	return result, nil
}

// Get returns the row with the given id whether active or not.
func (s *recordService) Get(ctx context.Context, id int64) (query.Record, error) {
	if id <= 0 {
		return nil, ErrInvalidRecordID
	}
	rec, err := s.builder(ctx).ByID(id).First(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordService.Get").Str("entity", s.entity.Name).Int64("id", id).Msg("lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s %d", ErrRecordNotFound, s.entity.Name, id)
	}
	return rec, nil
}

// Create validates every required field of payload and inserts it.
func (s *recordService) Create(ctx context.Context, payload models.Payload) (query.Record, error) {
	log := logger.FromContext(ctx)

	if err := s.validate(ctx, payload); err != nil {
		log.Err(err).Str("func", "recordService.Create").Str("entity", s.entity.Name).Msg("invalid data provided")
		return nil, err
	}

	data := query.Record(payload.ToRecord())
	if s.ownerColumn != "" && data[s.ownerColumn] == nil {
		if userID, ok := utils.GetUserIDFromContext(ctx); ok {
			data[s.ownerColumn] = userID
		}
	}

	rec, err := s.builder(ctx).Insert(ctx, data)
	if err != nil {
		log.Err(err).Str("func", "recordService.Create").Str("entity", s.entity.Name).Msg("creation failed")
		return nil, err
	}
	return rec, nil
}

// Update validates the fields present in payload and writes them.
func (s *recordService) Update(ctx context.Context, id int64, payload models.Payload) (query.Record, error) {
	data := query.Record(payload.ToRecord())
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate)
	}
	if err := s.validate(ctx, payload, slices.Sorted(maps.Keys(data))...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordService.Update").Str("entity", s.entity.Name).Int64("id", id).Msg("invalid data provided")
		return nil, err
	}
	if err := s.validateCoupled(ctx, id, payload, data); err != nil {
		return nil, err
	}
	return s.update(ctx, id, data)
}

// validateCoupled merges a partial update of the coupled fields with the
// stored row and validates the result.
func (s *recordService) validateCoupled(ctx context.Context, id int64, payload models.Payload, data query.Record) error {
	completer, ok := payload.(models.Completer)
	if !ok || len(s.coupled) == 0 {
		return nil
	}
	touched := 0
	for _, f := range s.coupled {
		if _, ok := data[f]; ok {
			touched++
		}
	}
	if touched == 0 || touched == len(s.coupled) {
		return nil
	}
	if id <= 0 {
		return ErrInvalidRecordID
	}

	log := logger.FromContext(ctx)
	stored, err := s.builder(ctx).ByID(id).First(ctx)
	if err != nil {
		log.Err(err).Str("func", "recordService.validateCoupled").Str("entity", s.entity.Name).Int64("id", id).Msg("lookup failed")
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: %s %d", ErrRecordNotFound, s.entity.Name, id)
	}
	if err = s.validate(ctx, completer.Complete(stored), s.coupled...); err != nil {
		log.Err(err).Str("func", "recordService.validateCoupled").Str("entity", s.entity.Name).Int64("id", id).Msg("invalid data provided")
		return err
	}
	return nil
}

// Deactivate soft-deletes the row by clearing its active flag.
func (s *recordService) Deactivate(ctx context.Context, id int64) (query.Record, error) {
	return s.update(ctx, id, query.Record{query.SoftDeleteColumn: false})
}

func (s *recordService) Activate(ctx context.Context, id int64) (query.Record, error) {
	return s.update(ctx, id, query.Record{query.SoftDeleteColumn: true})
}

func (s *recordService) update(ctx context.Context, id int64, data query.Record) (query.Record, error) {
	if id <= 0 {
		return nil, ErrInvalidRecordID
	}

	rec, err := s.builder(ctx).ByID(id).Update(ctx, data)
	if errors.Is(err, query.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s %d", ErrRecordNotFound, s.entity.Name, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordService.update").Str("entity", s.entity.Name).Int64("id", id).Msg("update failed")
		return nil, err
	}
	return rec, nil
}

func (s *recordService) validate(ctx context.Context, payload models.Payload, fields ...string) error {
	if s.validator == nil {
		return nil
	}
	if err := s.validator.Validate(ctx, payload, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func orders(fields []models.SortField) []query.Order {
	if len(fields) == 0 {
		return nil
	}
	out := make([]query.Order, 0, len(fields))
	for _, f := range fields {
		out = append(out, query.Order{Column: f.Column, Desc: f.Descending})
	}
	return out
}
