// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wpleonesz/kick-off-v2/internal/mock"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAudit_Gating(t *testing.T) {
	tests := []struct {
		name        string
		moduleOn    bool
		auditable   bool
		data        query.Record
		wantEntries int
	}{
		{name: "module on and auditable", moduleOn: true, auditable: true, data: query.Record{"name": "x"}, wantEntries: 1},
		{name: "module off", moduleOn: false, auditable: true, data: query.Record{"name": "x"}},
		{name: "not auditable", moduleOn: true, auditable: false, data: query.Record{"name": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seededCourts(t)
			s.modules[models.AuditModuleCode] = tt.moduleOn

			_, err := query.New(courtEntity, s).
				SetAuditable(tt.auditable).
				ByID(1).
				Update(context.Background(), tt.data)
			require.NoError(t, err)
			assert.Len(t, s.audits, tt.wantEntries)
		})
	}
}

func TestAudit_UpsertPayloadIsNeverEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockModuleRegistry(ctrl)
	sink := mock.NewMockAuditSink(ctrl)
	store := mock.NewMockStore(ctrl)
	table := mock.NewMockTable(ctrl)

	store.EXPECT().Table("roles").Return(table)
	table.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(query.Record{"id": int64(1)}, nil)

	roles := query.Entity{Name: "roles", Table: "roles", Schemas: map[query.ProjectionName]query.Projection{
		query.ProjectionDefault: query.Columns("id", "code"),
	}}
	b := query.New(roles, store, query.WithModuleRegistry(registry), query.WithAuditSink(sink)).SetAuditable(true)

	// the upsert payload is never empty, so the registry is asked
	registry.EXPECT().IsModuleActive(gomock.Any(), models.AuditModuleCode).Return(false, nil)
	_, err := b.Filter(query.Filter{"code": "a"}).Upsert(context.Background(), query.Record{"code": "a"}, nil)
	require.NoError(t, err)
}

func TestAudit_Entry(t *testing.T) {
	s := seededCourts(t)
	s.modules[models.AuditModuleCode] = true

	b := query.New(courtEntity, s, query.WithClock(func() time.Time { return fixedNow })).
		SetAuditedUser(query.AuditedUser{ID: 7, Username: "ana"})

	_, err := b.Insert(context.Background(), query.Record{"name": "New", "active": true})
	require.NoError(t, err)
	_, err = b.ByID(4).Update(context.Background(), query.Record{"name": "Renamed"})
	require.NoError(t, err)
	_, err = b.Filter(query.Filter{"name": "Renamed"}).Upsert(context.Background(), query.Record{"name": "A"}, query.Record{"name": "B"})
	require.NoError(t, err)

	require.Len(t, s.audits, 3)
	assert.Equal(t, models.AuditLog{
		ID:       1,
		UserID:   7,
		Datetime: fixedNow,
		Table:    "courts",
		Record:   4,
		Action:   models.AuditCreate,
		Data:     map[string]any{"name": "New", "active": true},
	}, s.audits[0])
	assert.Equal(t, models.AuditWrite, s.audits[1].Action)
	assert.Equal(t, int64(4), s.audits[1].Record)
	assert.Equal(t, models.AuditUpsert, s.audits[2].Action)
	assert.Equal(t, map[string]any{
		"create": query.Record{"name": "A"},
		"write":  query.Record{"name": "B"},
	}, s.audits[2].Data)
}

func TestAudit_FallbackUser(t *testing.T) {
	s := newMemStore()
	s.modules[models.AuditModuleCode] = true

	_, err := query.New(courtEntity, s).
		SetAuditable(true).
		Insert(context.Background(), query.Record{"name": "Owned", "user_id": int64(3)})
	require.NoError(t, err)
	require.Len(t, s.audits, 1)
	assert.Equal(t, int64(3), s.audits[0].UserID)
}

func TestAudit_BestEffortOnPool(t *testing.T) {
	s := seededCourts(t)
	s.modules[models.AuditModuleCode] = true
	s.auditErr = errBoom

	rec, err := query.New(courtEntity, s).
		SetAuditable(true).
		ByID(1).
		Update(context.Background(), query.Record{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", rec["name"])
}

func TestAudit_StrictInTransaction(t *testing.T) {
	s := seededCourts(t)
	s.modules[models.AuditModuleCode] = true
	s.auditErr = errBoom
	s.inTx = true

	rec, err := query.New(courtEntity, s).
		SetAuditable(true).
		ByID(1).
		Update(context.Background(), query.Record{"name": "x"})
	require.ErrorIs(t, err, query.ErrAuditFailed)
	require.ErrorIs(t, err, errBoom)
	assert.NotNil(t, rec, "the caller still sees what was written before rolling back")
}

func TestAudit_TransactionIsPreferredSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mock.NewMockAuditSink(ctrl)
	sink.EXPECT().WriteAudit(gomock.Any(), gomock.Any()).Times(0)

	tx := seededCourts(t)
	tx.modules[models.AuditModuleCode] = true
	tx.inTx = true

	_, err := query.New(courtEntity, newMemStore(), query.WithAuditSink(sink)).
		BindStore(tx).
		SetAuditable(true).
		ByID(1).
		Update(context.Background(), query.Record{"name": "x"})
	require.NoError(t, err)
	assert.Len(t, tx.audits, 1)
}

func TestAudit_ObserverAndExplicitSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mock.NewMockAuditSink(ctrl)
	registry := mock.NewMockModuleRegistry(ctrl)
	obs := mock.NewMockObserver(ctrl)

	registry.EXPECT().IsModuleActive(gomock.Any(), "audit").Return(true, nil)
	sink.EXPECT().WriteAudit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.AuditLog) error {
			assert.Equal(t, models.AuditCreate, e.Action)
			assert.Equal(t, int64(1), e.Record)
			return nil
		},
	)
	obs.EXPECT().ObserveAudit("courts", models.AuditCreate, nil)
	obs.EXPECT().ObserveOperation("courts", "insert", gomock.Any(), nil)

	_, err := query.New(courtEntity, newMemStore(),
		query.WithAuditSink(sink),
		query.WithModuleRegistry(registry),
		query.WithObserver(obs),
	).SetAuditable(true).Insert(context.Background(), query.Record{"name": "x"})
	require.NoError(t, err)
}
