// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wpleonesz/kick-off-v2/internal/mock"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/models"
)

func TestModuleService_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	modules := mock.NewMockTable(ctrl)
	cache := mock.NewMockModuleCache(ctrl)
	svc := NewModuleService(tables(t, ctrl, map[string]*mock.MockTable{"base_module": modules}), cache)

	gomock.InOrder(
		modules.EXPECT().FindFirst(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args query.FindArgs) (query.Record, error) {
				assert.Equal(t, query.Filter{"code": "audit"}, args.Where)
				return query.Record{"id": int64(2), "code": "audit", "active": false}, nil
			}),
		modules.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args query.UpdateArgs) (query.Record, error) {
				assert.Equal(t, query.Filter{"id": int64(2)}, args.Where)
				assert.Equal(t, query.Record{"active": true}, args.Data)
				return query.Record{"id": int64(2)}, nil
			}),
		cache.EXPECT().Set("audit", true),
	)

	require.NoError(t, svc.Activate(context.Background(), "audit"))
}

func TestModuleService_Deactivate_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	modules := mock.NewMockTable(ctrl)
	svc := NewModuleService(tables(t, ctrl, map[string]*mock.MockTable{"base_module": modules}), nil)

	modules.EXPECT().FindFirst(gomock.Any(), gomock.Any()).Return(nil, nil)

	err := svc.Deactivate(context.Background(), "chess")
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestModuleService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	modules, roles := mock.NewMockTable(ctrl), mock.NewMockTable(ctrl)
	cache := mock.NewMockModuleCache(ctrl)
	svc := NewModuleService(tables(t, ctrl, map[string]*mock.MockTable{"base_module": modules, "roles": roles}), cache)

	var seeded []string
	modules.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args query.UpsertArgs) (query.Record, error) {
			code, _ := args.Where["code"].(string)
			seeded = append(seeded, code)
			assert.Contains(t, args.Create, "active")
			assert.NotContains(t, args.Update, "active", "an admin's choice must survive reseeding")
			return query.Record{"id": int64(len(seeded))}, nil
		}).
		Times(len(models.DefaultModules))
	roles.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args query.UpsertArgs) (query.Record, error) {
			assert.Equal(t, query.Record{"name": args.Create["name"]}, args.Update)
			return query.Record{"id": int64(1)}, nil
		}).
		Times(len(models.DefaultRoles))
	cache.EXPECT().Refresh(gomock.Any()).Return(nil)

	require.NoError(t, svc.Seed(context.Background()))
	assert.Equal(t, []string{"base", "audit", "courts"}, seeded)
}

func TestModuleService_Seed_RollsBackOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	modules := mock.NewMockTable(ctrl)
	svc := NewModuleService(tables(t, ctrl, map[string]*mock.MockTable{"base_module": modules}), mock.NewMockModuleCache(ctrl))

	boom := errors.New("boom")
	modules.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, boom)

	err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, boom)
}
