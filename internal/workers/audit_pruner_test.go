// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpleonesz/kick-off-v2/internal/config"
)

type fakeAuditStore struct {
	before  time.Time
	calls   int
	deleted int64
	err     error
}

func (s *fakeAuditStore) PruneAuditLogs(_ context.Context, before time.Time) (int64, error) {
	s.calls++
	s.before = before
	return s.deleted, s.err
}

func TestAuditPruner_Prune(t *testing.T) {
	store := &fakeAuditStore{deleted: 12}
	obs := newFakeObserver()
	p := NewAuditPruner(store, config.Audit{RetentionDays: 30, PruneSchedule: "@daily"}, obs)
	p.now = func() time.Time { return time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC) }

	n, err := p.Prune(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), store.before)
	assert.Equal(t, int64(12), obs.pruned)
	assert.Equal(t, auditPrunerName, p.Name())
	assert.Equal(t, "@daily", p.Schedule())
}

func TestAuditPruner_RetentionDisabled(t *testing.T) {
	store := &fakeAuditStore{}
	p := NewAuditPruner(store, config.Audit{RetentionDays: 0, PruneSchedule: "@daily"}, nil)

	require.NoError(t, p.Run(context.Background()))

	assert.Zero(t, store.calls)
	assert.Empty(t, p.Schedule(), "no schedule without retention")
}

func TestAuditPruner_StoreFailure(t *testing.T) {
	storeErr := errors.New("db down")
	obs := newFakeObserver()
	p := NewAuditPruner(&fakeAuditStore{err: storeErr}, config.Audit{RetentionDays: 1}, obs)

	err := p.Run(context.Background())

	require.ErrorIs(t, err, storeErr)
	assert.Zero(t, obs.pruned)
}

type fakeModuleCache struct {
	refreshed int
	err       error
}

func (c *fakeModuleCache) Refresh(context.Context) error {
	c.refreshed++
	return c.err
}

func TestModuleRefresher(t *testing.T) {
	cache := &fakeModuleCache{}
	r := NewModuleRefresher(cache, config.Audit{RefreshSchedule: "@every 1m"})

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 1, cache.refreshed)
	assert.Equal(t, moduleRefresherName, r.Name())
	assert.Equal(t, "@every 1m", r.Schedule())

	cache.err = errors.New("boom")
	assert.Error(t, r.Run(context.Background()))
}
