// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package workers

import (
	"context"
	"time"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
)

const auditPrunerName = "audit_pruner"

// AuditPruner deletes audit entries older than the retention window.
type AuditPruner struct {
	store    AuditStore
	cfg      config.Audit
	observer Observer
	now      func() time.Time
}

// NewAuditPruner returns the retention job. observer may be nil.
func NewAuditPruner(store AuditStore, cfg config.Audit, observer Observer) *AuditPruner {
	return &AuditPruner{
		store:    store,
		cfg:      cfg,
		observer: observer,
		now:      time.Now,
	}
}

func (p *AuditPruner) Name() string { return auditPrunerName }

// Schedule is empty when retention is disabled.
func (p *AuditPruner) Schedule() string {
	if p.cfg.RetentionDays <= 0 {
		return ""
	}
	return p.cfg.PruneSchedule
}

// Run deletes the entries written more than RetentionDays ago.
func (p *AuditPruner) Run(ctx context.Context) error {
	_, err := p.Prune(ctx)
	return err
}

// Prune is Run reporting the number of deleted entries. A zero retention
// keeps everything.
func (p *AuditPruner) Prune(ctx context.Context) (int64, error) {
	if p.cfg.RetentionDays <= 0 {
		return 0, nil
	}

	before := p.now().UTC().AddDate(0, 0, -p.cfg.RetentionDays)
	n, err := p.store.PruneAuditLogs(ctx, before)
	if err != nil {
		return 0, err
	}

	if p.observer != nil {
		p.observer.ObservePruned(n)
	}
	logger.FromContext(ctx).Info().Str("func", "AuditPruner.Prune").
		Time("before", before).Int64("deleted", n).Msg("audit retention applied")
	return n, nil
}
