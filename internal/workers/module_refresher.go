// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package workers

import (
	"context"

	"github.com/wpleonesz/kick-off-v2/internal/config"
)

const moduleRefresherName = "module_refresher"

// ModuleRefresher reloads the module registry so that modules toggled from
// another process take effect without a restart.
type ModuleRefresher struct {
	cache ModuleCache
	cfg   config.Audit
}

func NewModuleRefresher(cache ModuleCache, cfg config.Audit) *ModuleRefresher {
	return &ModuleRefresher{cache: cache, cfg: cfg}
}

func (r *ModuleRefresher) Name() string     { return moduleRefresherName }
func (r *ModuleRefresher) Schedule() string { return r.cfg.RefreshSchedule }

func (r *ModuleRefresher) Run(ctx context.Context) error {
	return r.cache.Refresh(ctx)
}
