// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wpleonesz/kick-off-v2/internal/logger"
)

// Workers schedules a set of [Worker] jobs on one cron scheduler.
type Workers struct {
	workers  []Worker
	observer Observer
	logger   *logger.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewWorkers groups workers. observer may be nil.
func NewWorkers(observer Observer, logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		workers:  workers,
		observer: observer,
		logger:   logger,
	}
}

// Run executes every worker once, in order, and returns the first error.
// The remaining workers still run after a failure.
func (w *Workers) Run(ctx context.Context) error {
	var firstErr error
	for _, worker := range w.workers {
		if err := w.execute(ctx, worker); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Start registers every scheduled worker and starts the scheduler. It
// returns [ErrInvalidSchedule] without starting anything when a spec does
// not parse. The scheduler stops when ctx is cancelled.
func (w *Workers) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrAlreadyRunning
	}

	c := cron.New(
		cron.WithLogger(cronLogger{w.logger}),
		cron.WithChain(cron.Recover(cronLogger{w.logger}), cron.SkipIfStillRunning(cronLogger{w.logger})),
	)

	scheduled := 0
	for _, worker := range w.workers {
		spec := worker.Schedule()
		if spec == "" {
			w.logger.Info().Str("worker", worker.Name()).Msg("no schedule configured, worker disabled")
			continue
		}
		if _, err := c.AddFunc(spec, func() { _ = w.execute(ctx, worker) }); err != nil {
			return fmt.Errorf("%w: %s %q: %w", ErrInvalidSchedule, worker.Name(), spec, err)
		}
		w.logger.Info().Str("worker", worker.Name()).Str("schedule", spec).Msg("worker scheduled")
		scheduled++
	}

	c.Start()
	w.cron = c
	w.running = true

	go func() {
		<-ctx.Done()
		w.Stop()
	}()

	w.logger.Info().Int("scheduled", scheduled).Msg("workers started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	<-w.cron.Stop().Done()
	w.running = false
	w.logger.Info().Msg("workers stopped")
}

// NextRuns returns the next activation of every scheduled worker.
func (w *Workers) NextRuns() []time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cron == nil {
		return nil
	}
	entries := w.cron.Entries()
	next := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		next = append(next, e.Next)
	}
	return next
}

func (w *Workers) execute(ctx context.Context, worker Worker) error {
	log := w.logger.With().Str("worker", worker.Name()).Logger()

	start := time.Now()
	err := worker.Run(ctx)
	took := time.Since(start)

	if w.observer != nil {
		w.observer.ObserveJob(worker.Name(), took, err)
	}
	if err != nil {
		log.Err(err).Str("func", "Workers.execute").Dur("took", took).Msg("worker run failed")
		return err
	}
	log.Debug().Dur("took", took).Msg("worker run finished")
	return nil
}

// cronLogger adapts the application logger to [cron.Logger].
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
