// Package scheduler fires the daily coaching batches.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ykvlv/coach-bot/internal/domain"
)

// Job names accepted by RunNow.
const (
	JobMorning = "morning"
	JobEvening = "evening"
)

// ErrUnknownJob is returned by RunNow for names other than JobMorning/JobEvening.
var ErrUnknownJob = errors.New("unknown job")

// Scheduler triggers the morning and evening batches at fixed local times.
type Scheduler struct {
	jobs    *Jobs
	log     *zap.Logger
	cron    *cron.Cron
	morning domain.Clock
	evening domain.Clock
	ctx     context.Context
	started bool
}

// New creates a Scheduler firing at the given clocks in the jobs' zone,
// so cron and "today" always agree.
func New(jobs *Jobs, log *zap.Logger, morning, evening domain.Clock) *Scheduler {
	return &Scheduler{
		jobs:    jobs,
		log:     log,
		morning: morning,
		evening: evening,
		cron: cron.New(
			cron.WithLocation(jobs.Location()),
			cron.WithLogger(newCronLogger(log)),
			cron.WithChain(cron.SkipIfStillRunning(newCronLogger(log))),
		),
	}
}

// Start registers both batches and starts cron. Batches receive ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.started {
		return errors.New("scheduler already started")
	}
	s.ctx = ctx

	entries := []struct {
		name  string
		clock domain.Clock
	}{
		{JobMorning, s.morning},
		{JobEvening, s.evening},
	}
	for _, e := range entries {
		name := e.name
		spec := domain.DailyCronSpec(e.clock)
		if _, err := s.cron.AddFunc(spec, func() { s.run(name) }); err != nil {
			return fmt.Errorf("register %s job: %w", name, err)
		}
		s.log.Info("job registered", zap.String("job", name), zap.String("at", e.clock.String()), zap.String("cron", spec))
	}

	s.cron.Start()
	s.started = true
	return nil
}

// Stop stops cron and waits for a running batch or ctx cancellation.
func (s *Scheduler) Stop(ctx context.Context) error {
	if !s.started {
		return nil
	}
	done := s.cron.Stop()
	s.started = false
	select {
	case <-done.Done():
		s.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow executes one batch synchronously by name.
func (s *Scheduler) RunNow(ctx context.Context, name string) ([]Outcome, error) {
	switch name {
	case JobMorning:
		return s.jobs.Morning(ctx)
	case JobEvening:
		return s.jobs.Evening(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownJob, name)
	}
}

func (s *Scheduler) run(name string) {
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := s.RunNow(ctx, name); err != nil {
		s.log.Error("job failed", zap.String("job", name), zap.Error(err))
	}
}
