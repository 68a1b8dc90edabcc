package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs engine jobs on a fixed cadence.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that checks alerts and sweeps the
// cache at the given intervals.
func NewScheduler(
	eng *Engine,
	alertInterval time.Duration,
	sweepInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+alertInterval.String(),
		s.runAlertCheck,
	); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(
		"@every "+sweepInterval.String(),
		s.runCacheSweep,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runAlertCheck() {
	ctx := context.Background()
	if err := s.engine.RunAlertCheck(ctx); err != nil {
		s.log.Error("scheduled alert check failed", "error", err)
	}
}

func (s *Scheduler) runCacheSweep() {
	ctx := context.Background()
	if err := s.engine.RunCacheSweep(ctx); err != nil {
		s.log.Error("scheduled cache sweep failed", "error", err)
	}
}
