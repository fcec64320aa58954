// Package scheduler re-runs the feed cache pass on a cron spec.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 5 * time.Minute

// Runner is one full cache pass.
type Runner interface {
	Run(ctx context.Context) error
}

type Scheduler struct {
	ctx    context.Context
	cron   *cron.Cron
	runner Runner
	log    *slog.Logger
}

func New(ctx context.Context, runner Runner, log *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	return &Scheduler{
		ctx:    ctx,
		cron:   c,
		runner: runner,
		log:    log,
	}
}

func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(s.ctx, refreshTimeout)
	defer cancel()

	if err := s.runner.Run(ctx); err != nil {
		s.log.ErrorContext(ctx, "Failed to refresh feed cache",
			"error", err)
	}
}
