package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"weatherlookup/internal/logger"
	"weatherlookup/internal/lookup"
)

// refreshTimeout bounds one refresh run, resolve and forecast included.
const refreshTimeout = 60 * time.Second

// Scheduler re-runs the full resolve+fetch flow for the active city on a fixed
// interval. The interval restarts when the active city changes.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *lookup.Service
	interval  time.Duration
	log       *zap.SugaredLogger
}

// New creates a new Scheduler.
func New(interval time.Duration, service *lookup.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
		log:       logger.GetLogger(),
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if err := s.schedule(); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Reset restarts the interval, so a just-changed city is not refreshed on the
// old city's cadence.
func (s *Scheduler) Reset() {
	s.scheduler.Clear()
	if err := s.schedule(); err != nil {
		s.log.Errorw("failed to reschedule refresh job", "error", err)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) schedule() error {
	_, err := s.scheduler.Every(s.interval).Do(func() {
		s.log.Debugw("running forecast refresh job")

		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := s.service.Refresh(ctx); err != nil {
			s.log.Warnw("forecast refresh failed", "error", err)
		}
	})
	return err
}
