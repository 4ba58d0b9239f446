// Package scheduler keeps long-lived consoles warm by firing a periodic
// list-refresh callback on a cron schedule.
package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/config"
)

// Scheduler manages the periodic refresh task.
type Scheduler struct {
	cron    *cron.Cron
	cfg     config.RefreshConfig
	refresh func()
	logger  *zap.Logger
}

// NewScheduler creates a new scheduler instance. refresh is invoked on each
// tick; it must be safe to call from the cron goroutine.
func NewScheduler(cfg config.RefreshConfig, refresh func(), logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:    c,
		cfg:     cfg,
		refresh: refresh,
		logger:  logger,
	}
}

// Start registers the refresh schedule and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, func() {
		s.logger.Debug("refresh tick")
		s.refresh()
	})
	if err != nil {
		s.logger.Error("failed to schedule refresh", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}
