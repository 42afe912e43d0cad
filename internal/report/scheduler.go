package report

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// recalcTimeout bounds one scheduled run; a full scan is seconds, not minutes.
const recalcTimeout = 5 * time.Minute

// Scheduler refreshes the missing-data report on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	logger  *zap.Logger
}

func NewScheduler(service *Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:    cron.New(),
		service: service,
		logger:  logger,
	}
}

// Start registers the recalculation job and starts the cron loop.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.run)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("report scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("report scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), recalcTimeout)
	defer cancel()

	if _, err := s.service.Recalculate(ctx); err != nil {
		s.logger.Error("scheduled recalculation failed", zap.Error(err))
	}
}
