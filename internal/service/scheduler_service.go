// FILE: internal/service/scheduler_service.go
package service

import (
	"context"
	"time"

	"contract-renewal-be/internal/pkg/logger"
)

// ISchedulerService runs the daily jobs in-process for deployments
// without an external cron. The job endpoints stay available either
// way.
type ISchedulerService interface {
	Start(ctx context.Context)
}

type schedulerService struct {
	renewalService  IRenewalService
	reminderService IReminderService
	runHourUTC      int
	logger          logger.ILogger
}

func NewSchedulerService(
	renewalService IRenewalService,
	reminderService IReminderService,
	runHourUTC int,
	logger logger.ILogger,
) ISchedulerService {
	return &schedulerService{
		renewalService:  renewalService,
		reminderService: reminderService,
		runHourUTC:      runHourUTC,
		logger:          logger,
	}
}

func (s *schedulerService) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *schedulerService) loop(ctx context.Context) {
	for {
		wait := time.Until(s.nextRun(time.Now().UTC()))
		s.logger.Info("SchedulerService", "Next daily run scheduled", map[string]interface{}{
			"in": wait.Round(time.Second).String(),
		})

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		s.runOnce(ctx)
	}
}

func (s *schedulerService) runOnce(ctx context.Context) {
	if _, err := s.renewalService.Sweep(ctx); err != nil {
		s.logger.Error("SchedulerService", "Auto-renew sweep failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if _, err := s.reminderService.Run(ctx); err != nil {
		s.logger.Error("SchedulerService", "Reminder run failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// nextRun is the next occurrence of the configured UTC hour strictly
// after now.
func (s *schedulerService) nextRun(now time.Time) time.Time {
	run := time.Date(now.Year(), now.Month(), now.Day(), s.runHourUTC, 0, 0, 0, time.UTC)
	if !run.After(now) {
		run = run.AddDate(0, 0, 1)
	}
	return run
}
