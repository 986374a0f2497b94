// FILE: internal/service/reminder_service.go
package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/pkg/logger"
	"contract-renewal-be/internal/repository/specification"
	"contract-renewal-be/internal/repository/unitofwork"
	"contract-renewal-be/pkg/pacific"
)

// Day offsets before an event date at which a reminder goes out.
var daysToNotify = []int{60, 30, 15, 1}

type IReminderService interface {
	// Run scans upcoming events and queues one reminder per event that
	// hits a notify window today. Sending happens asynchronously.
	Run(ctx context.Context) (*dto.ReminderRunResponse, error)
}

type reminderService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	clock      pacific.Clock
	logger     logger.ILogger
}

func NewReminderService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	clock pacific.Clock,
	logger logger.ILogger,
) IReminderService {
	return &reminderService{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (s *reminderService) Run(ctx context.Context) (*dto.ReminderRunResponse, error) {
	today := s.clock.Today()
	res := &dto.ReminderRunResponse{}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	evts, err := uow.RenewalEventRepository().FindAll(ctx,
		specification.EventDateAfter{After: today},
		specification.NotDone{},
		specification.NotResolved{},
	)
	if err != nil {
		return nil, err
	}
	res.Scanned = len(evts)
	if len(evts) == 0 {
		return res, nil
	}

	owners, err := s.ownerEmails(ctx, uow, evts)
	if err != nil {
		return nil, err
	}

	for _, e := range evts {
		daysLeft := pacific.DaysBetween(today, e.EventDate)
		if daysLeft <= 0 || !notifyWindow(daysLeft) {
			continue
		}
		if e.LastReminderSent != nil && pacific.DaysBetween(*e.LastReminderSent, today) == 0 {
			continue
		}

		to, ok := owners[e.AgreementId]
		if !ok || to == "" {
			continue
		}

		payload, err := json.Marshal(dto.ReminderMessage{
			EventId:    e.Id,
			To:         to,
			EventTitle: e.Title,
			VendorName: e.VendorName,
			EventDate:  e.EventDate,
			DaysLeft:   daysLeft,
		})
		if err != nil {
			return nil, err
		}
		if err := s.publisher.Publish(ctx, payload); err != nil {
			s.logger.Error("ReminderService", "Failed to queue reminder", map[string]interface{}{
				"event_id": e.Id.String(),
				"error":    err.Error(),
			})
			continue
		}
		res.Queued++
	}

	s.logger.Info("ReminderService", "Reminder scan completed", map[string]interface{}{
		"scanned": res.Scanned,
		"queued":  res.Queued,
	})
	return res, nil
}

func (s *reminderService) ownerEmails(ctx context.Context, uow unitofwork.UnitOfWork, evts []*entity.RenewalEvent) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{}, len(evts))
	ids := make([]uuid.UUID, 0, len(evts))
	for _, e := range evts {
		if _, ok := seen[e.AgreementId]; ok {
			continue
		}
		seen[e.AgreementId] = struct{}{}
		ids = append(ids, e.AgreementId)
	}

	agreements, err := uow.AgreementRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	owners := make(map[uuid.UUID]string, len(agreements))
	for _, a := range agreements {
		owners[a.Id] = a.OwnerEmail
	}
	return owners, nil
}

func notifyWindow(daysLeft int) bool {
	for _, d := range daysToNotify {
		if d == daysLeft {
			return true
		}
	}
	return false
}
