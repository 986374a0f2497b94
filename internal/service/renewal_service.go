// FILE: internal/service/renewal_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/pkg/logger"
	"contract-renewal-be/internal/repository/specification"
	"contract-renewal-be/internal/repository/unitofwork"
	"contract-renewal-be/pkg/events"
	"contract-renewal-be/pkg/guard"
	pktNats "contract-renewal-be/pkg/nats"
	"contract-renewal-be/pkg/pacific"
	"contract-renewal-be/pkg/renewal"
)

type IRenewalService interface {
	// Sweep advances every auto-renewing agreement whose current cycle
	// boundary has passed. Safe to run repeatedly within one day.
	Sweep(ctx context.Context) (*dto.AutoRenewSweepResponse, error)
	Renew(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.RenewEventResponse, error)
	CancelAuto(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EventActionResponse, error)
}

type renewalService struct {
	uowFactory     unitofwork.RepositoryFactory
	sweepGuard     guard.SweepGuard
	clock          pacific.Clock
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewRenewalService(
	uowFactory unitofwork.RepositoryFactory,
	sweepGuard guard.SweepGuard,
	clock pacific.Clock,
	eventPublisher *pktNats.Publisher,
	logger logger.ILogger,
) IRenewalService {
	return &renewalService{
		uowFactory:     uowFactory,
		sweepGuard:     sweepGuard,
		clock:          clock,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *renewalService) Sweep(ctx context.Context) (*dto.AutoRenewSweepResponse, error) {
	today := s.clock.Today()
	res := &dto.AutoRenewSweepResponse{}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	agreements, err := uow.AgreementRepository().FindAll(ctx, specification.AutoRenewing{})
	if err != nil {
		return nil, err
	}
	res.Scanned = len(agreements)

	for _, ag := range agreements {
		advanced, err := s.advanceAgreement(ctx, ag, today)
		if err != nil {
			res.Failed++
			s.logger.Error("RenewalService", "Cycle advance failed", map[string]interface{}{
				"agreement_id": ag.Id.String(),
				"vendor_name":  ag.VendorName,
				"error":        err.Error(),
			})
			continue
		}
		if advanced {
			res.Advanced++
		} else {
			res.Skipped++
		}
	}

	s.logger.Info("RenewalService", "Auto-renew sweep completed", map[string]interface{}{
		"scanned":  res.Scanned,
		"advanced": res.Advanced,
		"skipped":  res.Skipped,
		"failed":   res.Failed,
	})
	return res, nil
}

// advanceAgreement rolls one agreement into its next cycle. Returns
// false when the agreement is not due or another runner holds the
// day's guard.
func (s *renewalService) advanceAgreement(ctx context.Context, ag *entity.Agreement, today time.Time) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	latest, err := uow.RenewalEventRepository().FindOne(ctx,
		specification.ByAgreementID{AgreementID: ag.Id},
		specification.LatestEventFirst{},
	)
	if err != nil {
		return false, err
	}
	if latest == nil || latest.EventDate.After(today) || latest.IsDone || latest.IsResolved {
		return false, nil
	}

	acquired, err := s.sweepGuard.TryAcquire(ctx, ag.Id, today)
	if err != nil {
		return false, err
	}
	if !acquired {
		return false, nil
	}

	base := today
	if ag.EffectiveDate != nil {
		base = *ag.EffectiveDate
	}
	months := renewal.DefaultTermMonths
	if ag.RenewalTermMonths != nil {
		months = *ag.RenewalTermMonths
	}
	nextStart := pacific.AddMonths(base, months)

	drafts := renewal.ComputeEvents(renewal.Terms{
		EffectiveDate:     &nextStart,
		InitialTermMonths: ag.InitialTermMonths,
		AutoRenews:        true,
		RenewalTermMonths: ag.RenewalTermMonths,
		NoticePeriodDays:  ag.NoticePeriodDays,
	})

	newEvents := make([]*entity.RenewalEvent, 0, len(drafts))
	for _, d := range drafts {
		newEvents = append(newEvents, &entity.RenewalEvent{
			Id:                uuid.New(),
			AgreementId:       ag.Id,
			Title:             d.Title,
			EventDate:         d.EventDate,
			Kind:              d.Kind,
			AutoRenews:        d.AutoRenews,
			VendorName:        ag.VendorName,
			RenewalTermMonths: months,
			CreatedAt:         time.Now(),
		})
	}

	if err := s.applyAdvance(ctx, ag, latest.Id, nextStart, newEvents); err != nil {
		// Free the day's guard so a retry within the same day can
		// pick this agreement up again.
		if relErr := s.sweepGuard.Release(ctx, ag.Id, today); relErr != nil {
			s.logger.Warn("RenewalService", "Guard release failed", map[string]interface{}{
				"agreement_id": ag.Id.String(),
				"error":        relErr.Error(),
			})
		}
		return false, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeAutoRenewSwept,
			Data: map[string]interface{}{
				"agreement_id": ag.Id.String(),
				"vendor_name":  ag.VendorName,
				"next_start":   nextStart.Format(time.RFC3339),
				"events":       len(newEvents),
			},
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("RenewalService", "Failed to publish sweep event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return true, nil
}

// applyAdvance is the transactional core of the sweep: resolve the old
// boundary event, move the agreement's effective date forward, insert
// the next cycle. All or nothing.
func (s *renewalService) applyAdvance(ctx context.Context, ag *entity.Agreement, latestId uuid.UUID, nextStart time.Time, newEvents []*entity.RenewalEvent) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RenewalEventRepository().UpdateFields(ctx, latestId, map[string]interface{}{
		"is_resolved": true,
	}); err != nil {
		return err
	}

	ag.EffectiveDate = &nextStart
	if err := uow.AgreementRepository().Update(ctx, ag); err != nil {
		return err
	}

	if len(newEvents) > 0 {
		if err := uow.RenewalEventRepository().CreateBatch(ctx, newEvents); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *renewalService) Renew(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.RenewEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evt, err := uow.RenewalEventRepository().FindOne(ctx,
		specification.EventByID{ID: id},
		specification.EventOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if evt == nil {
		return nil, ErrEventNotFound
	}

	nextDate := pacific.AddMonths(evt.EventDate, evt.NextRenewalMonths())
	successor := &entity.RenewalEvent{
		Id:                uuid.New(),
		AgreementId:       evt.AgreementId,
		Title:             "Renewal - " + nextDate.Format("January 2, 2006"),
		EventDate:         nextDate,
		Kind:              evt.Kind,
		AutoRenews:        evt.AutoRenews,
		VendorName:        evt.VendorName,
		RenewalTermMonths: evt.RenewalTermMonths,
		CreatedAt:         time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RenewalEventRepository().Create(ctx, successor); err != nil {
		return nil, err
	}
	if err := uow.RenewalEventRepository().UpdateFields(ctx, evt.Id, map[string]interface{}{
		"is_resolved": true,
		"status":      entity.EventStatusRenewed,
	}); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evtMsg := events.BaseEvent{
			Type: events.TypeEventRenewed,
			Data: map[string]interface{}{
				"event_id":  evt.Id.String(),
				"next_id":   successor.Id.String(),
				"next_date": nextDate.Format(time.RFC3339),
			},
		}
		if err := s.eventPublisher.Publish(ctx, evtMsg); err != nil {
			s.logger.Warn("RenewalService", "Failed to publish renew event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.RenewEventResponse{
		ResolvedId: evt.Id,
		NextId:     successor.Id,
		NextDate:   nextDate,
	}, nil
}

func (s *renewalService) CancelAuto(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EventActionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evt, err := uow.RenewalEventRepository().FindOne(ctx,
		specification.EventByID{ID: id},
		specification.EventOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if evt == nil {
		return nil, ErrEventNotFound
	}

	err = uow.RenewalEventRepository().UpdateFields(ctx, evt.Id, map[string]interface{}{
		"auto_renews": false,
		"status":      entity.EventStatusCanceled,
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evtMsg := events.BaseEvent{
			Type: events.TypeAutoRenewOff,
			Data: map[string]interface{}{
				"event_id": evt.Id.String(),
			},
		}
		if err := s.eventPublisher.Publish(ctx, evtMsg); err != nil {
			s.logger.Warn("RenewalService", "Failed to publish cancel event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.EventActionResponse{Id: evt.Id}, nil
}
