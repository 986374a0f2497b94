// FILE: internal/service/event_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/pkg/logger"
	"contract-renewal-be/internal/pkg/mailer"
	"contract-renewal-be/internal/repository/specification"
	"contract-renewal-be/internal/repository/unitofwork"
	"contract-renewal-be/pkg/events"
	pktNats "contract-renewal-be/pkg/nats"
	"contract-renewal-be/pkg/storage"
)

var ErrEventNotFound = errors.New("event not found")

// How long a presigned contract link stays valid in a share email.
const sharePdfLinkTTL = 7 * 24 * time.Hour

type IEventService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.EventResponse, error)
	MarkDone(ctx context.Context, userId uuid.UUID, req *dto.MarkDoneRequest) (*dto.EventActionResponse, error)
	Assign(ctx context.Context, userId uuid.UUID, req *dto.AssignEventRequest) (*dto.EventActionResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Share(ctx context.Context, userId uuid.UUID, req *dto.ShareEventRequest) (*dto.ShareEventResponse, error)
	SharedLookup(ctx context.Context, token string) (*dto.SharedEventResponse, error)
	SendShareEmail(ctx context.Context, req *dto.ShareEmailRequest) error
}

type eventService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	storage        storage.ObjectStorage
	eventPublisher *pktNats.Publisher
	clientURL      string
	logger         logger.ILogger
}

func NewEventService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	objectStorage storage.ObjectStorage,
	eventPublisher *pktNats.Publisher,
	clientURL string,
	logger logger.ILogger,
) IEventService {
	return &eventService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		storage:        objectStorage,
		eventPublisher: eventPublisher,
		clientURL:      clientURL,
		logger:         logger,
	}
}

func (s *eventService) List(ctx context.Context, userId uuid.UUID) ([]*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evts, err := uow.RenewalEventRepository().FindAll(ctx,
		specification.EventOwnedByUser{UserID: userId},
		specification.OrderBy{Field: "event_date", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	agreements, err := uow.AgreementRepository().FindAll(ctx, specification.AgreementOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.Agreement, len(agreements))
	for _, a := range agreements {
		byId[a.Id] = a
	}

	res := make([]*dto.EventResponse, 0, len(evts))
	for _, e := range evts {
		item := &dto.EventResponse{
			Id:          e.Id,
			Title:       e.Title,
			EventDate:   e.EventDate,
			Kind:        e.Kind,
			IsDone:      e.IsDone,
			IsResolved:  e.IsResolved,
			Status:      e.Status,
			AutoRenews:  e.AutoRenews,
			AssignedTo:  e.AssignedTo,
			ShareToken:  e.ShareToken,
			Vendor:      e.VendorName,
			AgreementId: e.AgreementId,
		}
		if a, ok := byId[e.AgreementId]; ok {
			item.Agreement = a.Title
			item.FileKey = a.SourceFile
			item.Products = a.Products
			if item.Vendor == "" {
				item.Vendor = a.VendorName
			}
		}
		res = append(res, item)
	}

	return res, nil
}

func (s *eventService) MarkDone(ctx context.Context, userId uuid.UUID, req *dto.MarkDoneRequest) (*dto.EventActionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evt, err := s.ownedEvent(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	err = uow.RenewalEventRepository().UpdateFields(ctx, evt.Id, map[string]interface{}{
		"is_done": req.IsDone,
	})
	if err != nil {
		return nil, err
	}

	return &dto.EventActionResponse{Id: evt.Id}, nil
}

func (s *eventService) Assign(ctx context.Context, userId uuid.UUID, req *dto.AssignEventRequest) (*dto.EventActionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evt, err := s.ownedEvent(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	err = uow.RenewalEventRepository().UpdateFields(ctx, evt.Id, map[string]interface{}{
		"assigned_to": req.AssignedTo,
	})
	if err != nil {
		return nil, err
	}

	return &dto.EventActionResponse{Id: evt.Id}, nil
}

func (s *eventService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evt, err := s.ownedEvent(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	return uow.RenewalEventRepository().Delete(ctx, evt.Id)
}

func (s *eventService) Share(ctx context.Context, userId uuid.UUID, req *dto.ShareEventRequest) (*dto.ShareEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evt, err := s.ownedEvent(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	fields := map[string]interface{}{
		"share_token": token,
		"assigned_to": req.AssignedTo,
	}
	if req.SharedBy != "" {
		fields["shared_by"] = req.SharedBy
	}

	if err := uow.RenewalEventRepository().UpdateFields(ctx, evt.Id, fields); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evtMsg := events.BaseEvent{
			Type: events.TypeEventShared,
			Data: map[string]interface{}{
				"event_id":    evt.Id.String(),
				"assigned_to": req.AssignedTo,
			},
		}
		if err := s.eventPublisher.Publish(ctx, evtMsg); err != nil {
			s.logger.Warn("EventService", "Failed to publish share event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.ShareEventResponse{
		ShareToken: token,
		Link:       fmt.Sprintf("%s/events/share/%s", s.clientURL, token),
	}, nil
}

func (s *eventService) SharedLookup(ctx context.Context, token string) (*dto.SharedEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	evt, err := uow.RenewalEventRepository().FindOne(ctx, specification.ByShareToken{Token: token})
	if err != nil {
		return nil, err
	}
	if evt == nil {
		return nil, ErrEventNotFound
	}

	res := &dto.SharedEventResponse{
		Id:         evt.Id,
		Title:      evt.Title,
		EventDate:  evt.EventDate,
		Kind:       evt.Kind,
		IsDone:     evt.IsDone,
		AssignedTo: evt.AssignedTo,
		SharedBy:   evt.SharedBy,
		VendorName: evt.VendorName,
		AutoRenews: evt.AutoRenews,
	}

	agreement, err := uow.AgreementRepository().FindOne(ctx, specification.ByID{ID: evt.AgreementId})
	if err != nil {
		return nil, err
	}
	if agreement != nil {
		res.FileKey = agreement.SourceFile
		res.Products = agreement.Products
		if res.VendorName == "" {
			res.VendorName = agreement.VendorName
		}
	}

	return res, nil
}

func (s *eventService) SendShareEmail(ctx context.Context, req *dto.ShareEmailRequest) error {
	pdfURL := req.PdfUrl
	if pdfURL == "" && req.ShareLink != "" {
		// Look the event up through the link's token so the email can
		// carry a presigned contract URL without the client knowing it.
		if token := tokenFromShareLink(req.ShareLink); token != "" {
			if shared, err := s.SharedLookup(ctx, token); err == nil && shared.FileKey != "" {
				if signed, err := s.storage.PresignedURL(ctx, shared.FileKey, sharePdfLinkTTL); err == nil {
					pdfURL = signed
				}
			}
		}
	}

	err := s.emailService.SendShareInvite(
		req.To,
		req.FromName,
		req.From,
		req.EventTitle,
		req.VendorName,
		req.Products,
		req.ShareLink,
		pdfURL,
	)
	if err != nil {
		s.logger.Error("EventService", "Share email failed", map[string]interface{}{
			"to":    req.To,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// ownedEvent loads one event and enforces that it belongs to the user.
func (s *eventService) ownedEvent(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.RenewalEvent, error) {
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
	return evt, nil
}

func tokenFromShareLink(link string) string {
	const marker = "/events/share/"
	idx := strings.LastIndex(link, marker)
	if idx < 0 {
		return ""
	}
	return link[idx+len(marker):]
}
