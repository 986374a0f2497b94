// FILE: internal/service/upload_service.go
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
	"contract-renewal-be/internal/repository/unitofwork"
	"contract-renewal-be/pkg/events"
	"contract-renewal-be/pkg/extract"
	pktNats "contract-renewal-be/pkg/nats"
	"contract-renewal-be/pkg/pacific"
	"contract-renewal-be/pkg/renewal"
	"contract-renewal-be/pkg/storage"
)

// ErrUnreadablePDF is returned when no usable text could be pulled out
// of the uploaded document.
var ErrUnreadablePDF = errors.New("pdf is corrupted or unreadable")

// Text shorter than this is treated as a failed extraction rather than
// a contract.
const minContractTextChars = 50

type IUploadService interface {
	ProcessUpload(ctx context.Context, userId uuid.UUID, ownerEmail string, req *dto.UploadAgreementRequest) (*dto.UploadAgreementResponse, error)
}

type uploadService struct {
	uowFactory     unitofwork.RepositoryFactory
	storage        storage.ObjectStorage
	extractor      extract.TextExtractor
	extraction     IExtractionService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewUploadService(
	uowFactory unitofwork.RepositoryFactory,
	objectStorage storage.ObjectStorage,
	extractor extract.TextExtractor,
	extraction IExtractionService,
	eventPublisher *pktNats.Publisher,
	logger logger.ILogger,
) IUploadService {
	return &uploadService{
		uowFactory:     uowFactory,
		storage:        objectStorage,
		extractor:      extractor,
		extraction:     extraction,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *uploadService) ProcessUpload(ctx context.Context, userId uuid.UUID, ownerEmail string, req *dto.UploadAgreementRequest) (*dto.UploadAgreementResponse, error) {
	data, err := s.storage.Download(ctx, req.FileKey)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", req.FileKey, err)
	}

	text := s.extractor.ExtractText(ctx, data)
	if len(strings.TrimSpace(text)) < minContractTextChars {
		s.logger.Warn("UploadService", "Extraction returned empty or too short text", map[string]interface{}{
			"file_key": req.FileKey,
			"length":   len(text),
		})
		return nil, ErrUnreadablePDF
	}

	fields, err := s.extraction.ExtractFields(ctx, text)
	if err != nil {
		return nil, err
	}

	agreement := s.buildAgreement(userId, ownerEmail, req, text, fields)

	drafts := renewal.ComputeEvents(renewal.Terms{
		EffectiveDate:     agreement.EffectiveDate,
		InitialTermMonths: agreement.InitialTermMonths,
		AutoRenews:        agreement.AutoRenews,
		RenewalTermMonths: agreement.RenewalTermMonths,
		NoticePeriodDays:  agreement.NoticePeriodDays,
	})

	renewalMonths := renewal.DefaultTermMonths
	if agreement.RenewalTermMonths != nil {
		renewalMonths = *agreement.RenewalTermMonths
	}

	newEvents := make([]*entity.RenewalEvent, 0, len(drafts))
	for _, d := range drafts {
		newEvents = append(newEvents, &entity.RenewalEvent{
			Id:                uuid.New(),
			AgreementId:       agreement.Id,
			Title:             d.Title,
			EventDate:         d.EventDate,
			Kind:              d.Kind,
			AutoRenews:        d.AutoRenews,
			VendorName:        agreement.VendorName,
			RenewalTermMonths: renewalMonths,
			CreatedAt:         time.Now(),
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AgreementRepository().Create(ctx, agreement); err != nil {
		return nil, err
	}
	if len(newEvents) > 0 {
		if err := uow.RenewalEventRepository().CreateBatch(ctx, newEvents); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeAgreementCreated,
			Data: map[string]interface{}{
				"agreement_id": agreement.Id.String(),
				"user_id":      userId.String(),
				"vendor_name":  agreement.VendorName,
				"events":       len(newEvents),
			},
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("UploadService", "Failed to publish agreement event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	s.logger.Info("UploadService", "Agreement processed", map[string]interface{}{
		"agreement_id": agreement.Id.String(),
		"vendor_name":  agreement.VendorName,
		"events":       len(newEvents),
	})

	return &dto.UploadAgreementResponse{
		AgreementId:   agreement.Id,
		Title:         agreement.Title,
		VendorName:    agreement.VendorName,
		EventsCreated: len(newEvents),
	}, nil
}

func (s *uploadService) buildAgreement(userId uuid.UUID, ownerEmail string, req *dto.UploadAgreementRequest, text string, fields *dto.ExtractedFields) *entity.Agreement {
	vendorName := fields.VendorName
	if vendorName == "" {
		vendorName = "Unknown Vendor"
	}

	var effectiveDate *time.Time
	if fields.EffectiveDate != nil {
		if parsed, err := pacific.ParseDate(*fields.EffectiveDate); err == nil {
			effectiveDate = &parsed
		} else {
			s.logger.Warn("UploadService", "Unparseable effective date from extraction", map[string]interface{}{
				"value": *fields.EffectiveDate,
			})
		}
	}

	return &entity.Agreement{
		Id:                uuid.New(),
		UserId:            userId,
		OwnerEmail:        ownerEmail,
		VendorName:        vendorName,
		Title:             req.FileName,
		EffectiveDate:     effectiveDate,
		InitialTermMonths: fields.InitialTermMonths,
		AutoRenews:        fields.AutoRenews,
		RenewalTermMonths: fields.RenewalTermMonths,
		NoticePeriodDays:  fields.NoticePeriodDays,
		RawText:           text,
		SourceFile:        req.FileKey,
		Products:          fields.Products,
		CreatedAt:         time.Now(),
	}
}
