// FILE: internal/service/agreement_service.go
package service

import (
	"context"

	"github.com/google/uuid"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/repository/specification"
	"contract-renewal-be/internal/repository/unitofwork"
)

type IAgreementService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.AgreementResponse, error)
}

type agreementService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAgreementService(uowFactory unitofwork.RepositoryFactory) IAgreementService {
	return &agreementService{
		uowFactory: uowFactory,
	}
}

func (s *agreementService) List(ctx context.Context, userId uuid.UUID) ([]*dto.AgreementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agreements, err := uow.AgreementRepository().FindAll(ctx,
		specification.AgreementOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AgreementResponse, 0, len(agreements))
	for _, a := range agreements {
		res = append(res, &dto.AgreementResponse{
			Id:                a.Id,
			VendorName:        a.VendorName,
			Title:             a.Title,
			EffectiveDate:     a.EffectiveDate,
			InitialTermMonths: a.InitialTermMonths,
			AutoRenews:        a.AutoRenews,
			RenewalTermMonths: a.RenewalTermMonths,
			NoticePeriodDays:  a.NoticePeriodDays,
			Products:          a.Products,
			SourceFile:        a.SourceFile,
			CreatedAt:         a.CreatedAt,
		})
	}
	return res, nil
}
