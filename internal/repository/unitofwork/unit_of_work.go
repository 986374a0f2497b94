package unitofwork

import (
	"context"

	"contract-renewal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AgreementRepository() contract.AgreementRepository
	RenewalEventRepository() contract.RenewalEventRepository
}
