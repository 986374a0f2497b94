package contract

import (
	"context"

	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/repository/specification"
)

type AgreementRepository interface {
	Create(ctx context.Context, agreement *entity.Agreement) error
	Update(ctx context.Context, agreement *entity.Agreement) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agreement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agreement, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
