package contract

import (
	"context"

	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RenewalEventRepository interface {
	Create(ctx context.Context, event *entity.RenewalEvent) error
	CreateBatch(ctx context.Context, events []*entity.RenewalEvent) error
	Update(ctx context.Context, event *entity.RenewalEvent) error
	// UpdateFields patches a subset of columns on one event.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RenewalEvent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RenewalEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
