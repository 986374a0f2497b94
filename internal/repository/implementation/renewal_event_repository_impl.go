package implementation

import (
	"context"
	"errors"

	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/mapper"
	"contract-renewal-be/internal/model"
	"contract-renewal-be/internal/repository/contract"
	"contract-renewal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RenewalEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RenewalEventMapper
}

func NewRenewalEventRepository(db *gorm.DB) contract.RenewalEventRepository {
	return &RenewalEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewRenewalEventMapper(),
	}
}

func (r *RenewalEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RenewalEventRepositoryImpl) Create(ctx context.Context, event *entity.RenewalEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *RenewalEventRepositoryImpl) CreateBatch(ctx context.Context, events []*entity.RenewalEvent) error {
	if len(events) == 0 {
		return nil
	}
	models := r.mapper.ToModels(events)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*events[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *RenewalEventRepositoryImpl) Update(ctx context.Context, event *entity.RenewalEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *RenewalEventRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.RenewalEvent{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *RenewalEventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RenewalEvent{}, id).Error
}

func (r *RenewalEventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RenewalEvent, error) {
	var m model.RenewalEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RenewalEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RenewalEvent, error) {
	var models []*model.RenewalEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RenewalEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RenewalEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
