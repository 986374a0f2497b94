package implementation

import (
	"context"
	"errors"

	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/mapper"
	"contract-renewal-be/internal/model"
	"contract-renewal-be/internal/repository/contract"
	"contract-renewal-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AgreementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgreementMapper
}

func NewAgreementRepository(db *gorm.DB) contract.AgreementRepository {
	return &AgreementRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgreementMapper(),
	}
}

func (r *AgreementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgreementRepositoryImpl) Create(ctx context.Context, agreement *entity.Agreement) error {
	m := r.mapper.ToModel(agreement)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*agreement = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgreementRepositoryImpl) Update(ctx context.Context, agreement *entity.Agreement) error {
	m := r.mapper.ToModel(agreement)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*agreement = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgreementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agreement, error) {
	var m model.Agreement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AgreementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agreement, error) {
	var models []*model.Agreement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AgreementRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Agreement{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
