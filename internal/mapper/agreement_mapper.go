package mapper

import (
	"encoding/json"
	"time"

	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/model"

	"gorm.io/datatypes"
)

type AgreementMapper struct{}

func NewAgreementMapper() *AgreementMapper {
	return &AgreementMapper{}
}

func (m *AgreementMapper) ToEntity(a *model.Agreement) *entity.Agreement {
	if a == nil {
		return nil
	}

	var products []string
	if len(a.Products) > 0 {
		// Malformed JSON from an old row degrades to an empty list.
		_ = json.Unmarshal(a.Products, &products)
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Agreement{
		Id:                a.Id,
		UserId:            a.UserId,
		OwnerEmail:        a.OwnerEmail,
		VendorName:        a.VendorName,
		Title:             a.Title,
		EffectiveDate:     a.EffectiveDate,
		InitialTermMonths: a.InitialTermMonths,
		AutoRenews:        a.AutoRenews,
		RenewalTermMonths: a.RenewalTermMonths,
		NoticePeriodDays:  a.NoticePeriodDays,
		RawText:           a.RawText,
		SourceFile:        a.SourceFile,
		Products:          products,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *AgreementMapper) ToModel(a *entity.Agreement) *model.Agreement {
	if a == nil {
		return nil
	}

	products := a.Products
	if products == nil {
		products = []string{}
	}
	productsJSON, _ := json.Marshal(products)

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Agreement{
		Id:                a.Id,
		UserId:            a.UserId,
		OwnerEmail:        a.OwnerEmail,
		VendorName:        a.VendorName,
		Title:             a.Title,
		EffectiveDate:     a.EffectiveDate,
		InitialTermMonths: a.InitialTermMonths,
		AutoRenews:        a.AutoRenews,
		RenewalTermMonths: a.RenewalTermMonths,
		NoticePeriodDays:  a.NoticePeriodDays,
		RawText:           a.RawText,
		SourceFile:        a.SourceFile,
		Products:          datatypes.JSON(productsJSON),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *AgreementMapper) ToEntities(agreements []*model.Agreement) []*entity.Agreement {
	entities := make([]*entity.Agreement, len(agreements))
	for i, a := range agreements {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
