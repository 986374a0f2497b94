package mapper

import (
	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/model"
	"contract-renewal-be/pkg/renewal"
)

type RenewalEventMapper struct{}

func NewRenewalEventMapper() *RenewalEventMapper {
	return &RenewalEventMapper{}
}

func (m *RenewalEventMapper) ToEntity(e *model.RenewalEvent) *entity.RenewalEvent {
	if e == nil {
		return nil
	}

	return &entity.RenewalEvent{
		Id:                e.Id,
		AgreementId:       e.AgreementId,
		Title:             e.Title,
		EventDate:         e.EventDate,
		Kind:              renewal.Kind(e.Kind),
		IsDone:            e.IsDone,
		IsResolved:        e.IsResolved,
		Status:            e.Status,
		AutoRenews:        e.AutoRenews,
		AssignedTo:        e.AssignedTo,
		SharedBy:          e.SharedBy,
		ShareToken:        e.ShareToken,
		VendorName:        e.VendorName,
		RenewalTermMonths: e.RenewalTermMonths,
		LastReminderSent:  e.LastReminderSent,
		CreatedAt:         e.CreatedAt,
	}
}

func (m *RenewalEventMapper) ToModel(e *entity.RenewalEvent) *model.RenewalEvent {
	if e == nil {
		return nil
	}

	return &model.RenewalEvent{
		Id:                e.Id,
		AgreementId:       e.AgreementId,
		Title:             e.Title,
		EventDate:         e.EventDate,
		Kind:              string(e.Kind),
		IsDone:            e.IsDone,
		IsResolved:        e.IsResolved,
		Status:            e.Status,
		AutoRenews:        e.AutoRenews,
		AssignedTo:        e.AssignedTo,
		SharedBy:          e.SharedBy,
		ShareToken:        e.ShareToken,
		VendorName:        e.VendorName,
		RenewalTermMonths: e.RenewalTermMonths,
		LastReminderSent:  e.LastReminderSent,
		CreatedAt:         e.CreatedAt,
	}
}

func (m *RenewalEventMapper) ToEntities(events []*model.RenewalEvent) []*entity.RenewalEvent {
	entities := make([]*entity.RenewalEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *RenewalEventMapper) ToModels(events []*entity.RenewalEvent) []*model.RenewalEvent {
	models := make([]*model.RenewalEvent, len(events))
	for i, e := range events {
		models[i] = m.ToModel(e)
	}
	return models
}
