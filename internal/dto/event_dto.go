package dto

import (
	"time"

	"github.com/google/uuid"

	"contract-renewal-be/pkg/renewal"
)

type EventResponse struct {
	Id          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	EventDate   time.Time    `json:"event_date"`
	Kind        renewal.Kind `json:"kind"`
	IsDone      bool         `json:"is_done"`
	IsResolved  bool         `json:"is_resolved"`
	Status      string       `json:"status"`
	AutoRenews  bool         `json:"auto_renews"`
	AssignedTo  *string      `json:"assigned_to"`
	ShareToken  *string      `json:"share_token"`
	Agreement   string       `json:"agreement"`
	Vendor      string       `json:"vendor"`
	FileKey     string       `json:"file_key"`
	Products    []string     `json:"products"`
	AgreementId uuid.UUID    `json:"agreement_id"`
}

type MarkDoneRequest struct {
	Id     uuid.UUID
	IsDone bool `json:"is_done"`
}

type AssignEventRequest struct {
	Id         uuid.UUID
	AssignedTo string `json:"assigned_to" validate:"required,email"`
}

type EventActionResponse struct {
	Id uuid.UUID `json:"id"`
}

type RenewEventResponse struct {
	ResolvedId uuid.UUID `json:"resolved_id"`
	NextId     uuid.UUID `json:"next_id"`
	NextDate   time.Time `json:"next_date"`
}
