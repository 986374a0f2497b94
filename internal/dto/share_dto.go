package dto

import (
	"time"

	"github.com/google/uuid"

	"contract-renewal-be/pkg/renewal"
)

type ShareEventRequest struct {
	Id         uuid.UUID
	AssignedTo string `json:"assigned_to" validate:"required,email"`
	SharedBy   string `json:"shared_by" validate:"omitempty,email"`
}

type ShareEventResponse struct {
	ShareToken string `json:"share_token"`
	Link       string `json:"link"`
}

type SharedEventResponse struct {
	Id         uuid.UUID    `json:"id"`
	Title      string       `json:"title"`
	EventDate  time.Time    `json:"event_date"`
	Kind       renewal.Kind `json:"kind"`
	IsDone     bool         `json:"is_done"`
	AssignedTo *string      `json:"assigned_to"`
	SharedBy   *string      `json:"shared_by"`
	VendorName string       `json:"vendor_name"`
	FileKey    string       `json:"file_key"`
	Products   []string     `json:"products"`
	AutoRenews bool         `json:"auto_renews"`
}

type ShareEmailRequest struct {
	To         string   `json:"to" validate:"required,email"`
	From       string   `json:"from" validate:"omitempty,email"`
	FromName   string   `json:"from_name"`
	ShareLink  string   `json:"share_link" validate:"required,url"`
	EventTitle string   `json:"event_title" validate:"required"`
	VendorName string   `json:"vendor_name"`
	Products   []string `json:"products"`
	PdfUrl     string   `json:"pdf_url"`
}
