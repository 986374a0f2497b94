package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadAgreementRequest struct {
	FileKey  string `json:"file_key" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
}

type UploadAgreementResponse struct {
	AgreementId   uuid.UUID `json:"agreement_id"`
	Title         string    `json:"title"`
	VendorName    string    `json:"vendor_name"`
	EventsCreated int       `json:"events_created"`
}

type AgreementResponse struct {
	Id                uuid.UUID  `json:"id"`
	VendorName        string     `json:"vendor_name"`
	Title             string     `json:"title"`
	EffectiveDate     *time.Time `json:"effective_date"`
	InitialTermMonths *int       `json:"initial_term_months"`
	AutoRenews        bool       `json:"auto_renews"`
	RenewalTermMonths *int       `json:"renewal_term_months"`
	NoticePeriodDays  *int       `json:"notice_period_days"`
	Products          []string   `json:"products"`
	SourceFile        string     `json:"source_file"`
	CreatedAt         time.Time  `json:"created_at"`
}
