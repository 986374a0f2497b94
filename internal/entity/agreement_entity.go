package entity

import (
	"time"

	"github.com/google/uuid"
)

// Agreement is one uploaded vendor contract with its extracted term
// metadata. Any field the extractor could not determine stays nil; the
// deriver degrades to an empty schedule when the effective date is
// missing.
type Agreement struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	OwnerEmail        string
	VendorName        string
	Title             string
	EffectiveDate     *time.Time
	InitialTermMonths *int
	AutoRenews        bool
	RenewalTermMonths *int
	NoticePeriodDays  *int
	RawText           string
	SourceFile        string
	Products          []string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
