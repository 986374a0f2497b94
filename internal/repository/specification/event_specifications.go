package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByAgreementID restricts to events of one agreement.
type ByAgreementID struct {
	AgreementID uuid.UUID
}

func (s ByAgreementID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agreement_id = ?", s.AgreementID)
}

// EventByID filters on the event's own id with a qualified column so
// it stays unambiguous next to the ownership join.
type EventByID struct {
	ID uuid.UUID
}

func (s EventByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("renewal_events.id = ?", s.ID)
}

// ByShareToken looks an event up through its opaque share token.
type ByShareToken struct {
	Token string
}

func (s ByShareToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("share_token = ?", s.Token)
}

// EventOwnedByUser joins through the owning agreement to enforce
// ownership on event mutations.
type EventOwnedByUser struct {
	UserID uuid.UUID
}

func (s EventOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN agreements ON agreements.id = renewal_events.agreement_id").
		Where("agreements.user_id = ?", s.UserID)
}

// NotDone excludes completed events.
type NotDone struct{}

func (s NotDone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_done = ?", false)
}

// NotResolved excludes events whose cycle was already superseded.
type NotResolved struct{}

func (s NotResolved) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_resolved = ?", false)
}

// EventDateAfter keeps events strictly later than a cut-off.
type EventDateAfter struct {
	After time.Time
}

func (s EventDateAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_date > ?", s.After)
}

// LatestEventFirst orders newest event date first. Used with FindOne to
// fetch the current cycle's boundary event.
type LatestEventFirst struct{}

func (s LatestEventFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("event_date DESC")
}
