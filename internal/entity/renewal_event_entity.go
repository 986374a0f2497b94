package entity

import (
	"time"

	"github.com/google/uuid"

	"contract-renewal-be/pkg/renewal"
)

// Lifecycle status tags persisted on an event once it leaves the
// active state.
const (
	EventStatusRenewed  = "renewed"
	EventStatusCanceled = "canceled"
)

// RenewalEvent is one dated action item derived from an agreement
// cycle. An event has no existence independent of its agreement.
//
// IsResolved means the cycle this event belonged to has been superseded
// by a newly generated one; resolved events never generate further
// events.
type RenewalEvent struct {
	Id          uuid.UUID
	AgreementId uuid.UUID
	Title       string
	EventDate   time.Time
	Kind        renewal.Kind
	IsDone      bool
	IsResolved  bool
	Status      string
	// AutoRenews is the agreement's flag as observed when the cycle was
	// computed. Per-cycle snapshot, independently cancelable.
	AutoRenews        bool
	AssignedTo        *string
	SharedBy          *string
	ShareToken        *string
	VendorName        string
	RenewalTermMonths int
	LastReminderSent  *time.Time
	CreatedAt         time.Time
}

// NextRenewalMonths is the term length used when this event is rolled
// into a new cycle.
func (e *RenewalEvent) NextRenewalMonths() int {
	if e.RenewalTermMonths > 0 {
		return e.RenewalTermMonths
	}
	return renewal.DefaultTermMonths
}
