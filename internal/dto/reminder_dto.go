package dto

import (
	"time"

	"github.com/google/uuid"
)

// ReminderMessage is the payload queued per due event; the mail
// dispatcher consumes it.
type ReminderMessage struct {
	EventId    uuid.UUID `json:"event_id"`
	To         string    `json:"to"`
	EventTitle string    `json:"event_title"`
	VendorName string    `json:"vendor_name"`
	EventDate  time.Time `json:"event_date"`
	DaysLeft   int       `json:"days_left"`
}
