package model

import (
	"time"

	"github.com/google/uuid"
)

type RenewalEvent struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgreementId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title             string    `gorm:"type:varchar(255);not null"`
	EventDate         time.Time `gorm:"type:timestamptz;not null;index"`
	Kind              string    `gorm:"type:varchar(16);not null"`
	IsDone            bool      `gorm:"not null;default:false"`
	IsResolved        bool      `gorm:"not null;default:false"`
	Status            string    `gorm:"type:varchar(32)"`
	AutoRenews        bool      `gorm:"not null;default:false"`
	AssignedTo        *string   `gorm:"type:varchar(255)"`
	SharedBy          *string   `gorm:"type:varchar(255)"`
	ShareToken        *string   `gorm:"type:varchar(64);uniqueIndex"`
	VendorName        string    `gorm:"type:varchar(255)"`
	RenewalTermMonths int       `gorm:"not null;default:12"`
	LastReminderSent  *time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (RenewalEvent) TableName() string {
	return "renewal_events"
}
