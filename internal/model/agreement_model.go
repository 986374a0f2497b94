package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Agreement struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID  `gorm:"type:uuid;not null;index"`
	OwnerEmail        string     `gorm:"type:varchar(255)"`
	VendorName        string     `gorm:"type:varchar(255)"`
	Title             string     `gorm:"type:varchar(255)"`
	EffectiveDate     *time.Time `gorm:"type:timestamptz"`
	InitialTermMonths *int
	AutoRenews        bool `gorm:"not null;default:false;index"`
	RenewalTermMonths *int
	NoticePeriodDays  *int
	RawText           string         `gorm:"type:text"`
	SourceFile        string         `gorm:"type:varchar(512)"`
	Products          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (Agreement) TableName() string {
	return "agreements"
}
