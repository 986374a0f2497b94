package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgreementOwnedBy restricts to agreements belonging to one user.
type AgreementOwnedBy struct {
	UserID uuid.UUID
}

func (s AgreementOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agreements.user_id = ?", s.UserID)
}

// AutoRenewing selects agreements the daily sweep is interested in.
type AutoRenewing struct{}

func (s AutoRenewing) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("auto_renews = ?", true)
}
