// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. Accounts are created inactive with an
// activation code; both code columns are nullable and cleared on consumption.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	IsActive       bool      `gorm:"not null;default:false"`
	ActivationCode *string   `gorm:"type:varchar(16)"`
	ResetCode      *string   `gorm:"type:varchar(16)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the UUID primary key when the caller has not set one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
