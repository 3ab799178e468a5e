package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vehicle represents a rentable fleet vehicle. IsAvailable is mutated
// exclusively by the trip lifecycle, never by a client-facing update.
type Vehicle struct {
	ID                 uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name               string          `json:"name" gorm:"size:255;not null"`
	RegistrationNumber string          `json:"registration_number" gorm:"uniqueIndex;size:64;not null"`
	AllowedPassengers  int             `json:"allowed_passengers" gorm:"not null"`
	IsAvailable        bool            `json:"is_available" gorm:"default:true;index"`
	DriverID           *uuid.UUID      `json:"driver_id,omitempty" gorm:"type:char(36);index"`
	RatePerKM          decimal.Decimal `json:"rate_per_km" gorm:"type:decimal(20,2);not null"`
	OwnerID            uuid.UUID       `json:"owner_id" gorm:"type:char(36);not null;index"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`

	// Relations
	Owner  User  `json:"-" gorm:"foreignKey:OwnerID"`
	Driver *User `json:"-" gorm:"foreignKey:DriverID"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
