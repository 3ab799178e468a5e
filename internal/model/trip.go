package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trip represents one rental of a vehicle by a customer. TripCost is
// write-once: it stays zero until the trip is ended, at which point it is
// set to distance_km * the vehicle's rate_per_km.
type Trip struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CustomerID  uuid.UUID       `json:"customer_id" gorm:"type:char(36);not null;index"`
	VehicleID   uuid.UUID       `json:"vehicle_id" gorm:"type:char(36);not null;index"`
	StartDate   time.Time       `json:"start_date" gorm:"not null"`
	EndDate     time.Time       `json:"end_date" gorm:"not null"`
	Location    string          `json:"location" gorm:"size:255;not null"`
	DistanceKM  decimal.Decimal `json:"distance_km" gorm:"type:decimal(20,2);not null"`
	Passengers  int             `json:"passengers" gorm:"not null"`
	TripCost    decimal.Decimal `json:"trip_cost" gorm:"type:decimal(20,2);not null;default:0"`
	IsCompleted bool            `json:"is_completed" gorm:"default:false;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Customer User    `json:"-" gorm:"foreignKey:CustomerID"`
	Vehicle  Vehicle `json:"-" gorm:"foreignKey:VehicleID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
