package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetrent/internal/model"
)

// VehicleRepository defines vehicle persistence operations.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	// FindByIDForUpdate takes a row-level lock; callers must hold an open
	// transaction for the lock to mean anything.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error
	AssignDriver(ctx context.Context, id, driverID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository.
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("is_available", available).Error
}

func (r *vehicleRepository) AssignDriver(ctx context.Context, id, driverID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("driver_id", driverID).Error
}

func (r *vehicleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Vehicle{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
