package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetrent/internal/cache"
	"fleetrent/internal/errors"
	"fleetrent/internal/model"
	"fleetrent/internal/repository"
)

const vehicleCacheTTL = 5 * time.Minute

func vehicleCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("vehicle:%s", id.String())
}

// VehicleService handles vehicle registration, driver assignment, and reads.
type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error)
	AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) (*model.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
}

type vehicleService struct {
	userRepo    repository.UserRepository
	vehicleRepo repository.VehicleRepository
	cache       *cache.Client
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(userRepo repository.UserRepository, vehicleRepo repository.VehicleRepository, cache *cache.Client) VehicleService {
	return &vehicleService{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		cache:       cache,
	}
}

// AddVehicle registers a vehicle for an owner. The owner must exist and
// carry the owner role.
func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	owner, err := s.userRepo.FindByID(ctx, vehicle.OwnerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	if owner.Role != model.RoleOwner {
		return nil, errors.ErrNotOwner
	}

	vehicle.IsAvailable = true
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

// AssignDriver sets the vehicle's driver. The driver must exist and carry
// the driver role.
func (s *vehicleService) AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) (*model.Vehicle, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}

	driver, err := s.userRepo.FindByID(ctx, driverID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find driver: %w", err)
	}
	if driver.Role != model.RoleDriver {
		return nil, errors.ErrNotDriver
	}

	if err := s.vehicleRepo.AssignDriver(ctx, vehicleID, driverID); err != nil {
		return nil, fmt.Errorf("assign driver: %w", err)
	}

	_ = s.cache.Delete(ctx, vehicleCacheKey(vehicleID))
	return s.vehicleRepo.FindByID(ctx, vehicleID)
}

// GetVehicle fetches a vehicle by ID with cache-aside reads.
func (s *vehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	if data, _ := s.cache.Get(ctx, vehicleCacheKey(id)); data != nil {
		var cached model.Vehicle
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVehicleNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(vehicle); err == nil {
		_ = s.cache.Set(ctx, vehicleCacheKey(id), payload, vehicleCacheTTL)
	}
	return vehicle, nil
}
