package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fleetrent/internal/cache"
	"fleetrent/internal/errors"
	"fleetrent/internal/model"
	"fleetrent/internal/repository"
)

// TripUpdate carries the externally mutable trip fields. is_completed and
// trip_cost change only through EndTrip.
type TripUpdate struct {
	StartDate *time.Time
	EndDate   *time.Time
	Location  *string
}

// TripService is the trip/vehicle lifecycle coordinator. It keeps
// Vehicle.IsAvailable consistent with whether the vehicle has an open trip,
// and computes trip cost exactly once, at completion. Every multi-step
// operation runs in a single transaction with the vehicle row locked, so two
// racing creates against one vehicle serialize instead of double-booking.
type TripService interface {
	CreateTrip(ctx context.Context, trip *model.Trip) (*model.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, patch TripUpdate) (*model.Trip, error)
	EndTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

type tripService struct {
	userRepo repository.UserRepository
	tripRepo repository.TripRepository
	cache    *cache.Client
}

// NewTripService creates a new trip service.
func NewTripService(userRepo repository.UserRepository, tripRepo repository.TripRepository, cache *cache.Client) TripService {
	return &tripService{
		userRepo: userRepo,
		tripRepo: tripRepo,
		cache:    cache,
	}
}

// CreateTrip books a vehicle for a customer. The trip insert and the
// availability flip commit or roll back together.
func (s *tripService) CreateTrip(ctx context.Context, trip *model.Trip) (*model.Trip, error) {
	customer, err := s.userRepo.FindByID(ctx, trip.CustomerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer.Role != model.RoleCustomer {
		return nil, errors.ErrNotCustomer
	}

	err = s.tripRepo.WithTransaction(ctx, func(ctx context.Context, trips repository.TripRepository, vehicles repository.VehicleRepository) error {
		vehicle, err := vehicles.FindByIDForUpdate(ctx, trip.VehicleID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrVehicleNotFound
			}
			return fmt.Errorf("find vehicle: %w", err)
		}

		if !vehicle.IsAvailable {
			return errors.ErrVehicleUnavailable
		}
		if trip.Passengers > vehicle.AllowedPassengers {
			return errors.ErrTooManyPassengers
		}

		trip.TripCost = decimal.Zero
		trip.IsCompleted = false
		if err := trips.Create(ctx, trip); err != nil {
			return fmt.Errorf("create trip: %w", err)
		}
		if err := vehicles.UpdateAvailability(ctx, vehicle.ID, false); err != nil {
			return fmt.Errorf("mark vehicle unavailable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, vehicleCacheKey(trip.VehicleID))
	return trip, nil
}

// GetTrip fetches a trip by ID.
func (s *tripService) GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// UpdateTrip patches the allow-listed fields of an existing trip.
func (s *tripService) UpdateTrip(ctx context.Context, id uuid.UUID, patch TripUpdate) (*model.Trip, error) {
	if _, err := s.tripRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTripNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.StartDate != nil {
		fields["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		fields["end_date"] = *patch.EndDate
	}
	if patch.Location != nil {
		fields["location"] = *patch.Location
	}
	if len(fields) > 0 {
		if err := s.tripRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update trip: %w", err)
		}
	}

	return s.tripRepo.FindByID(ctx, id)
}

// EndTrip completes a trip: cost = distance_km * the vehicle's rate_per_km
// at the time of the call, and the vehicle is released. Ending twice fails;
// the first call's cost stands.
func (s *tripService) EndTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var ended *model.Trip
	err := s.tripRepo.WithTransaction(ctx, func(ctx context.Context, trips repository.TripRepository, vehicles repository.VehicleRepository) error {
		// The trip row is locked so the completed check reads committed
		// state; two racing EndTrip calls serialize and the loser fails.
		trip, err := trips.FindByIDForUpdate(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrTripNotFound
			}
			return fmt.Errorf("find trip: %w", err)
		}
		if trip.IsCompleted {
			return errors.ErrTripAlreadyCompleted
		}

		vehicle, err := vehicles.FindByIDForUpdate(ctx, trip.VehicleID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrVehicleNotFound
			}
			return fmt.Errorf("find vehicle: %w", err)
		}

		trip.TripCost = trip.DistanceKM.Mul(vehicle.RatePerKM)
		trip.IsCompleted = true
		if err := trips.Update(ctx, trip); err != nil {
			return fmt.Errorf("complete trip: %w", err)
		}
		if err := vehicles.UpdateAvailability(ctx, vehicle.ID, true); err != nil {
			return fmt.Errorf("release vehicle: %w", err)
		}
		ended = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, vehicleCacheKey(ended.VehicleID))
	return ended, nil
}

// DeleteTrip removes the trip row and releases its vehicle. A completed
// trip's vehicle is already available; the extra flip is harmless.
func (s *tripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	var vehicleID uuid.UUID
	err := s.tripRepo.WithTransaction(ctx, func(ctx context.Context, trips repository.TripRepository, vehicles repository.VehicleRepository) error {
		trip, err := trips.FindByIDForUpdate(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrTripNotFound
			}
			return fmt.Errorf("find trip: %w", err)
		}
		vehicleID = trip.VehicleID

		if err := trips.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete trip: %w", err)
		}
		if err := vehicles.UpdateAvailability(ctx, trip.VehicleID, true); err != nil {
			return fmt.Errorf("release vehicle: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, vehicleCacheKey(vehicleID))
	return nil
}
