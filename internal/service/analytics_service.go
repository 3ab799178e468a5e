package service

import (
	"context"
	"fmt"

	"fleetrent/internal/model"
	"fleetrent/internal/repository"
)

// Counts holds the fleet-wide aggregate counts.
type Counts struct {
	Customers int64 `json:"customers"`
	Owners    int64 `json:"owners"`
	Drivers   int64 `json:"drivers"`
	Vehicles  int64 `json:"vehicles"`
	Trips     int64 `json:"trips"`
}

// AnalyticsService exposes read-only aggregate counts.
type AnalyticsService interface {
	GetCounts(ctx context.Context) (*Counts, error)
}

type analyticsService struct {
	userRepo    repository.UserRepository
	vehicleRepo repository.VehicleRepository
	tripRepo    repository.TripRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(userRepo repository.UserRepository, vehicleRepo repository.VehicleRepository, tripRepo repository.TripRepository) AnalyticsService {
	return &analyticsService{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		tripRepo:    tripRepo,
	}
}

// GetCounts returns exact counts per role plus vehicle and trip totals.
func (s *analyticsService) GetCounts(ctx context.Context) (*Counts, error) {
	counts := &Counts{}
	var err error

	if counts.Customers, err = s.userRepo.CountByRole(ctx, model.RoleCustomer); err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	if counts.Owners, err = s.userRepo.CountByRole(ctx, model.RoleOwner); err != nil {
		return nil, fmt.Errorf("count owners: %w", err)
	}
	if counts.Drivers, err = s.userRepo.CountByRole(ctx, model.RoleDriver); err != nil {
		return nil, fmt.Errorf("count drivers: %w", err)
	}
	if counts.Vehicles, err = s.vehicleRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	if counts.Trips, err = s.tripRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count trips: %w", err)
	}

	return counts, nil
}
