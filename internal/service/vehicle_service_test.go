package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fleetrent/internal/errors"
	"fleetrent/internal/model"
)

func TestVehicleService_AddVehicle(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(users *MockUserRepository, vehicles *MockVehicleRepository)
		expectedError error
	}{
		{
			name: "successful registration starts available",
			setupMock: func(users *MockUserRepository, vehicles *MockVehicleRepository) {
				users.On("FindByID", mock.Anything, ownerID).Return(&model.User{ID: ownerID, Role: model.RoleOwner}, nil)
				vehicles.On("Create", mock.Anything, mock.MatchedBy(func(v *model.Vehicle) bool {
					return v.IsAvailable
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "owner not found",
			setupMock: func(users *MockUserRepository, vehicles *MockVehicleRepository) {
				users.On("FindByID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name: "role gating rejects non-owner",
			setupMock: func(users *MockUserRepository, vehicles *MockVehicleRepository) {
				users.On("FindByID", mock.Anything, ownerID).Return(&model.User{ID: ownerID, Role: model.RoleCustomer}, nil)
			},
			expectedError: errors.ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			vehicles := new(MockVehicleRepository)
			tt.setupMock(users, vehicles)

			svc := NewVehicleService(users, vehicles, nil)
			created, err := svc.AddVehicle(context.Background(), &model.Vehicle{
				Name:               "City Hatchback",
				RegistrationNumber: "FLT-0001",
				AllowedPassengers:  4,
				RatePerKM:          decimal.NewFromInt(10),
				OwnerID:            ownerID,
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.True(t, created.IsAvailable)
			}

			users.AssertExpectations(t)
			vehicles.AssertExpectations(t)
		})
	}
}

func TestVehicleService_AssignDriver(t *testing.T) {
	vehicleID := uuid.New()
	driverID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(users *MockUserRepository, vehicles *MockVehicleRepository)
		expectedError error
	}{
		{
			name: "successful assignment",
			setupMock: func(users *MockUserRepository, vehicles *MockVehicleRepository) {
				vehicles.On("FindByID", mock.Anything, vehicleID).Return(&model.Vehicle{ID: vehicleID}, nil).Once()
				users.On("FindByID", mock.Anything, driverID).Return(&model.User{ID: driverID, Role: model.RoleDriver}, nil)
				vehicles.On("AssignDriver", mock.Anything, vehicleID, driverID).Return(nil)
				vehicles.On("FindByID", mock.Anything, vehicleID).Return(&model.Vehicle{ID: vehicleID, DriverID: &driverID}, nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "vehicle not found",
			setupMock: func(users *MockUserRepository, vehicles *MockVehicleRepository) {
				vehicles.On("FindByID", mock.Anything, vehicleID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrVehicleNotFound,
		},
		{
			name: "driver not found",
			setupMock: func(users *MockUserRepository, vehicles *MockVehicleRepository) {
				vehicles.On("FindByID", mock.Anything, vehicleID).Return(&model.Vehicle{ID: vehicleID}, nil)
				users.On("FindByID", mock.Anything, driverID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name: "role gating rejects non-driver",
			setupMock: func(users *MockUserRepository, vehicles *MockVehicleRepository) {
				vehicles.On("FindByID", mock.Anything, vehicleID).Return(&model.Vehicle{ID: vehicleID}, nil)
				users.On("FindByID", mock.Anything, driverID).Return(&model.User{ID: driverID, Role: model.RoleOwner}, nil)
			},
			expectedError: errors.ErrNotDriver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			vehicles := new(MockVehicleRepository)
			tt.setupMock(users, vehicles)

			svc := NewVehicleService(users, vehicles, nil)
			vehicle, err := svc.AssignDriver(context.Background(), vehicleID, driverID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, vehicle)
			} else {
				assert.NoError(t, err)
				if assert.NotNil(t, vehicle.DriverID) {
					assert.Equal(t, driverID, *vehicle.DriverID)
				}
			}

			users.AssertExpectations(t)
			vehicles.AssertExpectations(t)
		})
	}
}
