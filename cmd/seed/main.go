package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetrent/internal/config"
	"fleetrent/internal/db"
	"fleetrent/internal/model"
	"fleetrent/internal/repository"
)

// seedUser describes one demo user to create.
type seedUser struct {
	name  string
	email string
	role  model.Role
}

var seedUsers = []seedUser{
	{name: "Olive Owner", email: "owner@example.com", role: model.RoleOwner},
	{name: "Dana Driver", email: "driver@example.com", role: model.RoleDriver},
	{name: "Casey Customer", email: "customer@example.com", role: model.RoleCustomer},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Vehicle{}, &model.Trip{}, &model.RequestLog{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)

	users, created, err := ensureUsers(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users ready (%d created)", created)

	owner := users["owner@example.com"]
	driver := users["driver@example.com"]

	vehicles := []model.Vehicle{
		{
			Name:               "City Hatchback",
			RegistrationNumber: "FLT-0001",
			AllowedPassengers:  4,
			RatePerKM:          decimal.NewFromInt(10),
			OwnerID:            owner.ID,
			DriverID:           &driver.ID,
			IsAvailable:        true,
		},
		{
			Name:               "Tour Van",
			RegistrationNumber: "FLT-0002",
			AllowedPassengers:  8,
			RatePerKM:          decimal.NewFromFloat(14.5),
			OwnerID:            owner.ID,
			IsAvailable:        true,
		},
	}

	seeded := 0
	for i := range vehicles {
		if err := vehicleRepo.Create(ctx, &vehicles[i]); err != nil {
			// Duplicate registration numbers mean the fleet is already seeded
			log.Printf("Skipping vehicle %s: %v", vehicles[i].RegistrationNumber, err)
			continue
		}
		seeded++
	}

	log.Printf("Seed completed: %d vehicles created", seeded)
}

// ensureUsers creates the demo users that do not exist yet and returns all of
// them keyed by email.
func ensureUsers(ctx context.Context, repo repository.UserRepository) (map[string]*model.User, int, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		return nil, 0, fmt.Errorf("hash password: %w", err)
	}

	out := make(map[string]*model.User, len(seedUsers))
	created := 0
	for _, su := range seedUsers {
		existing, err := repo.FindByEmail(ctx, su.email)
		if err == nil {
			out[su.email] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, created, fmt.Errorf("check user %s: %w", su.email, err)
		}

		user := &model.User{
			Name:     su.name,
			Email:    su.email,
			Password: string(hashed),
			Role:     su.role,
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, created, fmt.Errorf("create user %s: %w", su.email, err)
		}
		out[su.email] = user
		created++
	}

	return out, created, nil
}
