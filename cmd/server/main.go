package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fleetrent/internal/cache"
	"fleetrent/internal/config"
	"fleetrent/internal/db"
	"fleetrent/internal/handler"
	"fleetrent/internal/middleware"
	"fleetrent/internal/model"
	"fleetrent/internal/repository"
	"fleetrent/internal/router"
	"fleetrent/internal/service"
)

// @title Fleet Rental API
// @version 1.0
// @description Fleet-rental booking API: user signup, vehicle registration, trip lifecycle, and analytics.
// @host localhost:8080
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.Trip{},
		&model.RequestLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)
	requestLogRepo := repository.NewRequestLogRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo)
	vehicleService := service.NewVehicleService(userRepo, vehicleRepo, cacheClient)
	tripService := service.NewTripService(userRepo, tripRepo, cacheClient)
	analyticsService := service.NewAnalyticsService(userRepo, vehicleRepo, tripRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	tripHandler := handler.NewTripHandler(tripService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// Initialize middleware components
	limiter := middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow, cfg.RateLimitIdleTTL)
	audit := middleware.NewAuditLogger(requestLogRepo)

	// Register routes
	router.Register(
		e,
		limiter,
		audit,
		userHandler,
		vehicleHandler,
		tripHandler,
		analyticsHandler,
	)

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include a scheme
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
