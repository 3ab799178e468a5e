package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fleetrent/internal/handler"
	"fleetrent/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	limiter *middleware.RateLimiter,
	audit *middleware.AuditLogger,
	userHandler *handler.UserHandler,
	vehicleHandler *handler.VehicleHandler,
	tripHandler *handler.TripHandler,
	analyticsHandler *handler.AnalyticsHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(audit.Middleware())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Users
	e.POST("/users/signup", userHandler.Signup)

	// Vehicles; only vehicle creation is rate limited
	e.POST("/vehicles/add", vehicleHandler.AddVehicle, limiter.Middleware())
	e.PATCH("/vehicles/assign-driver/:vehicleId", vehicleHandler.AssignDriver)
	e.GET("/vehicles/:vehicleId", vehicleHandler.GetVehicle)

	// Trips
	e.POST("/trips/create", tripHandler.CreateTrip)
	e.PATCH("/trips/update/:tripId", tripHandler.UpdateTrip)
	e.PATCH("/trips/end/:tripId", tripHandler.EndTrip)
	e.DELETE("/trips/delete/:tripId", tripHandler.DeleteTrip)
	e.GET("/trips/:tripId", tripHandler.GetTrip)

	// Analytics
	e.GET("/analytics", analyticsHandler.GetCounts)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.String(http.StatusNotFound, "This Request Is Not Found")
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
