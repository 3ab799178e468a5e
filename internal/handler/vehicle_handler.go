package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fleetrent/internal/errors"
	"fleetrent/internal/model"
	"fleetrent/internal/service"
)

// VehicleHandler handles vehicle endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// AddVehicleRequest represents a vehicle registration request.
type AddVehicleRequest struct {
	Name               string          `json:"name" validate:"required"`
	RegistrationNumber string          `json:"registration_number" validate:"required"`
	AllowedPassengers  int             `json:"allowed_passengers" validate:"required,gt=0"`
	RatePerKM          decimal.Decimal `json:"rate_per_km" validate:"required"`
	OwnerID            string          `json:"owner_id" validate:"required,uuid"`
}

// AssignDriverRequest represents a driver assignment request.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

// AddVehicle godoc
// @Summary Register a vehicle for an owner
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body AddVehicleRequest true "Vehicle data"
// @Success 201 {object} model.Vehicle
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /vehicles/add [post]
func (h *VehicleHandler) AddVehicle(c echo.Context) error {
	var req AddVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	if req.RatePerKM.LessThanOrEqual(decimal.Zero) {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "rate_per_km must be positive",
			Code:  "VALIDATION_ERROR",
		})
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid owner_id",
			Code:  "INVALID_UUID",
		})
	}

	vehicle := &model.Vehicle{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		AllowedPassengers:  req.AllowedPassengers,
		RatePerKM:          req.RatePerKM,
		OwnerID:            ownerID,
	}
	created, err := h.vehicleService.AddVehicle(c.Request().Context(), vehicle)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// AssignDriver godoc
// @Summary Assign a driver to a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicleId path string true "Vehicle ID"
// @Param request body AssignDriverRequest true "Driver assignment"
// @Success 200 {object} model.Vehicle
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /vehicles/assign-driver/{vehicleId} [patch]
func (h *VehicleHandler) AssignDriver(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid vehicle id",
			Code:  "INVALID_UUID",
		})
	}

	var req AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid driver_id",
			Code:  "INVALID_UUID",
		})
	}

	vehicle, err := h.vehicleService.AssignDriver(c.Request().Context(), vehicleID, driverID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, vehicle)
}

// GetVehicle godoc
// @Summary Get vehicle by id
// @Tags vehicles
// @Produce json
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {object} model.Vehicle
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /vehicles/{vehicleId} [get]
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid vehicle id",
			Code:  "INVALID_UUID",
		})
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, vehicle)
}
