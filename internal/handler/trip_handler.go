package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fleetrent/internal/errors"
	"fleetrent/internal/model"
	"fleetrent/internal/service"
)

// TripHandler handles trip lifecycle endpoints.
type TripHandler struct {
	tripService service.TripService
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(tripService service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest represents a trip creation request.
type CreateTripRequest struct {
	CustomerID string          `json:"customer_id" validate:"required,uuid"`
	VehicleID  string          `json:"vehicle_id" validate:"required,uuid"`
	StartDate  time.Time       `json:"start_date" validate:"required"`
	EndDate    time.Time       `json:"end_date" validate:"required"`
	Location   string          `json:"location" validate:"required"`
	DistanceKM decimal.Decimal `json:"distance_km" validate:"required"`
	Passengers int             `json:"passengers" validate:"required,gt=0"`
}

// UpdateTripRequest carries the externally mutable trip fields.
type UpdateTripRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Location  *string    `json:"location,omitempty"`
}

// CreateTrip godoc
// @Summary Book a vehicle for a customer
// @Tags trips
// @Accept json
// @Produce json
// @Param request body CreateTripRequest true "Trip data"
// @Success 201 {object} model.Trip
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/create [post]
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req CreateTripRequest
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
	if req.DistanceKM.LessThanOrEqual(decimal.Zero) {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "distance_km must be positive",
			Code:  "VALIDATION_ERROR",
		})
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid customer_id",
			Code:  "INVALID_UUID",
		})
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid vehicle_id",
			Code:  "INVALID_UUID",
		})
	}

	trip := &model.Trip{
		CustomerID: customerID,
		VehicleID:  vehicleID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Location:   req.Location,
		DistanceKM: req.DistanceKM,
		Passengers: req.Passengers,
	}
	created, err := h.tripService.CreateTrip(c.Request().Context(), trip)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// UpdateTrip godoc
// @Summary Update a trip's schedule or location
// @Tags trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body UpdateTripRequest true "Fields to update"
// @Success 200 {object} model.Trip
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/update/{tripId} [patch]
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid trip id",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	trip, err := h.tripService.UpdateTrip(c.Request().Context(), tripID, service.TripUpdate{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Location:  req.Location,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, trip)
}

// EndTrip godoc
// @Summary Complete a trip and compute its cost
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} model.Trip
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/end/{tripId} [patch]
func (h *TripHandler) EndTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid trip id",
			Code:  "INVALID_UUID",
		})
	}

	trip, err := h.tripService.EndTrip(c.Request().Context(), tripID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, trip)
}

// DeleteTrip godoc
// @Summary Delete a trip and release its vehicle
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/delete/{tripId} [delete]
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid trip id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.tripService.DeleteTrip(c.Request().Context(), tripID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "trip deleted"})
}

// GetTrip godoc
// @Summary Get trip by id
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} model.Trip
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/{tripId} [get]
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid trip id",
			Code:  "INVALID_UUID",
		})
	}

	trip, err := h.tripService.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, trip)
}
