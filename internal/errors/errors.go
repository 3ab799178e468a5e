package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrVehicleNotFound is returned when a referenced vehicle does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrTripNotFound is returned when a referenced trip does not exist.
	ErrTripNotFound = errors.New("trip not found")
	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidRole is returned when a signup role is not customer, owner, or driver.
	ErrInvalidRole = errors.New("invalid role")
	// ErrNotCustomer is returned when a trip is created for a non-customer user.
	ErrNotCustomer = errors.New("user is not a customer")
	// ErrNotOwner is returned when a vehicle is registered to a non-owner user.
	ErrNotOwner = errors.New("user is not an owner")
	// ErrNotDriver is returned when a non-driver user is assigned to a vehicle.
	ErrNotDriver = errors.New("user is not a driver")
	// ErrVehicleUnavailable is returned when the vehicle already has an open trip.
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	// ErrTooManyPassengers is returned when passengers exceed vehicle capacity.
	ErrTooManyPassengers = errors.New("passengers exceed vehicle capacity")
	// ErrTripAlreadyCompleted is returned when ending a trip twice.
	ErrTripAlreadyCompleted = errors.New("trip already completed")
	// ErrRateLimited is returned when a client exceeds the request limit.
	ErrRateLimited = errors.New("too many requests")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors surface
// the underlying message with a 500 status; nothing is retried and a failed
// request never crashes the process.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrVehicleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "VEHICLE_NOT_FOUND")
	case errors.Is(err, ErrTripNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRIP_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrNotCustomer):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_A_CUSTOMER")
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_AN_OWNER")
	case errors.Is(err, ErrNotDriver):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_A_DRIVER")
	case errors.Is(err, ErrVehicleUnavailable):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VEHICLE_UNAVAILABLE")
	case errors.Is(err, ErrTooManyPassengers):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOO_MANY_PASSENGERS")
	case errors.Is(err, ErrTripAlreadyCompleted):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TRIP_ALREADY_COMPLETED")
	case errors.Is(err, ErrRateLimited):
		return NewHTTPError(http.StatusTooManyRequests, err.Error(), "RATE_LIMITED")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
