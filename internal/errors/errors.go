package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotOrderOwner is returned when a caller acts on an order that is not theirs.
	ErrNotOrderOwner = errors.New("order does not belong to caller")
	// ErrOrderNotCancellable is returned when an order has already shipped or been delivered.
	ErrOrderNotCancellable = errors.New("order has shipped and can no longer be cancelled")
	// ErrOrderAlreadyCancelled is returned when cancelling an already cancelled order.
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")
	// ErrInvalidOrderStatus is returned for a status outside the allowed set.
	ErrInvalidOrderStatus = errors.New("invalid order status")
	// ErrInvalidRole is returned for a role outside the allowed set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrNoUpdateFields is returned when an update request carries no fields.
	ErrNoUpdateFields = errors.New("no fields to update")
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNotOrderOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_ORDER_OWNER")
	case errors.Is(err, ErrOrderNotCancellable):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ORDER_NOT_CANCELLABLE")
	case errors.Is(err, ErrOrderAlreadyCancelled):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ORDER_ALREADY_CANCELLED")
	case errors.Is(err, ErrInvalidOrderStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ORDER_STATUS")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrNoUpdateFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_UPDATE_FIELDS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
