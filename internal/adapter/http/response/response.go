// Package response provides standardized HTTP response builders for the booking API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`

	// Messages lists ordered passenger validation messages
	Messages []string `json:"messages,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeValidationError     = "validation_error"
	CodePassengerValidation = "passenger_validation_error"
	CodeSessionNotFound     = "session_not_found"
	CodeNotFound            = "not_found"
	CodeSearchFailed        = "search_failed"
	CodeTimeout             = "timeout"
	CodeInternalError       = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody    = "Failed to parse request body"
	MsgValidationFailed      = "Request validation failed"
	MsgPassengerValidation   = "Passenger details are incomplete"
	MsgSessionNotFound       = "Booking session not found or expired"
	MsgSearchFailed          = "Failed to fetch flights"
	MsgTimeout               = "Request timed out"
	MsgRequestCancelled      = "Request was cancelled"
	MsgInternalError         = "An unexpected error occurred"
	MsgMissingBookingContext = "Search and flight selection are required first"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 Created response with the given data.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
