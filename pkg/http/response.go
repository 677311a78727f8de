package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes data as-is with 200.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequestResponse writes a 400 error with validation details.
func BadRequestResponse(c echo.Context, message string, details []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// InternalServerErrorResponse writes a plain 500 error.
func InternalServerErrorResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: message,
	})
}

// UpstreamFailureResponse writes a 500 error carrying a fallback object
// so callers can degrade without a second round trip.
func UpstreamFailureResponse(c echo.Context, message string, fallback interface{}) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:    message,
		Fallback: fallback,
	})
}
