package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"rwfw/backend/internal/service"
)

const genericFailureMessage = "Something went wrong. Please try again shortly."

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error writes the JSON error body used by every API route.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func configurationErrorMessage(supportEmail string) string {
	return "Service configuration error. Please contact " + supportEmail + "."
}

// writeServiceError maps a service failure to its status and client message.
// upstreamMessage is the endpoint's own wording for a rejected upstream call.
func writeServiceError(c echo.Context, err error, upstreamMessage, supportEmail string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return Error(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrNotConfigured):
		return Error(c, http.StatusInternalServerError, configurationErrorMessage(supportEmail))
	case errors.Is(err, service.ErrUpstream):
		return Error(c, http.StatusBadGateway, upstreamMessage)
	default:
		return Error(c, http.StatusInternalServerError, genericFailureMessage)
	}
}
