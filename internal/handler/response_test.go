package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"rwfw/backend/internal/handler"
	"rwfw/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{name: "validation", err: &service.ValidationError{Message: "Name is required."}, status: http.StatusBadRequest, expected: "Name is required."},
		{name: "wrapped_validation", err: fmt.Errorf("submit: %w", &service.ValidationError{Message: "Name too long."}), status: http.StatusBadRequest, expected: "Name too long."},
		{name: "not_configured", err: service.ErrNotConfigured, status: http.StatusInternalServerError, expected: "Service configuration error. Please contact help@example.org."},
		{name: "upstream", err: fmt.Errorf("%w: returned 503", service.ErrUpstream), status: http.StatusBadGateway, expected: "Unable to submit request. Please try again."},
		{name: "default", err: errors.New("dial tcp: connection refused"), status: http.StatusInternalServerError, expected: "Something went wrong. Please try again shortly."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			req := newJSONRequest(http.MethodPost, "/", nil)
			c, rec := newTestContext(e, req)

			err := handler.WriteServiceError(c, tc.err, "Unable to submit request. Please try again.", testSupportEmail)
			require.NoError(t, err)
			assertErrorResponse(t, rec, tc.status, tc.expected)
		})
	}
}

func TestErrorResponse(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req)

	err := handler.Error(c, http.StatusTooManyRequests, "Too many requests. Please wait before trying again.")
	require.NoError(t, err)
	assertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests. Please wait before trying again.")
}
