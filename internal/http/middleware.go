package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rwfw/backend/internal/ratelimit"
	"rwfw/backend/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

type requestIDContextKey struct{}

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new one.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(RequestIDHeader, requestID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), requestIDContextKey{}, requestID)))
			return next(c)
		}
	}
}

// RequestID returns the id assigned by RequestIDMiddleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			args := []any{
				"module", "http",
				"action", "request",
				"resource", req.URL.Path,
				"method", req.Method,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"client_ip", c.RealIP(),
				"request_id", RequestID(req.Context()),
			}
			switch {
			case status >= 500:
				logger.Error("http request", append(args, "result", "failed")...)
			case status >= 400:
				logger.Warn("http request", append(args, "result", "rejected")...)
			default:
				logger.Debug("http request", append(args, "result", "ok")...)
			}
			return nil
		}
	}
}

// RateLimitMiddleware admits requests through limiter, keyed by the client IP echo
// derives with ratelimit.ClientIP. Rejected requests never reach the handler.
func RateLimitMiddleware(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if !limiter.Allow(key) {
				logger.Warn("rate limited", "module", "http", "action", "admit", "resource", c.Request().URL.Path, "result", "rejected", "client_ip", key)
				return c.JSON(nethttp.StatusTooManyRequests, map[string]string{"error": limiter.Policy().Message})
			}
			return next(c)
		}
	}
}

// errorHandler renders echo's own errors (unknown route, oversized body, panics)
// in the {"error": ...} shape the API uses everywhere.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := nethttp.StatusInternalServerError
	message := "Something went wrong. Please try again shortly."

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch status {
		case nethttp.StatusMethodNotAllowed:
			message = "Method not allowed"
		case nethttp.StatusNotFound:
			message = "Not found"
		default:
			if m, ok := he.Message.(string); ok && status < 500 {
				message = m
			}
		}
	}

	if status >= 500 {
		logger.Error("unhandled error", "module", "http", "action", "request", "resource", c.Request().URL.Path, "result", "failed", "error", err)
	}

	if c.Request().Method == nethttp.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, map[string]string{"error": message})
}
