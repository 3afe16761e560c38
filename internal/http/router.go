package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "rwfw/backend/docs"
	"rwfw/backend/internal/handler"
	"rwfw/backend/internal/ratelimit"
)

// RateLimiters holds one fixed-window limiter per public endpoint.
type RateLimiters struct {
	Chat         *ratelimit.Limiter
	Consultation *ratelimit.Limiter
	Newsletter   *ratelimit.Limiter
	Unsubscribe  *ratelimit.Limiter
}

// NewRateLimiters builds the default per-endpoint limiters around clock.
func NewRateLimiters(clock ratelimit.Clock) RateLimiters {
	return RateLimiters{
		Chat:         ratelimit.NewLimiter(ratelimit.ChatPolicy, clock),
		Consultation: ratelimit.NewLimiter(ratelimit.ConsultationPolicy, clock),
		Newsletter:   ratelimit.NewLimiter(ratelimit.NewsletterPolicy, clock),
		Unsubscribe:  ratelimit.NewLimiter(ratelimit.UnsubscribePolicy, clock),
	}
}

// All returns the limiters in a fixed order.
func (r RateLimiters) All() []*ratelimit.Limiter {
	return []*ratelimit.Limiter{r.Chat, r.Consultation, r.Newsletter, r.Unsubscribe}
}

func NewRouter(
	chatHandler *handler.ChatHandler,
	formHandler *handler.FormHandler,
	unsubscribeHandler *handler.UnsubscribeHandler,
	limiters RateLimiters,
	serviceWorker []byte,
	staticDir string,
	swaggerEnabled bool,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = ratelimit.ClientIP
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	if swaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api")
	chatHandler.RegisterRoutes(api, RateLimitMiddleware(limiters.Chat))
	formHandler.RegisterRoutes(api,
		[]echo.MiddlewareFunc{RateLimitMiddleware(limiters.Newsletter)},
		[]echo.MiddlewareFunc{RateLimitMiddleware(limiters.Consultation)},
	)
	unsubscribeHandler.RegisterRoutes(api, RateLimitMiddleware(limiters.Unsubscribe))

	if len(serviceWorker) > 0 {
		e.GET("/sw.js", func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
			return c.Blob(nethttp.StatusOK, "application/javascript; charset=utf-8", serviceWorker)
		})
	}

	registerStatic(e, staticDir)

	return e
}
