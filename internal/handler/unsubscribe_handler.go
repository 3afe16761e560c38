package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"rwfw/backend/internal/service"
	"rwfw/backend/pkg/logger"
)

//go:embed templates/unsubscribe.html
var templateFS embed.FS

var unsubscribePage = template.Must(template.ParseFS(templateFS, "templates/unsubscribe.html"))

const (
	successColor = template.CSS("#3B523A")
	failureColor = template.CSS("#8B0000")
)

type unsubscribePageData struct {
	Title   string
	Icon    string
	Color   template.CSS
	Message string
	HomeURL string
}

// UnsubscribeHandler serves the link embedded in newsletter emails. Every outcome
// except rate limiting is an HTML page.
type UnsubscribeHandler struct {
	service service.SubmissionService
	siteURL string
}

func NewUnsubscribeHandler(service service.SubmissionService, siteURL string) *UnsubscribeHandler {
	if siteURL == "" {
		siteURL = "/"
	}
	return &UnsubscribeHandler{service: service, siteURL: siteURL}
}

func (h *UnsubscribeHandler) RegisterRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.GET("/unsubscribe", h.Unsubscribe, m...)
	rejectOtherMethods(g, "/unsubscribe", http.MethodGet)
}

// Unsubscribe godoc
//
//	@Summary	Unsubscribe from the newsletter
//	@Tags		forms
//	@Produce	html
//	@Param		token	query		string	true	"opaque unsubscribe token"
//	@Success	200		{string}	string	"confirmation page"
//	@Failure	400		{string}	string	"error page"
//	@Failure	429		{object}	errorResponse
//	@Failure	500		{string}	string	"error page"
//	@Failure	502		{string}	string	"error page"
//	@Router		/unsubscribe [get]
func (h *UnsubscribeHandler) Unsubscribe(c echo.Context) error {
	token, _ := singleQueryParam(c, "token")
	support := h.service.SupportEmail()

	err := h.service.Unsubscribe(c.Request().Context(), token)
	if err == nil {
		return h.render(c, http.StatusOK, true, "You've been successfully unsubscribed from the Root Work Framework newsletter. We're sorry to see you go. You can re-subscribe anytime at fg2g-rwfw.com.")
	}

	logger.Debug("unsubscribe rejected", "module", "handler", "action", "submit", "resource", "unsubscribe", "result", "failed", "error", err)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return h.render(c, http.StatusBadRequest, false, validationErr.Message)
	case errors.Is(err, service.ErrNotConfigured):
		return h.render(c, http.StatusInternalServerError, false, "Service error. Please contact "+support+".")
	case errors.Is(err, service.ErrUpstream):
		return h.render(c, http.StatusBadGateway, false, "Unable to process your request. Please try again or email "+support+".")
	default:
		return h.render(c, http.StatusInternalServerError, false, "Something went wrong. Please email "+support+" for help.")
	}
}

func (h *UnsubscribeHandler) render(c echo.Context, status int, success bool, message string) error {
	data := unsubscribePageData{
		Title:   "Error",
		Icon:    "⚠️",
		Color:   failureColor,
		Message: message,
		HomeURL: h.siteURL,
	}
	if success {
		data.Title = "Unsubscribed"
		data.Icon = "✅"
		data.Color = successColor
	}

	var buf bytes.Buffer
	if err := unsubscribePage.Execute(&buf, data); err != nil {
		logger.Error("render unsubscribe page", "module", "handler", "action", "render", "resource", "unsubscribe", "result", "failed", "error", err)
		return Error(c, http.StatusInternalServerError, genericFailureMessage)
	}
	return c.HTMLBlob(status, buf.Bytes())
}
