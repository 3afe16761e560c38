package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rwfw/backend/internal/service"
	"rwfw/backend/pkg/logger"
)

const (
	newsletterUpstreamMessage   = "Unable to process signup. Please try again."
	consultationUpstreamMessage = "Unable to submit request. Please try again."

	newsletterSuccessMessage   = "You're subscribed! Check your inbox for a welcome email."
	consultationSuccessMessage = "Thank you! We'll be in touch within 2 business days."
)

// FormHandler serves the newsletter and consultation forms.
type FormHandler struct {
	service service.SubmissionService
}

type newsletterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type consultationRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Interest     string `json:"interest"`
	Message      string `json:"message"`
}

func NewFormHandler(service service.SubmissionService) *FormHandler {
	return &FormHandler{service: service}
}

// RegisterRoutes mounts both forms. newsletter and consultation are the routes' own
// middleware, normally their rate limiters.
func (h *FormHandler) RegisterRoutes(g *echo.Group, newsletter, consultation []echo.MiddlewareFunc) {
	g.POST("/newsletter", h.Newsletter, newsletter...)
	rejectOtherMethods(g, "/newsletter", http.MethodPost)

	g.POST("/consultation", h.Consultation, consultation...)
	rejectOtherMethods(g, "/consultation", http.MethodPost)
}

// Newsletter godoc
//
//	@Summary	Subscribe to the newsletter
//	@Tags		forms
//	@Accept		json
//	@Produce	json
//	@Param		request	body		newsletterRequest	true	"signup"
//	@Success	200		{object}	successResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	429		{object}	errorResponse
//	@Failure	500		{object}	errorResponse
//	@Failure	502		{object}	errorResponse
//	@Router		/newsletter [post]
func (h *FormHandler) Newsletter(c echo.Context) error {
	fields := bindFields(c)
	in := service.NewsletterInput{
		Name:  stringField(fields, "name"),
		Email: stringField(fields, "email"),
		Role:  stringField(fields, "role"),
	}

	if err := h.service.SubscribeNewsletter(c.Request().Context(), in); err != nil {
		logger.Debug("newsletter signup rejected", "module", "handler", "action", "submit", "resource", "newsletter", "result", "failed", "error", err)
		return writeServiceError(c, err, newsletterUpstreamMessage, h.service.SupportEmail())
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: newsletterSuccessMessage})
}

// Consultation godoc
//
//	@Summary	Request a consultation
//	@Tags		forms
//	@Accept		json
//	@Produce	json
//	@Param		request	body		consultationRequest	true	"consultation request"
//	@Success	200		{object}	successResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	429		{object}	errorResponse
//	@Failure	500		{object}	errorResponse
//	@Failure	502		{object}	errorResponse
//	@Router		/consultation [post]
func (h *FormHandler) Consultation(c echo.Context) error {
	fields := bindFields(c)
	in := service.ConsultationInput{
		Name:         stringField(fields, "name"),
		Email:        stringField(fields, "email"),
		Phone:        stringField(fields, "phone"),
		Organization: stringField(fields, "organization"),
		Interest:     stringField(fields, "interest"),
		Message:      stringField(fields, "message"),
	}

	if err := h.service.RequestConsultation(c.Request().Context(), in); err != nil {
		logger.Debug("consultation request rejected", "module", "handler", "action", "submit", "resource", "consultation", "result", "failed", "error", err)
		return writeServiceError(c, err, consultationUpstreamMessage, h.service.SupportEmail())
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: consultationSuccessMessage})
}
