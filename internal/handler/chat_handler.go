package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rwfw/backend/internal/model"
	"rwfw/backend/internal/service"
	"rwfw/backend/pkg/logger"
)

const chatUpstreamMessage = "Unable to reach assistant. Please try again."

type ChatHandler struct {
	service      service.ChatService
	supportEmail string
}

type chatRequest struct {
	Message string           `json:"message"`
	History []model.ChatTurn `json:"history,omitempty"`
}

type chatResponse struct {
	Reply         string `json:"reply"`
	OpenScheduler bool   `json:"openScheduler,omitempty"`
}

func NewChatHandler(service service.ChatService, supportEmail string) *ChatHandler {
	return &ChatHandler{service: service, supportEmail: supportEmail}
}

func (h *ChatHandler) RegisterRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.POST("/chat", h.Chat, m...)
	rejectOtherMethods(g, "/chat", http.MethodPost)
}

// Chat godoc
//
//	@Summary		Ask the site assistant
//	@Description	Relays a visitor message and prior turns to the hosted model.
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chatRequest	true	"message and up to 20 prior turns"
//	@Success		200		{object}	chatResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		429		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
//	@Failure		502		{object}	errorResponse
//	@Router			/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	fields := bindFields(c)
	in := service.ChatInput{
		Message: stringField(fields, "message"),
		History: fields["history"],
	}

	reply, err := h.service.Respond(c.Request().Context(), in)
	if err != nil {
		logger.Debug("chat request rejected", "module", "handler", "action", "chat", "resource", "chat", "result", "failed", "error", err)
		return writeServiceError(c, err, chatUpstreamMessage, h.supportEmail)
	}
	return c.JSON(http.StatusOK, chatResponse{
		Reply:         reply.Reply,
		OpenScheduler: reply.OpenScheduler,
	})
}
