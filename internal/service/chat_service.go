//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"

	"rwfw/backend/internal/model"
	"rwfw/backend/internal/service/ai"
	"rwfw/backend/pkg/logger"
)

// ChatReply is the assistant's answer. OpenScheduler is set when the reply carries the
// scheduler control token; the reply itself is returned unmodified.
type ChatReply struct {
	Reply         string
	OpenScheduler bool
}

// ChatConfig configures the chat proxy.
type ChatConfig struct {
	SystemPrompt string
	MaxTokens    int
	SupportEmail string
}

type ChatService interface {
	Respond(ctx context.Context, in ChatInput) (*ChatReply, error)
}

type chatService struct {
	provider ai.Provider
	limiter  *ai.RateLimiter
	cfg      ChatConfig
}

// NewChatService creates the chat proxy. A nil provider means the API key is not configured
// and every valid request fails with ErrNotConfigured.
func NewChatService(provider ai.Provider, limiter *ai.RateLimiter, cfg ChatConfig) ChatService {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = ai.DefaultMaxTokens
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = ai.DefaultSystemPrompt(cfg.SupportEmail)
	}
	return &chatService{
		provider: provider,
		limiter:  limiter,
		cfg:      cfg,
	}
}

func (s *chatService) Respond(ctx context.Context, in ChatInput) (*ChatReply, error) {
	history, err := validateChat(in)
	if err != nil {
		return nil, err
	}
	if s.provider == nil {
		logger.Error("chat provider not configured", "module", "service", "action", "chat", "resource", "provider", "result", "failed")
		return nil, ErrNotConfigured
	}

	turns := append(sanitizeHistory(history), model.ChatTurn{Role: model.RoleUser, Content: *in.Message})

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for chat provider: %w", err)
		}
	}

	reply, err := s.provider.Chat(ctx, s.cfg.SystemPrompt, turns, s.cfg.MaxTokens)
	if err != nil {
		var statusErr *ai.StatusError
		if errors.As(err, &statusErr) {
			logger.Error("chat provider http error", "module", "service", "action", "chat", "resource", s.provider.Name(), "result", "failed", "status_code", statusErr.StatusCode, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		logger.Error("chat provider request failed", "module", "service", "action", "chat", "resource", s.provider.Name(), "result", "failed", "error", err)
		return nil, err
	}

	if reply == "" {
		reply = ai.FallbackReply(s.cfg.SupportEmail)
	}
	return &ChatReply{
		Reply:         reply,
		OpenScheduler: ai.ContainsSchedulerToken(reply),
	}, nil
}
