//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rwfw/backend/internal/hashutil"
	"rwfw/backend/pkg/logger"
	"rwfw/backend/pkg/network"
	"rwfw/backend/pkg/snowflake"
)

const defaultWebhookTimeout = 30 * time.Second

// WebhookConfig holds the automation endpoints submissions are relayed to.
// An empty URL leaves that submission type unconfigured.
type WebhookConfig struct {
	NewsletterURL   string
	ConsultationURL string
	UnsubscribeURL  string
	Source          string
	SupportEmail    string
	Timeout         time.Duration
}

type SubmissionService interface {
	SubscribeNewsletter(ctx context.Context, in NewsletterInput) error
	RequestConsultation(ctx context.Context, in ConsultationInput) error
	Unsubscribe(ctx context.Context, token string) error
	SupportEmail() string
}

type submissionService struct {
	cfg           WebhookConfig
	clientFactory *network.ClientFactory
	now           func() time.Time
}

func NewSubmissionService(cfg WebhookConfig, clientFactory *network.ClientFactory) SubmissionService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultWebhookTimeout
	}
	return &submissionService{
		cfg:           cfg,
		clientFactory: clientFactory,
		now:           time.Now,
	}
}

type newsletterEvent struct {
	SubmissionID string `json:"submissionId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Timestamp    string `json:"timestamp"`
	Source       string `json:"source"`
}

type consultationEvent struct {
	SubmissionID string `json:"submissionId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Interest     string `json:"interest"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	Source       string `json:"source"`
}

type unsubscribeEvent struct {
	SubmissionID string `json:"submissionId"`
	Token        string `json:"token"`
	Timestamp    string `json:"timestamp"`
	Source       string `json:"source"`
}

func (s *submissionService) SupportEmail() string {
	return s.cfg.SupportEmail
}

func (s *submissionService) SubscribeNewsletter(ctx context.Context, in NewsletterInput) error {
	if err := validateNewsletter(in); err != nil {
		return err
	}
	if s.cfg.NewsletterURL == "" {
		logger.Error("webhook not configured", "module", "service", "action", "forward", "resource", "newsletter", "result", "failed")
		return ErrNotConfigured
	}

	signup := normalizeNewsletter(in)
	event := newsletterEvent{
		SubmissionID: snowflake.NextString(),
		Name:         signup.Name,
		Email:        signup.Email,
		Role:         signup.Role,
		Timestamp:    s.timestamp(),
		Source:       s.cfg.Source,
	}
	return s.forward(ctx, "newsletter", s.cfg.NewsletterURL, event.SubmissionID, signup.Email, event)
}

func (s *submissionService) RequestConsultation(ctx context.Context, in ConsultationInput) error {
	if err := validateConsultation(in); err != nil {
		return err
	}
	if s.cfg.ConsultationURL == "" {
		logger.Error("webhook not configured", "module", "service", "action", "forward", "resource", "consultation", "result", "failed")
		return ErrNotConfigured
	}

	req := normalizeConsultation(in)
	event := consultationEvent{
		SubmissionID: snowflake.NextString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Interest:     req.Interest,
		Message:      req.Message,
		Timestamp:    s.timestamp(),
		Source:       s.cfg.Source,
	}
	return s.forward(ctx, "consultation", s.cfg.ConsultationURL, event.SubmissionID, req.Email, event)
}

func (s *submissionService) Unsubscribe(ctx context.Context, token string) error {
	if err := validateUnsubscribe(token, s.cfg.SupportEmail); err != nil {
		return err
	}
	if s.cfg.UnsubscribeURL == "" {
		logger.Error("webhook not configured", "module", "service", "action", "forward", "resource", "unsubscribe", "result", "failed")
		return ErrNotConfigured
	}

	req := normalizeUnsubscribe(token)
	event := unsubscribeEvent{
		SubmissionID: snowflake.NextString(),
		Token:        req.Token,
		Timestamp:    s.timestamp(),
		Source:       s.cfg.Source,
	}
	return s.forward(ctx, "unsubscribe", s.cfg.UnsubscribeURL, event.SubmissionID, event.Token, event)
}

// forward posts payload once. Non-2xx maps to ErrUpstream; transport failures are returned as is.
// subject (an email or token) is only ever logged as a fingerprint.
func (s *submissionService) forward(ctx context.Context, resource, url, submissionID, subject string, payload any) error {
	logArgs := []any{"module", "service", "action", "forward", "resource", resource, "submission_id", submissionID, "subject", hashutil.Fingerprint(subject)}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", resource, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.clientFactory.NewHTTPClient(ctx, s.cfg.Timeout)
	resp, err := client.Do(req)
	if err != nil {
		logger.Error("webhook request failed", append(logArgs, "result", "failed", "error", err)...)
		return fmt.Errorf("post %s webhook: %w", resource, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("webhook http error", append(logArgs, "result", "failed", "status_code", resp.StatusCode)...)
		return fmt.Errorf("%w: %s webhook returned %d", ErrUpstream, resource, resp.StatusCode)
	}

	logger.Info("webhook delivered", append(logArgs, "result", "ok")...)
	return nil
}

// timestamp is ISO-8601 in UTC with millisecond precision.
func (s *submissionService) timestamp() string {
	return s.now().UTC().Format("2006-01-02T15:04:05.000Z")
}
