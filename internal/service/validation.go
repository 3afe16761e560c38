package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"rwfw/backend/internal/model"
)

const (
	MaxChatMessageLength = 2000
	MaxChatHistory       = 20

	MaxNameLength         = 100
	MaxEmailLength        = 254
	MaxPhoneLength        = 20
	MaxOrganizationLength = 200
	MaxInterestLength     = 100
	MaxConsultationLength = 5000
	MaxRoleLength         = 50
	MinTokenLength        = 8
	MaxTokenLength        = 128

	defaultNewsletterRole = "other"
)

// ChatInput is a chat request as decoded from the client. A nil Message means the
// field was missing or not a string; History is kept raw so its shape can be checked.
type ChatInput struct {
	Message *string
	History json.RawMessage
}

// NewsletterInput is a signup as decoded from the client. Nil fields were missing or not strings.
type NewsletterInput struct {
	Name  *string
	Email *string
	Role  *string
}

// ConsultationInput is a consultation request as decoded from the client.
type ConsultationInput struct {
	Name         *string
	Email        *string
	Phone        *string
	Organization *string
	Interest     *string
	Message      *string
}

// validateChat checks the message and returns the raw history entries.
func validateChat(in ChatInput) ([]json.RawMessage, error) {
	if in.Message == nil || *in.Message == "" {
		return nil, invalid("Message is required")
	}
	if runeLen(*in.Message) > MaxChatMessageLength {
		return nil, invalid("Message too long. Please keep messages under 2000 characters.")
	}

	raw := strings.TrimSpace(string(in.History))
	if raw == "" {
		return nil, nil
	}
	var history []json.RawMessage
	if raw == "null" || json.Unmarshal(in.History, &history) != nil || history == nil {
		return nil, invalid("Invalid request format.")
	}
	if len(history) > MaxChatHistory {
		return nil, invalid("Invalid request format.")
	}
	return history, nil
}

func validateConsultation(in ConsultationInput) error {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return invalid("Name is required.")
	}
	if in.Email == nil || !strings.Contains(*in.Email, "@") {
		return invalid("Valid email address is required.")
	}
	if in.Message == nil || strings.TrimSpace(*in.Message) == "" {
		return invalid("Message is required.")
	}
	if runeLen(*in.Message) > MaxConsultationLength {
		return invalid("Message too long (max 5000 characters).")
	}
	return nil
}

func validateNewsletter(in NewsletterInput) error {
	if in.Email == nil || !strings.Contains(*in.Email, "@") {
		return invalid("Valid email address is required.")
	}
	if runeLen(*in.Email) > MaxEmailLength {
		return invalid("Invalid email address.")
	}
	if in.Name != nil && runeLen(*in.Name) > MaxNameLength {
		return invalid("Name too long.")
	}
	return nil
}

func validateUnsubscribe(token, supportEmail string) error {
	if runeLen(token) < MinTokenLength {
		return invalid("Invalid unsubscribe link. Please contact " + supportEmail + " for help.")
	}
	return nil
}

// sanitizeHistory keeps well-formed user/assistant turns, truncating their content.
func sanitizeHistory(entries []json.RawMessage) []model.ChatTurn {
	turns := make([]model.ChatTurn, 0, len(entries))
	for _, entry := range entries {
		var raw struct {
			Role    json.RawMessage `json:"role"`
			Content json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(entry, &raw); err != nil {
			continue
		}
		role, ok := stringFrom(raw.Role)
		if !ok || !model.Role(role).Valid() {
			continue
		}
		content, ok := stringFrom(raw.Content)
		if !ok {
			continue
		}
		turns = append(turns, model.ChatTurn{
			Role:    model.Role(role),
			Content: truncate(content, MaxChatMessageLength),
		})
	}
	return turns
}

func normalizeNewsletter(in NewsletterInput) model.NewsletterSignup {
	role := strings.TrimSpace(deref(in.Role))
	if in.Role == nil || *in.Role == "" {
		role = defaultNewsletterRole
	}
	return model.NewsletterSignup{
		Name:  truncate(strings.TrimSpace(deref(in.Name)), MaxNameLength),
		Email: strings.ToLower(strings.TrimSpace(deref(in.Email))),
		Role:  truncate(role, MaxRoleLength),
	}
}

func normalizeConsultation(in ConsultationInput) model.ConsultationRequest {
	return model.ConsultationRequest{
		Name:         truncate(strings.TrimSpace(deref(in.Name)), MaxNameLength),
		Email:        truncate(strings.ToLower(strings.TrimSpace(deref(in.Email))), MaxEmailLength),
		Phone:        truncate(strings.TrimSpace(deref(in.Phone)), MaxPhoneLength),
		Organization: truncate(strings.TrimSpace(deref(in.Organization)), MaxOrganizationLength),
		Interest:     truncate(strings.TrimSpace(deref(in.Interest)), MaxInterestLength),
		Message:      truncate(strings.TrimSpace(deref(in.Message)), MaxConsultationLength),
	}
}

func normalizeUnsubscribe(token string) model.UnsubscribeRequest {
	return model.UnsubscribeRequest{Token: truncate(token, MaxTokenLength)}
}

// stringFrom decodes raw only when it is a JSON string; null, numbers and objects are rejected.
func stringFrom(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
