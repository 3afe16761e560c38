package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultSiteURL      = "https://fg2g-rwfw.com"
	DefaultSource       = "fg2g-rwfw.com"
	DefaultSupportEmail = "hearn.sa@gmail.com"
)

type Config struct {
	Addr      string
	LogLevel  string
	StaticDir string

	SiteURL      string
	Source       string
	SupportEmail string

	ChatProvider     string
	AnthropicAPIKey  string
	OpenAIAPIKey     string
	ChatModel        string
	ChatBaseURL      string
	ChatMaxTokens    int
	ChatSystemPrompt string
	ChatUpstreamRPM  int

	NewsletterWebhook   string
	ConsultationWebhook string
	UnsubscribeWebhook  string
	UpstreamTimeout     time.Duration
	OutboundProxy       string

	RateLimitSweep time.Duration
	CacheVersion   string
	NodeID         int64
	Swagger        bool
}

// ChatAPIKey returns the key for the selected chat provider.
func (c Config) ChatAPIKey() string {
	if strings.EqualFold(c.ChatProvider, "openai") {
		return c.OpenAIAPIKey
	}
	return c.AnthropicAPIKey
}

// env maps config keys to their environment variables.
var env = map[string]string{
	"addr":                 "RWFW_ADDR",
	"log_level":            "RWFW_LOG_LEVEL",
	"static_dir":           "RWFW_STATIC_DIR",
	"site_url":             "RWFW_SITE_URL",
	"source":               "RWFW_SOURCE",
	"support_email":        "RWFW_SUPPORT_EMAIL",
	"chat_provider":        "RWFW_CHAT_PROVIDER",
	"anthropic_api_key":    "ANTHROPIC_API_KEY",
	"openai_api_key":       "OPENAI_API_KEY",
	"chat_model":           "RWFW_CHAT_MODEL",
	"chat_base_url":        "RWFW_CHAT_BASE_URL",
	"chat_max_tokens":      "RWFW_CHAT_MAX_TOKENS",
	"chat_system_prompt":   "RWFW_CHAT_SYSTEM_PROMPT",
	"chat_upstream_rpm":    "RWFW_CHAT_UPSTREAM_RPM",
	"newsletter_webhook":   "N8N_NEWSLETTER_WEBHOOK",
	"consultation_webhook": "N8N_CONSULTATION_WEBHOOK",
	"unsubscribe_webhook":  "N8N_UNSUBSCRIBE_WEBHOOK",
	"upstream_timeout":     "RWFW_UPSTREAM_TIMEOUT",
	"outbound_proxy":       "RWFW_OUTBOUND_PROXY",
	"rate_limit_sweep":     "RWFW_RATE_LIMIT_SWEEP",
	"cache_version":        "RWFW_CACHE_VERSION",
	"node_id":              "RWFW_NODE_ID",
	"swagger":              "RWFW_SWAGGER",
}

// New returns a viper instance with defaults set and environment variables bound.
// Command-line flags may be bound on top before calling LoadFrom.
func New() *viper.Viper {
	v := viper.New()
	for key, name := range env {
		_ = v.BindEnv(key, name)
	}

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("site_url", DefaultSiteURL)
	v.SetDefault("source", DefaultSource)
	v.SetDefault("support_email", DefaultSupportEmail)
	v.SetDefault("chat_provider", "anthropic")
	v.SetDefault("chat_max_tokens", 512)
	v.SetDefault("chat_upstream_rpm", 60)
	v.SetDefault("upstream_timeout", "30s")
	v.SetDefault("rate_limit_sweep", "0")
	v.SetDefault("cache_version", "rwfw-v1")
	v.SetDefault("node_id", 0)
	v.SetDefault("swagger", false)
	return v
}

func Load() Config {
	return LoadFrom(New())
}

func LoadFrom(v *viper.Viper) Config {
	staticDir := strings.TrimSpace(v.GetString("static_dir"))
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:      v.GetString("addr"),
		LogLevel:  v.GetString("log_level"),
		StaticDir: filepath.Clean(staticDir),

		SiteURL:      strings.TrimRight(v.GetString("site_url"), "/"),
		Source:       v.GetString("source"),
		SupportEmail: v.GetString("support_email"),

		ChatProvider:     strings.ToLower(strings.TrimSpace(v.GetString("chat_provider"))),
		AnthropicAPIKey:  v.GetString("anthropic_api_key"),
		OpenAIAPIKey:     v.GetString("openai_api_key"),
		ChatModel:        v.GetString("chat_model"),
		ChatBaseURL:      v.GetString("chat_base_url"),
		ChatMaxTokens:    v.GetInt("chat_max_tokens"),
		ChatSystemPrompt: v.GetString("chat_system_prompt"),
		ChatUpstreamRPM:  v.GetInt("chat_upstream_rpm"),

		NewsletterWebhook:   strings.TrimSpace(v.GetString("newsletter_webhook")),
		ConsultationWebhook: strings.TrimSpace(v.GetString("consultation_webhook")),
		UnsubscribeWebhook:  strings.TrimSpace(v.GetString("unsubscribe_webhook")),
		UpstreamTimeout:     v.GetDuration("upstream_timeout"),
		OutboundProxy:       strings.TrimSpace(v.GetString("outbound_proxy")),

		RateLimitSweep: v.GetDuration("rate_limit_sweep"),
		CacheVersion:   v.GetString("cache_version"),
		NodeID:         v.GetInt64("node_id"),
		Swagger:        v.GetBool("swagger"),
	}
}

func detectStaticDir() string {
	candidates := []string{
		"./public",
		"../public",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./public"
}
