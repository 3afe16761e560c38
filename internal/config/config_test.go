package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rwfw/backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("RWFW_ADDR", ":9999")
	t.Setenv("RWFW_LOG_LEVEL", "debug")
	t.Setenv("RWFW_STATIC_DIR", "/srv/site/")
	t.Setenv("RWFW_SITE_URL", "https://staging.example.org/")
	t.Setenv("RWFW_CHAT_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "ant-test")
	t.Setenv("RWFW_CHAT_MAX_TOKENS", "256")
	t.Setenv("N8N_NEWSLETTER_WEBHOOK", " https://n8n.example.org/webhook/news ")
	t.Setenv("RWFW_UPSTREAM_TIMEOUT", "10s")
	t.Setenv("RWFW_RATE_LIMIT_SWEEP", "5m")
	t.Setenv("RWFW_NODE_ID", "7")
	t.Setenv("RWFW_SWAGGER", "true")

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/srv/site", cfg.StaticDir)
	require.Equal(t, "https://staging.example.org", cfg.SiteURL)
	require.Equal(t, "openai", cfg.ChatProvider)
	require.Equal(t, "sk-test", cfg.ChatAPIKey())
	require.Equal(t, 256, cfg.ChatMaxTokens)
	require.Equal(t, "https://n8n.example.org/webhook/news", cfg.NewsletterWebhook)
	require.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, 5*time.Minute, cfg.RateLimitSweep)
	require.Equal(t, int64(7), cfg.NodeID)
	require.True(t, cfg.Swagger)
}

func TestLoad_Defaults(t *testing.T) {
	for _, name := range []string{
		"RWFW_ADDR", "RWFW_LOG_LEVEL", "RWFW_STATIC_DIR", "RWFW_SITE_URL", "RWFW_CHAT_PROVIDER",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "N8N_NEWSLETTER_WEBHOOK", "N8N_CONSULTATION_WEBHOOK",
		"N8N_UNSUBSCRIBE_WEBHOOK", "RWFW_UPSTREAM_TIMEOUT", "RWFW_RATE_LIMIT_SWEEP", "RWFW_CACHE_VERSION",
	} {
		t.Setenv(name, "")
	}

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "https://fg2g-rwfw.com", cfg.SiteURL)
	require.Equal(t, "fg2g-rwfw.com", cfg.Source)
	require.Equal(t, "hearn.sa@gmail.com", cfg.SupportEmail)
	require.Equal(t, "anthropic", cfg.ChatProvider)
	require.Empty(t, cfg.ChatAPIKey())
	require.Equal(t, 512, cfg.ChatMaxTokens)
	require.Equal(t, 60, cfg.ChatUpstreamRPM)
	require.Empty(t, cfg.NewsletterWebhook)
	require.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
	require.Zero(t, cfg.RateLimitSweep)
	require.Equal(t, "rwfw-v1", cfg.CacheVersion)
	require.NotEmpty(t, cfg.StaticDir)
}

func TestLoadFrom_Overrides(t *testing.T) {
	v := config.New()
	v.Set("addr", ":7000")
	v.Set("swagger", true)

	cfg := config.LoadFrom(v)
	require.Equal(t, ":7000", cfg.Addr)
	require.True(t, cfg.Swagger)
}
