package cmd_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"rwfw/backend/internal/cmd"
	"rwfw/backend/internal/config"
	"rwfw/backend/internal/offline"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Addr:            ":0",
		LogLevel:        "error",
		StaticDir:       t.TempDir(),
		SiteURL:         "https://fg2g-rwfw.com",
		Source:          "fg2g-rwfw.com",
		SupportEmail:    "help@example.org",
		ChatProvider:    "anthropic",
		ChatMaxTokens:   512,
		ChatUpstreamRPM: 60,
		UpstreamTimeout: time.Second,
		CacheVersion:    "rwfw-v3",
	}
}

func TestBuildServer_Unconfigured(t *testing.T) {
	h, sweeper, err := cmd.BuildServer(context.Background(), testConfig(t))
	require.NoError(t, err)
	require.Nil(t, sweeper)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Service configuration error. Please contact help@example.org."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(`{"email":"a@b.com"}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sw.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `var CACHE_NAME = "rwfw-v3";`)
}

func TestBuildServer_Webhooks(t *testing.T) {
	var received atomic.Int32
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer webhook.Close()

	cfg := testConfig(t)
	cfg.NewsletterWebhook = webhook.URL
	h, _, err := cmd.BuildServer(context.Background(), cfg)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(`{"email":"a@b.com"}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"message":"You're subscribed! Check your inbox for a welcome email."}`, rec.Body.String())
	require.Equal(t, int32(1), received.Load())
}

func TestBuildServer_Sweeper(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitSweep = time.Minute

	_, sweeper, err := cmd.BuildServer(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, sweeper)
	require.Zero(t, sweeper.Sweep())
}

func TestBuildServer_InvalidProvider(t *testing.T) {
	cfg := testConfig(t)
	cfg.ChatProvider = "unknown"
	cfg.AnthropicAPIKey = "key"

	_, _, err := cmd.BuildServer(context.Background(), cfg)
	require.Error(t, err)
}

func TestCheckPrecache(t *testing.T) {
	dir := t.TempDir()
	cfg := offline.DefaultConfig("https://fg2g-rwfw.com")
	cfg.Precache = []string{"/", "/styles.css"}

	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)

	require.Error(t, cmd.CheckPrecache(context.Background(), c, cfg, dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("home"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("css"), 0o600))
	require.NoError(t, cmd.CheckPrecache(context.Background(), c, cfg, dir))
	require.Contains(t, out.String(), "2 assets present")
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := cmd.RootCommand()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.Contains(t, names, "serve")
	require.Contains(t, names, "sw")
}
