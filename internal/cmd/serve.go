package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"rwfw/backend/internal/config"
	"rwfw/backend/internal/handler"
	gh "rwfw/backend/internal/http"
	"rwfw/backend/internal/offline"
	"rwfw/backend/internal/scheduler"
	"rwfw/backend/internal/service"
	"rwfw/backend/internal/service/ai"
	"rwfw/backend/pkg/logger"
	"rwfw/backend/pkg/network"
	"rwfw/backend/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server with graceful shutdown.

SIGINT or SIGTERM stops accepting connections and waits for in-flight requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), config.LoadFrom(v))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address")
	serveCmd.Flags().Bool("swagger", false, "serve API docs at /swagger/")
	bindFlag(v, serveCmd, "addr", "addr")
	bindFlag(v, serveCmd, "swagger", "swagger")
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("init snowflake node %d: %w", cfg.NodeID, err)
	}

	e, sweeper, err := buildServer(ctx, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if sweeper != nil {
		sweeper.Start()
		defer sweeper.Stop()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "module", "cmd", "action", "serve", "addr", cfg.Addr, "version", versionInfo.Version, "static_dir", cfg.StaticDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", cfg.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down", "module", "cmd", "action", "shutdown")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildServer assembles the router and, when configured, the limiter sweeper.
func buildServer(ctx context.Context, cfg config.Config) (http.Handler, *scheduler.Scheduler, error) {
	clientFactory := network.NewClientFactory(network.StaticProxy(cfg.OutboundProxy))

	provider, err := ai.NewProvider(ai.Config{
		Provider:   cfg.ChatProvider,
		APIKey:     cfg.ChatAPIKey(),
		BaseURL:    cfg.ChatBaseURL,
		Model:      cfg.ChatModel,
		HTTPClient: clientFactory.NewHTTPClient(ctx, cfg.UpstreamTimeout),
	})
	switch {
	case errors.Is(err, ai.ErrMissingAPIKey):
		logger.Warn("chat provider not configured", "module", "cmd", "action", "init", "resource", cfg.ChatProvider, "result", "skipped")
		provider = nil
	case err != nil:
		return nil, nil, fmt.Errorf("init chat provider: %w", err)
	}

	chatService := service.NewChatService(provider, ai.NewRateLimiter(cfg.ChatUpstreamRPM), service.ChatConfig{
		SystemPrompt: cfg.ChatSystemPrompt,
		MaxTokens:    cfg.ChatMaxTokens,
		SupportEmail: cfg.SupportEmail,
	})
	submissionService := service.NewSubmissionService(service.WebhookConfig{
		NewsletterURL:   cfg.NewsletterWebhook,
		ConsultationURL: cfg.ConsultationWebhook,
		UnsubscribeURL:  cfg.UnsubscribeWebhook,
		Source:          cfg.Source,
		SupportEmail:    cfg.SupportEmail,
		Timeout:         cfg.UpstreamTimeout,
	}, clientFactory)

	swConfig := offline.DefaultConfig(cfg.SiteURL)
	swConfig.Version = cfg.CacheVersion
	script, err := offline.Script(swConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("render service worker: %w", err)
	}

	limiters := gh.NewRateLimiters(nil)
	e := gh.NewRouter(
		handler.NewChatHandler(chatService, cfg.SupportEmail),
		handler.NewFormHandler(submissionService),
		handler.NewUnsubscribeHandler(submissionService, cfg.SiteURL),
		limiters,
		script,
		cfg.StaticDir,
		cfg.Swagger,
	)

	var sweeper *scheduler.Scheduler
	if cfg.RateLimitSweep > 0 {
		pruners := make([]scheduler.Pruner, 0, 4)
		for _, l := range limiters.All() {
			pruners = append(pruners, l)
		}
		sweeper = scheduler.New(cfg.RateLimitSweep, pruners...)
	}
	return e, sweeper, nil
}
