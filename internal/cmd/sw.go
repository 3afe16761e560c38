package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rwfw/backend/internal/config"
	"rwfw/backend/internal/offline"
)

var swCheck bool

var swCmd = &cobra.Command{
	Use:   "sw",
	Short: "Print the service worker script",
	Long: `Print the service worker served at /sw.js for the configured cache version.

With --check, install the precache against the static directory instead and fail
if any listed asset is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadFrom(v)
		swConfig := offline.DefaultConfig(cfg.SiteURL)
		swConfig.Version = cfg.CacheVersion

		if swCheck {
			return checkPrecache(cmd.Context(), cmd, swConfig, cfg.StaticDir)
		}

		script, err := offline.Script(swConfig)
		if err != nil {
			return fmt.Errorf("render service worker: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(script)
		return err
	},
}

func init() {
	swCmd.Flags().BoolVar(&swCheck, "check", false, "verify every precached asset exists in the static directory")
}

func checkPrecache(ctx context.Context, cmd *cobra.Command, cfg offline.Config, staticDir string) error {
	storage := offline.NewMemoryStorage()
	m, err := offline.NewManager(cfg, storage, offline.DirFetcher{Root: staticDir}, nil)
	if err != nil {
		return err
	}
	if err := m.Install(ctx); err != nil {
		return fmt.Errorf("precache check failed in %s: %w", staticDir, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d assets present in %s\n", cfg.Version, len(cfg.Precache), staticDir)
	return nil
}
