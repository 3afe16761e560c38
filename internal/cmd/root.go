// Package cmd wires configuration, services and transports into the rwfw command.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rwfw/backend/internal/config"
)

var (
	v = config.New()

	versionInfo struct {
		Version string
		Commit  string
	}
)

// SetVersionInfo is called by main with build metadata.
func SetVersionInfo(version, commit string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
}

var rootCmd = &cobra.Command{
	Use:          "rwfw",
	Short:        "Root Work Framework site backend",
	Long:         "Serves the Root Work Framework site, its form and chat API, and its service worker.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), config.LoadFrom(v))
	},
}

// Execute runs the root command. Without a subcommand it serves.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("static-dir", "", "directory holding the site files")
	rootCmd.PersistentFlags().String("site-url", "", "public site origin")
	rootCmd.PersistentFlags().String("cache-version", "", "service worker cache version")

	bindFlag(v, rootCmd, "log_level", "log-level")
	bindFlag(v, rootCmd, "static_dir", "static-dir")
	bindFlag(v, rootCmd, "site_url", "site-url")
	bindFlag(v, rootCmd, "cache_version", "cache-version")

	rootCmd.AddCommand(serveCmd, swCmd)
}

func bindFlag(v *viper.Viper, c *cobra.Command, key, flag string) {
	if f := c.PersistentFlags().Lookup(flag); f != nil {
		_ = v.BindPFlag(key, f)
		return
	}
	_ = v.BindPFlag(key, c.Flags().Lookup(flag))
}
