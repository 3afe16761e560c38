package cmd

import "github.com/spf13/cobra"

// Export for testing
var BuildServer = buildServer
var CheckPrecache = checkPrecache

func RootCommand() *cobra.Command {
	return rootCmd
}
