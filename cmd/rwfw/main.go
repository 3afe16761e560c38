package main

import (
	"os"

	"rwfw/backend/internal/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

//	@title			Root Work Framework API
//	@version		1.0
//	@description	Chat, newsletter, consultation and unsubscribe endpoints for the Root Work Framework site.
//	@BasePath		/api
func main() {
	cmd.SetVersionInfo(version, commit)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
