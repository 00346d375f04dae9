package main

import (
	"os"

	"github.com/atlasgrow/atlas-go/cmd"
	"github.com/atlasgrow/atlas-go/internal/conf"
	"github.com/atlasgrow/atlas-go/internal/logging"
)

func main() {
	logging.Init()

	settings, err := conf.Load()
	if err != nil {
		logging.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		logging.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
